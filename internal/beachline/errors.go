package beachline

import "github.com/pkg/errors"

// ErrEmptyTree is returned by LocateArcAbove on a beachline with no
// arcs yet.
var ErrEmptyTree = errors.New("beachline: tree is empty")

// ErrNoNeighborArc indicates RemoveArc was asked to remove an arc that
// has no arc neighbor on one side, which cannot happen for a
// genuinely-bounded middle arc and signals a corrupted tree.
var ErrNoNeighborArc = errors.New("beachline: arc has no neighboring arc")

// ErrInvariant indicates the tree's alternating arc/breakpoint
// structure was violated (e.g. an arc with no parent but other arcs
// present).
var ErrInvariant = errors.New("beachline: tree invariant violated")
