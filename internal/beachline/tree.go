// Package beachline implements the sweep's beachline: an ordered
// sequence alternating arc nodes and breakpoint nodes, stored as a
// binary tree whose in-order traversal yields that sequence (spec.md
// §3/§4.4). Leaves are always arcs; internal nodes are always
// breakpoints, so ordinary binary-tree min/max/predecessor/successor
// walks double as arc/breakpoint neighbor queries without any
// type-specific casing — the same property original_source/voronoi.c's
// struct node tree exploits.
//
// Tree shape and parent-pointer walks follow
// wanghanting-voronoi/tree.go (PrevArc/NextArc/FirstArc/LastArc,
// IsLeaf); node contents (the breakpoint's running position and
// direction vector, the arc's pending circle event) follow
// original_source/voronoi.c's struct arc_node/struct half_edge_node.
package beachline

import (
	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/internal/arena"
	"github.com/hansvanmoer/game/internal/event"
)

// NodeRef is a stable handle into a Tree's node arena.
type NodeRef = arena.Handle

// Kind tags whether a Node is an arc or a breakpoint.
type Kind int

const (
	Arc Kind = iota
	Breakpoint
)

// Node is the tagged union of spec.md §3's ArcNode/BreakpointNode.
type Node struct {
	Kind               Kind
	Parent, Left, Right NodeRef

	// Arc fields.
	Face    dcel.FaceRef
	Pending *event.Event // the arc's pending RemoveArc event, or nil

	// Breakpoint fields: running position and direction vector of the
	// ray this breakpoint traces, and the half-edge whose history it is
	// tracing.
	X, Y     float64
	DX, DY   float64
	HalfEdge dcel.HalfEdgeRef
}

// Tree is a beachline: a binary tree of Nodes plus a reference to the
// EdgeList whose face site coordinates the tree's geometry operations
// (LocateArcAbove, Split, RemoveArc) consult.
type Tree struct {
	nodes *arena.Pool[Node]
	Root  NodeRef
	el    *dcel.EdgeList
}

// New returns an empty beachline tied to el for site coordinate
// lookups.
func New(el *dcel.EdgeList) *Tree {
	return &Tree{
		nodes: arena.New[Node](64),
		el:    el,
	}
}

// Node returns a pointer to the node referenced by ref.
func (t *Tree) Node(ref NodeRef) *Node { return t.nodes.Get(ref) }

// NewArcNode emplaces an unattached arc node for face.
func (t *Tree) NewArcNode(face dcel.FaceRef) NodeRef {
	ref, n := t.nodes.Emplace()
	n.Kind = Arc
	n.Face = face
	return ref
}

// NewBreakpointNode emplaces an unattached breakpoint node.
func (t *Tree) NewBreakpointNode(x, y, dx, dy float64, he dcel.HalfEdgeRef) NodeRef {
	ref, n := t.nodes.Emplace()
	n.Kind = Breakpoint
	n.X, n.Y, n.DX, n.DY = x, y, dx, dy
	n.HalfEdge = he
	return ref
}

func (t *Tree) IsLeaf(ref NodeRef) bool {
	return t.Node(ref).Kind == Arc
}

// getMinNode and getMaxNode descend to the leftmost/rightmost
// descendant (original_source/voronoi.c's get_min_node/get_max_node).
func (t *Tree) getMinNode(ref NodeRef) NodeRef {
	for {
		n := t.Node(ref)
		if n.Left == arena.NoHandle {
			return ref
		}
		ref = n.Left
	}
}

func (t *Tree) getMaxNode(ref NodeRef) NodeRef {
	for {
		n := t.Node(ref)
		if n.Right == arena.NoHandle {
			return ref
		}
		ref = n.Right
	}
}

// FirstArc returns the leftmost arc in the whole tree, or NoHandle if
// the tree is empty.
func (t *Tree) FirstArc() NodeRef {
	if t.Root == arena.NoHandle {
		return arena.NoHandle
	}
	return t.getMinNode(t.Root)
}

// LastArc returns the rightmost arc in the whole tree, or NoHandle.
func (t *Tree) LastArc() NodeRef {
	if t.Root == arena.NoHandle {
		return arena.NoHandle
	}
	return t.getMaxNode(t.Root)
}

// PrevNode returns the in-order predecessor of ref, or NoHandle if ref
// is the first node.
func (t *Tree) PrevNode(ref NodeRef) NodeRef {
	n := t.Node(ref)
	if n.Left != arena.NoHandle {
		return t.getMaxNode(n.Left)
	}
	cur := ref
	for {
		n := t.Node(cur)
		if n.Parent == arena.NoHandle {
			return arena.NoHandle
		}
		parent := t.Node(n.Parent)
		if parent.Right == cur {
			return n.Parent
		}
		cur = n.Parent
	}
}

// NextNode returns the in-order successor of ref, or NoHandle if ref is
// the last node.
func (t *Tree) NextNode(ref NodeRef) NodeRef {
	n := t.Node(ref)
	if n.Right != arena.NoHandle {
		return t.getMinNode(n.Right)
	}
	cur := ref
	for {
		n := t.Node(cur)
		if n.Parent == arena.NoHandle {
			return arena.NoHandle
		}
		parent := t.Node(n.Parent)
		if parent.Left == cur {
			return n.Parent
		}
		cur = n.Parent
	}
}

// PrevArc and NextArc return the neighboring arc of an arc ref. An
// arc's neighbor in tree order is always a breakpoint and a
// breakpoint's neighbor is always an arc, so they step PrevNode/
// NextNode twice, returning NoHandle at either end of the beachline.
func (t *Tree) PrevArc(ref NodeRef) NodeRef {
	bp := t.PrevNode(ref)
	if bp == arena.NoHandle {
		return arena.NoHandle
	}
	return t.PrevNode(bp)
}

func (t *Tree) NextArc(ref NodeRef) NodeRef {
	bp := t.NextNode(ref)
	if bp == arena.NoHandle {
		return arena.NoHandle
	}
	return t.NextNode(bp)
}

// replaceChild swaps parent's pointer from oldChild to newChild (or
// sets the tree root if parent is NoHandle), matching
// original_source/voronoi.c's replace_child.
func (t *Tree) replaceChild(parent, oldChild, newChild NodeRef) {
	if parent == arena.NoHandle {
		t.Root = newChild
	} else {
		p := t.Node(parent)
		if p.Left == oldChild {
			p.Left = newChild
		} else {
			p.Right = newChild
		}
	}
	if newChild != arena.NoHandle {
		t.Node(newChild).Parent = parent
	}
}
