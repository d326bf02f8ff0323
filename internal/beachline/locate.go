package beachline

import (
	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/internal/arena"
	"github.com/hansvanmoer/game/internal/geom"
)

// siteOf returns the coordinates of the site owning face, as recorded
// on the EdgeList this tree was constructed against.
func (t *Tree) siteOf(face dcel.FaceRef) (float64, float64) {
	f := t.el.Face(face)
	return f.X, f.Y
}

// breakpointX computes the current x-coordinate of the breakpoint at
// ref against the sweep directrix y = sweepY, from the sites of the
// nearest arc in its left subtree and the nearest arc in its right
// subtree — the two arcs the breakpoint currently separates.
func (t *Tree) breakpointX(ref NodeRef, sweepY float64) (float64, error) {
	n := t.Node(ref)
	leftArc := t.getMaxNode(n.Left)
	rightArc := t.getMinNode(n.Right)

	lx, ly := t.siteOf(t.Node(leftArc).Face)
	rx, ry := t.siteOf(t.Node(rightArc).Face)

	x, ok, err := geom.IntersectionX(lx, ly, rx, ry, sweepY)
	if err != nil {
		return 0, err
	}
	if !ok {
		// A site level with the sweep line has degenerated to the
		// vertical line through it, so the breakpoint sits at its x.
		// Both sites level with the sweep line: the breakpoint is the
		// vertical bisector, directly between them.
		switch {
		case ly == sweepY && ry != sweepY:
			return lx, nil
		case ry == sweepY && ly != sweepY:
			return rx, nil
		}
		return (lx + rx) / 2, nil
	}
	return x, nil
}

// LocateArcAbove returns the arc whose parabola spans x at the current
// sweep position sweepY, descending from the root and resolving each
// breakpoint's position on the fly.
func (t *Tree) LocateArcAbove(x, sweepY float64) (NodeRef, error) {
	if t.Root == arena.NoHandle {
		return arena.NoHandle, ErrEmptyTree
	}

	cur := t.Root
	for t.Node(cur).Kind == Breakpoint {
		bx, err := t.breakpointX(cur, sweepY)
		if err != nil {
			return arena.NoHandle, err
		}
		n := t.Node(cur)
		if x < bx {
			cur = n.Left
		} else {
			cur = n.Right
		}
	}
	return cur, nil
}
