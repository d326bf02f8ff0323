package beachline

import (
	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/internal/arena"
)

// ancestorViaRight walks up from ref and returns the nearest ancestor
// reached while ref's side of the tree is the ancestor's right child —
// the same ancestor-finding loop PrevNode uses once it has no left
// subtree to descend into. For an arc with no left subtree of its own
// this is exactly the breakpoint bordering the arc on its left.
func (t *Tree) ancestorViaRight(ref NodeRef) NodeRef {
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

// ancestorViaLeft is ancestorViaRight's mirror: the breakpoint
// bordering ref on its right.
func (t *Tree) ancestorViaLeft(ref NodeRef) NodeRef {
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

// RemoveArc splices arcRef (a circle event's middle arc) and its
// immediate parent breakpoint out of the tree, and repurposes the
// *other* breakpoint bordering it — the one that will now separate
// arcRef's two former neighbors directly — to track the new boundary,
// per original_source/voronoi.c's handle_remove_arc_event. vx, vy is
// the circle event's vertex (the new boundary's starting point) and
// newHalfEdge is the half-edge of the edge the sweep driver creates for
// the leftArc/rightArc pair.
//
// It returns the surviving breakpoint and the two now-adjacent arcs, so
// the caller can finish the DCEL wiring (close the two collapsing
// edges at the new vertex, and stitch the new edge into leftArc's and
// rightArc's faces).
func (t *Tree) RemoveArc(arcRef NodeRef, vx, vy float64, newHalfEdge dcel.HalfEdgeRef) (survivingBp, leftArc, rightArc NodeRef, err error) {
	leftArc = t.PrevArc(arcRef)
	rightArc = t.NextArc(arcRef)
	if leftArc == arena.NoHandle || rightArc == arena.NoHandle {
		return arena.NoHandle, arena.NoHandle, arena.NoHandle, ErrNoNeighborArc
	}

	arc := t.Node(arcRef)
	parent := arc.Parent
	if parent == arena.NoHandle {
		return arena.NoHandle, arena.NoHandle, arena.NoHandle, ErrInvariant
	}
	p := t.Node(parent)

	var sibling NodeRef
	if p.Left == arcRef {
		sibling = p.Right
	} else {
		sibling = p.Left
	}

	leftBp := t.ancestorViaRight(arcRef)
	rightBp := t.ancestorViaLeft(arcRef)

	var survivor NodeRef
	switch parent {
	case leftBp:
		survivor = rightBp
	case rightBp:
		survivor = leftBp
	default:
		return arena.NoHandle, arena.NoHandle, arena.NoHandle, ErrInvariant
	}
	if survivor == arena.NoHandle {
		return arena.NoHandle, arena.NoHandle, arena.NoHandle, ErrInvariant
	}

	grandparent := p.Parent
	t.replaceChild(grandparent, parent, sibling)

	// The surviving breakpoint is bound to newHalfEdge, whose face is
	// leftArc's (see the caller's wiring) — the same "left half-edge of
	// a site-to-site pair" role Split's leftBp plays, so it takes the
	// same negated rotation of (rightArc's site minus leftArc's site),
	// not a canonicalized one (see split.go's comment on why
	// canonicalizing breaks the box-closure orientation).
	lx, ly := t.siteOf(t.Node(leftArc).Face)
	rx, ry := t.siteOf(t.Node(rightArc).Face)
	mx, my := rx-lx, ry-ly
	dx, dy := -my, mx

	sv := t.Node(survivor)
	sv.X, sv.Y = vx, vy
	sv.DX, sv.DY = dx, dy
	sv.HalfEdge = newHalfEdge

	return survivor, leftArc, rightArc, nil
}
