package beachline

import (
	"github.com/hansvanmoer/game/dcel"
	"github.com/hansvanmoer/game/internal/geom"
)

// Split replaces the leaf arc at arcRef with the five-node fragment
// produced by a new site breaking it in two: a left copy of the
// original arc, a left breakpoint, a new arc for the incoming site, a
// right breakpoint, and a right copy of the original arc — the shape
// described in spec.md §4.4 and original_source/voronoi.c's
// split_node. leftHalfEdge and rightHalfEdge are the two half-edges of
// the new edge the sweep driver creates for the site pair, whose
// origins remain open until a later RemoveArc event or the boundary
// closure fixes them.
func (t *Tree) Split(arcRef NodeRef, newFace dcel.FaceRef, sweepY float64, leftHalfEdge, rightHalfEdge dcel.HalfEdgeRef) (leftArc, leftBp, midArc, rightBp, rightArc NodeRef) {
	arc := t.Node(arcRef)
	face := arc.Face

	sx, sy := t.siteOf(face)
	nx, ny := t.siteOf(newFace)

	var x, y float64
	if sy == sweepY {
		// The split arc's site sits exactly on the directrix: its
		// parabola has degenerated to the vertical line x = sx, so the
		// ordinary a/b/c formula (which divides by sy - ly) doesn't
		// apply. The new breakpoint starts on the level bisector between
		// the two same-height sites instead (spec.md §4.5's tie-break
		// note for identical-y sites).
		x = (sx + nx) / 2
		y = sweepY
	} else {
		p := geom.NewParabola(sx, sy, sweepY)
		y = p.Y(nx)
		x = nx
	}

	// The two new breakpoints trace opposite directions along the same
	// line orthogonal to the site-to-site segment (mx, my). Unlike
	// remove.go's lone surviving breakpoint, there is no single
	// direction to canonicalize here: the right breakpoint (bordering
	// the new site's face) always takes the untouched rotation (my,
	// -mx), and the left breakpoint (bordering the split arc's face)
	// takes its exact negation — flipping to force dx >= 0 would swap
	// which face each half-edge ends up bounding once the boundary
	// closure's clockwise box walk runs.
	mx, my := nx-sx, ny-sy
	dx, dy := my, -mx

	leftArc = t.NewArcNode(face)
	midArc = t.NewArcNode(newFace)
	rightArc = t.NewArcNode(face)

	leftBp = t.NewBreakpointNode(x, y, -dx, -dy, leftHalfEdge)
	rightBp = t.NewBreakpointNode(x, y, dx, dy, rightHalfEdge)

	lb := t.Node(leftBp)
	lb.Left, lb.Right = leftArc, rightBp
	t.Node(leftArc).Parent = leftBp
	t.Node(rightBp).Parent = leftBp

	rb := t.Node(rightBp)
	rb.Left, rb.Right = midArc, rightArc
	t.Node(midArc).Parent = rightBp
	t.Node(rightArc).Parent = rightBp

	parent := arc.Parent
	t.replaceChild(parent, arcRef, leftBp)

	return leftArc, leftBp, midArc, rightBp, rightArc
}
