package dcel

import (
	"github.com/pkg/errors"

	"github.com/hansvanmoer/game/internal/arena"
	"github.com/hansvanmoer/game/internal/geom"
)

// ErrNoIntersection indicates project_half_edge_on_bounds's C namesake
// returning STATUS_NO_SOLUTION as a genuine failure: none of the four
// box sides yielded a valid k >= 0 intersection within tolerance. This
// should not happen for a correctly computed breakpoint ray.
var ErrNoIntersection = errors.New("dcel: half-edge ray does not intersect bounding box")

// boxSide is one of the four sides of the axis-aligned bounding
// rectangle, named by the convention chosen in DESIGN.md: faces are
// closed by walking the box clockwise (in a y-down coordinate system)
// top -> right -> bottom -> left -> top.
type boxSide int

const (
	sideTop boxSide = iota
	sideRight
	sideBottom
	sideLeft
	numSides = 4
)

// corner returns the point reached by walking side s to completion in
// the clockwise direction.
func corner(s boxSide, width, height float64) (x, y float64) {
	switch s {
	case sideTop:
		return width, 0
	case sideRight:
		return width, height
	case sideBottom:
		return 0, height
	default: // sideLeft
		return 0, 0
	}
}

// sideOf classifies a point known to lie on the box boundary. Corners
// are attributed to the side that is *ending* there (e.g. (width, 0)
// is the end of sideTop, not the start of sideRight) so that a chain
// endpoint sitting exactly on a corner is handled by the closure loop
// as "this side is exhausted, advance," mirroring the case table in
// original_source/edge_list.c's close_face_with_bounds.
func sideOf(x, y, width, height, tol float64) boxSide {
	switch {
	case geom.Near(y, 0, tol) && !geom.Near(x, 0, tol):
		return sideTop
	case geom.Near(x, width, tol) && !geom.Near(y, 0, tol):
		return sideRight
	case geom.Near(y, height, tol) && !geom.Near(x, width, tol):
		return sideBottom
	default:
		return sideLeft
	}
}

// advance returns a scalar that increases monotonically along side s
// in the clockwise direction of travel, used to decide whether a
// target point on the same side lies "ahead" of the current position.
func advance(s boxSide, x, y, width, height float64) float64 {
	switch s {
	case sideTop:
		return x
	case sideRight:
		return y
	case sideBottom:
		return width - x
	default: // sideLeft
		return height - y
	}
}

// fixToBounds snaps coordinates within tolerance of a box edge exactly
// onto that edge, as fix_to_bounds does in the C original.
func fixToBounds(x, y, width, height, tol float64) (float64, float64) {
	if geom.Near(x, 0, tol) {
		x = 0
	} else if geom.Near(x, width, tol) {
		x = width
	}
	if geom.Near(y, 0, tol) {
		y = 0
	} else if geom.Near(y, height, tol) {
		y = height
	}
	return x, y
}

// ProjectHalfEdgeOntoBounds solves the ray (ex, ey) + k*(edx, edy) for
// k >= 0 against all four sides of the [0,width] x [0,height] box and
// assigns the smallest-k valid intersection as he's twin's origin
// vertex (he is the open-ended half-edge; its twin's origin is the
// "start" of the pair, still unset while the breakpoint is open).
//
// It returns ErrNoIntersection only when no side produces a valid
// intersection; a side whose line is parallel to the ray (Solve
// returning geom.ErrNoSolution) is not an error here, just a reason to
// try the next side, per spec.md §9's direction to treat
// STATUS_NO_SOLUTION as a "try next candidate" sentinel rather than an
// error.
func (el *EdgeList) ProjectHalfEdgeOntoBounds(he HalfEdgeRef, ex, ey, edx, edy, width, height, tolerance float64) error {
	twin := el.HalfEdge(he).Twin
	if twin == arena.NoHandle {
		return errors.New("dcel: half-edge has no twin")
	}

	type side struct {
		px, py, dx, dy float64
	}
	sides := [numSides]side{
		{0, 0, 0, 1},          // left: x = 0
		{0, 0, 1, 0},          // top: y = 0
		{width, height, 0, 1}, // right: x = width
		{width, height, 1, 0}, // bottom: y = height
	}

	bestK := -1.0
	var bestX, bestY float64
	found := false

	for _, s := range sides {
		var sys geom.System2
		sys.SetCol(0, edx, edy)
		sys.SetCol(1, -s.dx, -s.dy)
		sys.SetCol(2, ex-s.px, ey-s.py)
		if err := sys.Solve(); err != nil {
			// Parallel to this side (or coincident with it) — try the
			// next side rather than failing outright.
			continue
		}
		k := sys.X
		if k < 0 {
			continue
		}
		x := ex + k*edx
		y := ey + k*edy
		if !geom.WithinInterval(x, width, tolerance) || !geom.WithinInterval(y, height, tolerance) {
			continue
		}
		if !found || k < bestK {
			found = true
			bestK = k
			bestX, bestY = x, y
		}
	}

	if !found {
		return ErrNoIntersection
	}

	bestX, bestY = fixToBounds(bestX, bestY, width, height, tolerance)
	vref := el.NewVertex(bestX, bestY)
	el.HalfEdge(twin).Origin = vref
	return nil
}

// CloseFaceWithBounds closes a face whose ring is currently an open
// chain with both endpoints on the box boundary (the tail's twin's
// origin and the head's origin, per ProjectHalfEdgeOntoBounds), by
// walking the box clockwise from the tail endpoint to the head
// endpoint and inserting synthetic box-boundary edges — including
// corner edges when the walk must turn a corner to reach the head.
func (el *EdgeList) CloseFaceWithBounds(face FaceRef, width, height, tolerance float64) error {
	f := el.Face(face)
	if f.Head == arena.NoHandle {
		// A face with no half-edges at all arises only for a single-site
		// diagram (spec.md scenario S1): the sweep never produced a
		// breakpoint for it, so its entire ring is synthetic — the box's
		// four corners in clockwise order.
		return el.closeEmptyFaceWithBox(face, width, height)
	}
	if f.Tail == arena.NoHandle {
		return nil // nothing to close
	}
	tailHe := el.HalfEdge(f.Tail)
	if tailHe.Next == f.Head {
		return nil // already closed
	}

	twin := el.HalfEdge(tailHe.Twin)
	if twin.Origin == arena.NoHandle {
		return errors.New("dcel: tail half-edge's twin has no origin to close from")
	}
	headHe := el.HalfEdge(f.Head)
	if headHe.Origin == arena.NoHandle {
		return errors.New("dcel: face head has no origin to close to")
	}

	endRef := twin.Origin
	targetRef := headHe.Origin
	cur := f.Tail

	end := el.Vertex(endRef)
	side := sideOf(end.X, end.Y, width, height, tolerance)

	for endRef != targetRef {
		target := el.Vertex(targetRef)

		var nx, ny float64
		closingToTarget := false
		if sideOf(target.X, target.Y, width, height, tolerance) == side &&
			advance(side, target.X, target.Y, width, height) > advance(side, end.X, end.Y, width, height) {
			nx, ny = target.X, target.Y
			closingToTarget = true
		} else {
			nx, ny = corner(side, width, height)
		}

		var nextRef VertexRef
		if closingToTarget {
			nextRef = targetRef
		} else {
			nextRef = el.NewVertex(nx, ny)
		}

		edge := el.NewEdge()
		edgeHe := el.HalfEdge(edge)
		edgeHe.Origin = endRef
		el.HalfEdge(edgeHe.Twin).Origin = nextRef
		edgeHe.Face = face

		el.Connect(cur, edge)
		cur = edge
		endRef = nextRef
		end = el.Vertex(endRef)
		if !closingToTarget {
			side = (side + 1) % numSides
		}
	}

	f.Tail = cur
	el.Connect(cur, f.Head)
	return nil
}

// closeEmptyFaceWithBox builds a face's entire ring from the box's
// four corners in clockwise order, for a face the sweep never
// attached a single half-edge to (spec.md scenario S1).
func (el *EdgeList) closeEmptyFaceWithBox(face FaceRef, width, height float64) error {
	corners := [numSides + 1][2]float64{}
	for s := boxSide(0); s < numSides; s++ {
		corners[s+1][0], corners[s+1][1] = corner(s, width, height)
	}
	// corners[0] is the box's starting point for sideTop's walk: (0, 0).
	corners[0][0], corners[0][1] = 0, 0

	verts := make([]VertexRef, numSides)
	for i := 0; i < numSides; i++ {
		verts[i] = el.NewVertex(corners[i][0], corners[i][1])
	}

	edges := make([]HalfEdgeRef, numSides)
	for i := 0; i < numSides; i++ {
		edge := el.NewEdge()
		he := el.HalfEdge(edge)
		he.Origin = verts[i]
		he.Face = face
		el.HalfEdge(he.Twin).Origin = verts[(i+1)%numSides]
		edges[i] = edge
	}

	el.SetHead(face, edges[0])
	el.Face(face).Tail = edges[0]
	for i := 0; i < numSides; i++ {
		el.Connect(edges[i], edges[(i+1)%numSides])
	}
	el.Face(face).Tail = edges[numSides-1]
	return nil
}
