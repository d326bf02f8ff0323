package beachline

import (
	"math"

	"github.com/hansvanmoer/game/internal/arena"
	"github.com/hansvanmoer/game/internal/geom"
)

// CircleEvent is the outcome of a successful CheckCircleEvent: the
// vertex where the arc at Arc would vanish, and the sweep position
// (priority) at which that happens.
type CircleEvent struct {
	Arc      NodeRef
	X, Y     float64
	Priority float64
}

// CheckCircleEvent looks for a future RemoveArc event for the arc at
// arcRef, by intersecting the rays of its two bordering breakpoints —
// original_source/voronoi.c's check_for_remove_events. ok is false (no
// error) whenever the arc has no two arc neighbors yet, the bordering
// rays diverge or run parallel, the rays' intersection lies behind
// either breakpoint's current position (the sides are not actually
// converging), or the circle's lowest point (the event priority) lies
// at or above the current sweep line.
func (t *Tree) CheckCircleEvent(arcRef NodeRef, sweepY float64) (CircleEvent, bool, error) {
	left := t.PrevNode(arcRef)
	if left == arena.NoHandle {
		return CircleEvent{}, false, nil
	}
	right := t.NextNode(arcRef)
	if right == arena.NoHandle {
		return CircleEvent{}, false, nil
	}

	lb := t.Node(left)
	rb := t.Node(right)

	var sys geom.System2
	sys.SetCol(0, lb.DX, lb.DY)
	sys.SetCol(1, -rb.DX, -rb.DY)
	sys.SetCol(2, lb.X-rb.X, lb.Y-rb.Y)
	if err := sys.Solve(); err != nil {
		// Parallel or coincident rays: the two breakpoints never meet.
		return CircleEvent{}, false, nil
	}

	t0, t1 := sys.X, sys.Y
	x := lb.X + t0*lb.DX
	y := lb.Y + t0*lb.DY

	face := t.Node(arcRef).Face
	sx, sy := t.siteOf(face)
	dx := sx - x
	dy := sy - y
	ey := y + math.Sqrt(dx*dx+dy*dy)

	if t0 < 0 || t1 < 0 || ey <= sweepY {
		return CircleEvent{}, false, nil
	}

	return CircleEvent{Arc: arcRef, X: x, Y: y, Priority: ey}, true, nil
}
