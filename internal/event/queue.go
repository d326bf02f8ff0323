// Package event implements the sweep's event queue: a min-heap over a
// tagged AddArc/RemoveArc event, ordered by (priority, insertion
// sequence) so that equal-priority events resolve deterministically.
//
// The heap itself follows wanghanting-voronoi/Shamos.go's EventQueue
// (a container/heap.Interface implementation) and
// other_examples/12bacbaa_kurrik-voronoi__voronoi_test.go.go, which
// exercises the same index-field removal contract against a
// container/heap queue. RemoveArc invalidation/priority semantics
// follow original_source/voronoi.c's BST-based insert_event/pop_event/
// remove_event.
package event

import (
	"container/heap"

	"github.com/hansvanmoer/game/internal/arena"
)

// Kind tags which arm of the Event union is populated.
type Kind int

const (
	// AddArc is a site event: priority is the site's y coordinate.
	AddArc Kind = iota
	// RemoveArc is a circle event: priority is the lowest point of the
	// circle through the arc triple, invalidated if the arc's
	// neighboring breakpoints change before it fires.
	RemoveArc
)

// Event is the tagged union of spec.md §3's AddArcEvent/RemoveArcEvent.
// Arc is the beachline arc handle this event concerns: for RemoveArc it
// is the middle arc about to be removed; AddArc events leave it unset
// (NoHandle).
type Event struct {
	Kind     Kind
	Priority float64
	Arc      arena.Handle // beachline.NodeRef of the concerned arc
	Face     arena.Handle // AddArc only: the site's already-created face
	X, Y     float64      // AddArc: the site's coordinates. RemoveArc: the new vertex (the circle's center)

	seq   int
	index int // maintained by container/heap; -1 once popped/removed
}

// Queue is a container/heap.Interface-backed min-heap of *Event,
// ordered by (Priority, seq) so that equal-priority events fire in
// insertion order (spec.md §5's determinism requirement).
type Queue struct {
	items   []*Event
	nextSeq int
}

// NewQueue returns an empty, ready-to-use Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Len, Less, Swap, Push, Pop implement container/heap.Interface.
func (q *Queue) Len() int { return len(q.items) }

func (q *Queue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.seq < b.seq
}

func (q *Queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *Queue) Push(x any) {
	e := x.(*Event)
	e.index = len(q.items)
	q.items = append(q.items, e)
}

func (q *Queue) Pop() any {
	old := q.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	q.items = old[:n-1]
	return e
}

// Insert pushes e with a strictly increasing insertion sequence. The
// caller keeps e (e.g. on an ArcNode's pending RemoveArc field) for
// later invalidation through Remove.
func (q *Queue) Insert(e *Event) {
	e.seq = q.nextSeq
	q.nextSeq++
	heap.Push(q, e)
}

// PopMin removes and returns the lowest-priority event, or nil if the
// queue is empty.
func (q *Queue) PopMin() *Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*Event)
}

// Peek returns the lowest-priority event without removing it, or nil.
func (q *Queue) Peek() *Event {
	if q.Len() == 0 {
		return nil
	}
	return q.items[0]
}

// Remove logically removes e from the queue's ordering. It is a no-op
// if e has already been popped or removed (index < 0), matching the
// teacher's CircleEvents.RemoveEvent/"e.index <= -1" idempotent-removal
// idiom, needed because a RemoveArc event can be invalidated more than
// once on overlapping neighbor changes.
func (q *Queue) Remove(e *Event) {
	if e.index < 0 {
		return
	}
	heap.Remove(q, e.index)
	e.index = -1
}
