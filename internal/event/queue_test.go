package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePopsInPriorityOrder(t *testing.T) {
	q := NewQueue()
	q.Insert(&Event{Kind: AddArc, Priority: 5})
	q.Insert(&Event{Kind: AddArc, Priority: 3})
	q.Insert(&Event{Kind: AddArc, Priority: 7})
	q.Insert(&Event{Kind: AddArc, Priority: 1})

	var got []float64
	for e := q.PopMin(); e != nil; e = q.PopMin() {
		got = append(got, e.Priority)
	}
	assert.Equal(t, []float64{1, 3, 5, 7}, got)
}

func TestQueueTieBreaksByInsertionOrder(t *testing.T) {
	q := NewQueue()
	first := &Event{Kind: AddArc, Priority: 5}
	second := &Event{Kind: AddArc, Priority: 5}
	third := &Event{Kind: AddArc, Priority: 5}
	q.Insert(first)
	q.Insert(second)
	q.Insert(third)

	assert.Same(t, first, q.PopMin())
	assert.Same(t, second, q.PopMin())
	assert.Same(t, third, q.PopMin())
}

func TestQueueRemoveArbitrary(t *testing.T) {
	q := NewQueue()
	a := &Event{Kind: RemoveArc, Priority: 1}
	b := &Event{Kind: RemoveArc, Priority: 2}
	c := &Event{Kind: RemoveArc, Priority: 3}
	q.Insert(a)
	q.Insert(b)
	q.Insert(c)

	q.Remove(b)
	require.Equal(t, 2, q.Len())

	var got []*Event
	for e := q.PopMin(); e != nil; e = q.PopMin() {
		got = append(got, e)
	}
	assert.Equal(t, []*Event{a, c}, got)
}

func TestQueueRemoveIsIdempotent(t *testing.T) {
	q := NewQueue()
	a := &Event{Kind: RemoveArc, Priority: 1}
	q.Insert(a)
	q.Remove(a)
	assert.NotPanics(t, func() {
		q.Remove(a)
	})
	assert.Equal(t, 0, q.Len())
}

func TestQueuePeekDoesNotRemove(t *testing.T) {
	q := NewQueue()
	a := &Event{Kind: AddArc, Priority: 1}
	q.Insert(a)
	assert.Same(t, a, q.Peek())
	assert.Equal(t, 1, q.Len())
}
