package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmplaceAcrossBlockBoundary(t *testing.T) {
	p := New[int](4)
	var handles []Handle
	for i := 0; i < 10; i++ {
		h, v := p.Emplace()
		*v = i
		handles = append(handles, h)
	}
	require.Equal(t, 10, p.Len())
	for i, h := range handles {
		assert.Equal(t, i, *p.Get(h))
	}
}

func TestHandleStableAcrossGrowth(t *testing.T) {
	p := New[string](2)
	h1, v1 := p.Emplace()
	*v1 = "first"

	for i := 0; i < 20; i++ {
		_, v := p.Emplace()
		*v = "filler"
	}

	assert.Equal(t, "first", *p.Get(h1))
}

func TestNoHandleIsZero(t *testing.T) {
	assert.Equal(t, Handle(0), NoHandle)
}

func TestInvalidHandlePanics(t *testing.T) {
	p := New[int](4)
	p.Emplace()
	assert.Panics(t, func() {
		p.Get(NoHandle)
	})
	assert.Panics(t, func() {
		p.Get(Handle(99))
	})
}

func TestReset(t *testing.T) {
	p := New[int](4)
	p.Emplace()
	p.Emplace()
	require.Equal(t, 2, p.Len())
	p.Reset()
	assert.Equal(t, 0, p.Len())
}

func TestEachVisitsInOrder(t *testing.T) {
	p := New[int](3)
	for i := 0; i < 7; i++ {
		_, v := p.Emplace()
		*v = i * i
	}
	var seen []int
	p.Each(func(h Handle, v *int) {
		seen = append(seen, *v)
	})
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36}, seen)
}
