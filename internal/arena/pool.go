// Package arena provides a block-allocated, append-only pool that hands
// out stable integer handles instead of pointers.
//
// It is the Go analogue of the C original's struct deque
// (original_source/deque.c): elements are appended in fixed-capacity
// blocks and never individually freed; the whole pool is dropped at
// once when the caller is done with it. Handles (not pointers) make
// the backing slice-of-slices safe to grow without invalidating
// references held elsewhere, matching spec.md's directive to replace
// raw pointer ownership with arena + typed index handles.
package arena

// defaultBlockCap mirrors the C original's DEQUE_DEFAULT_BLOCK_CAP.
const defaultBlockCap = 64

// Handle is a stable reference to an element emplaced into a Pool. The
// zero Handle is reserved to mean "no reference" (like a nil pointer);
// valid handles are >= 1.
type Handle int32

// NoHandle is the zero value of Handle, used as a sentinel meaning
// "absent" wherever a Handle field would otherwise be a null pointer.
const NoHandle Handle = 0

// Pool is a generic block-allocated arena for values of type T. The
// zero Pool is not ready for use; call New.
type Pool[T any] struct {
	blocks   [][]T
	blockCap int
	len      int
}

// New creates a Pool whose blocks hold blockCap elements each. A
// blockCap <= 0 selects defaultBlockCap.
func New[T any](blockCap int) *Pool[T] {
	if blockCap <= 0 {
		blockCap = defaultBlockCap
	}
	return &Pool[T]{blockCap: blockCap}
}

// Emplace appends a new zero-valued T to the pool and returns a handle
// to it along with a pointer usable to initialize it in place. The
// pointer remains valid for the lifetime of the pool: blocks are never
// reallocated, only appended.
func (p *Pool[T]) Emplace() (Handle, *T) {
	blockIdx := p.len / p.blockCap
	offset := p.len % p.blockCap
	if blockIdx == len(p.blocks) {
		p.blocks = append(p.blocks, make([]T, p.blockCap))
	}
	p.len++
	// Handles are 1-based so the zero Handle can mean "none".
	return Handle(p.len), &p.blocks[blockIdx][offset]
}

// Get returns a pointer to the element referenced by h. It panics if h
// is NoHandle or out of range, which indicates a bug in the caller
// (spec.md's "invariant violation" class of defensive error) rather
// than a recoverable condition.
func (p *Pool[T]) Get(h Handle) *T {
	if h == NoHandle || int(h) > p.len {
		panic("arena: invalid handle")
	}
	idx := int(h) - 1
	return &p.blocks[idx/p.blockCap][idx%p.blockCap]
}

// Len reports how many elements have been emplaced.
func (p *Pool[T]) Len() int {
	return p.len
}

// Reset releases every block, returning the pool to its initial empty
// state. This is the bulk-release the C original performs in
// dispose_deque; in Go it is just letting the GC reclaim the slices.
func (p *Pool[T]) Reset() {
	p.blocks = nil
	p.len = 0
}

// Each calls fn for every emplaced element's handle and pointer, in
// emplacement order. Mutating T in place through the pointer is safe;
// growing the pool from within fn is not.
func (p *Pool[T]) Each(fn func(Handle, *T)) {
	for i := 0; i < p.len; i++ {
		fn(Handle(i+1), &p.blocks[i/p.blockCap][i%p.blockCap])
	}
}
