package skipbeam

// ObjectPool is a free-list arena: Push reuses a freed slot if one
// exists, otherwise grows the backing slice; Pop marks a slot free
// without touching its contents until the slot is reused. Indices are
// stable until their owning element is popped, which is exactly the
// property a node graph with parent/child/sibling links by index needs.
//
// Grounded on the teacher's own array-plus-free-stack arena idiom
// (other_examples' NodePool: a slice of elements with a free list
// threaded through an unused field); here the free list is a plain
// stack slice rather than a field-threaded list, since ObjectPool is
// generic over T and cannot assume T has a spare field to repurpose.
type ObjectPool[T any] struct {
	data []T
	free []int
}

// NewObjectPool returns an ObjectPool with capacity reserved up front.
func NewObjectPool[T any](capacity int) *ObjectPool[T] {
	return &ObjectPool[T]{data: make([]T, 0, capacity)}
}

// Push stores x, reusing a freed index if one is available, and
// returns the index it was stored at.
func (p *ObjectPool[T]) Push(x T) int {
	if len(p.free) == 0 {
		p.data = append(p.data, x)

		return len(p.data) - 1
	}

	i := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.data[i] = x

	return i
}

// Pop marks index i free for reuse by a future Push.
func (p *ObjectPool[T]) Pop(i int) {
	p.free = append(p.free, i)
}

// At returns a pointer to the element at i for in-place mutation.
func (p *ObjectPool[T]) At(i int) *T {
	return &p.data[i]
}

// Size reports the number of slots ever allocated, including freed
// ones; it is a capacity-planning hint, not a live-element count.
func (p *ObjectPool[T]) Size() int {
	return len(p.data)
}
