package heap

// Entry is a value stored in a Heap together with its priority.
//
// A *Entry returned from Push is a handle. Entries move between slots while
// the heap sifts them, and every move updates the entry's own index,
// so the handle stays usable for Contains and Remove for as long as
// the entry is in the heap.
//
// Value and priority are fixed at creation; heap order and the identity
// index both rely on them never changing.
type Entry[T any, P any] struct {
	value    T
	priority P
	index    int
}

// NewEntry returns a detached entry, mainly for Heapify.
func NewEntry[T any, P any](v T, p P) *Entry[T, P] {
	return &Entry[T, P]{value: v, priority: p, index: -1}
}

func (e *Entry[T, P]) Value() T {
	return e.value
}

func (e *Entry[T, P]) Priority() P {
	return e.priority
}

// Index returns the slot e currently occupies,
// or -1 if e has been popped, removed or discarded by Heapify.
func (e *Entry[T, P]) Index() int {
	return e.index
}
