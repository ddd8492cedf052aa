package heap

// Identity is a Heap with a hash index from value to handles,
// giving O(1) Has and O(log n) RemoveIdentity.
//
// Values are compared with ==. For pointer types that is identity.
// The same value may be pushed more than once; each push is a separate entry.
//
// Handles carry their own slot index, so sifting never touches the index.
// It is only updated when entries enter or leave the heap.
type Identity[T comparable, P any] struct {
	h   *Heap[T, P]
	idx map[T][]*Entry[T, P]
}

// NewIdentity returns an empty identity indexed heap ordered by less.
// See New for the contract of less.
func NewIdentity[T comparable, P any](less func(a, b P) bool, options ...Option) *Identity[T, P] {
	return &Identity[T, P]{
		h:   New[T, P](less, options...),
		idx: make(map[T][]*Entry[T, P]),
	}
}

func (h *Identity[T, P]) Len() int {
	return h.h.Len()
}

func (h *Identity[T, P]) Cap() int {
	return h.h.Cap()
}

func (h *Identity[T, P]) IsEmpty() bool {
	return h.h.IsEmpty()
}

func (h *Identity[T, P]) Push(v T, p P) *Entry[T, P] {
	ent := h.h.Push(v, p)
	h.idx[v] = append(h.idx[v], ent)
	return ent
}

func (h *Identity[T, P]) Peek() (*Entry[T, P], error) {
	return h.h.Peek()
}

func (h *Identity[T, P]) Pop() (*Entry[T, P], error) {
	ent, err := h.h.Pop()
	if err != nil {
		return nil, err
	}
	h.unindex(ent)
	return ent, nil
}

// Heapify replaces the content and rebuilds the index from entries.
func (h *Identity[T, P]) Heapify(entries []*Entry[T, P]) {
	h.h.Heapify(entries)
	h.reindex()
}

// Trim shrinks the storage and rebuilds the index.
// Go maps never shrink, so a fresh map is the only way to give memory back.
func (h *Identity[T, P]) Trim() {
	h.h.Trim()
	h.reindex()
}

// Has reports whether v is stored in h.
func (h *Identity[T, P]) Has(v T) bool {
	return len(h.idx[v]) > 0
}

// Handles returns handles of every entry whose value is v.
func (h *Identity[T, P]) Handles(v T) []*Entry[T, P] {
	bucket := h.idx[v]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*Entry[T, P], len(bucket))
	copy(out, bucket)
	return out
}

// RemoveIdentity removes one entry whose value is v.
// It returns false if v is not stored.
func (h *Identity[T, P]) RemoveIdentity(v T) bool {
	bucket := h.idx[v]
	if len(bucket) == 0 {
		return false
	}
	return h.Remove(bucket[len(bucket)-1])
}

// Contains reports whether ent is stored in h.
func (h *Identity[T, P]) Contains(ent *Entry[T, P]) bool {
	return h.h.Contains(ent)
}

// Remove removes ent from h. It returns false if ent is not in h.
func (h *Identity[T, P]) Remove(ent *Entry[T, P]) bool {
	if !h.h.Remove(ent) {
		return false
	}
	h.unindex(ent)
	return true
}

// Exclude is Heap.Exclude keeping the index consistent.
func (h *Identity[T, P]) Exclude(filter func(ent *Entry[T, P]) bool, start, end int) []*Entry[T, P] {
	removed := h.h.Exclude(filter, start, end)
	for _, ent := range removed {
		h.unindex(ent)
	}
	return removed
}

func (h *Identity[T, P]) Entries() []*Entry[T, P] {
	return h.h.Entries()
}

func (h *Identity[T, P]) unindex(ent *Entry[T, P]) {
	bucket := h.idx[ent.value]
	for i, e := range bucket {
		if e == ent {
			last := len(bucket) - 1
			bucket[i] = bucket[last]
			bucket[last] = nil
			bucket = bucket[:last]
			break
		}
	}
	if len(bucket) == 0 {
		delete(h.idx, ent.value)
	} else {
		h.idx[ent.value] = bucket
	}
}

func (h *Identity[T, P]) reindex() {
	idx := make(map[T][]*Entry[T, P], h.h.Len())
	for _, ent := range h.h.s {
		idx[ent.value] = append(idx[ent.value], ent)
	}
	h.idx = idx
}
