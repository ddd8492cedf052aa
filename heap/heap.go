// Package heap implements a generic array-backed binary min-heap
// keyed by a caller supplied ordering over priorities.
//
// The heap is not safe for concurrent use. Callers sharing a heap
// between goroutines must guard every mutation with a lock.
package heap

import "errors"

var (
	// ErrEmptyQueue is returned by Peek and Pop on a heap without entries.
	ErrEmptyQueue = errors.New("empty queue")
)

// Heap is a binary min-heap of entries ordered by less over their priorities.
// The entry at the top is always one that no other entry is less than.
type Heap[T any, P any] struct {
	s    []*Entry[T, P]
	less func(a, b P) bool
}

// New returns an empty heap ordered by less.
//
// less must report whether a strictly precedes b, and it must be a strict weak ordering:
// irreflexive, asymmetric, transitive, with transitive incomparability.
// Heap does not check this; violating it silently breaks heap order.
// To get a max-heap, pass a predicate that reports a > b.
//
// New panics if less is nil.
func New[T any, P any](less func(a, b P) bool, options ...Option) *Heap[T, P] {
	if less == nil {
		panic("heap: nil less func")
	}
	opt := applyOptions(options)
	return &Heap[T, P]{
		s:    make([]*Entry[T, P], 0, opt.capacity),
		less: less,
	}
}

// Len returns the number of entries in h.
func (h *Heap[T, P]) Len() int {
	return len(h.s)
}

// Cap returns the capacity of the underlying storage.
func (h *Heap[T, P]) Cap() int {
	return cap(h.s)
}

// IsEmpty reports whether h has no entries.
func (h *Heap[T, P]) IsEmpty() bool {
	return len(h.s) == 0
}

// Push adds v with priority p to h and returns its handle.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T, P]) Push(v T, p P) *Entry[T, P] {
	ent := &Entry[T, P]{value: v, priority: p, index: len(h.s)}
	h.s = append(h.s, ent)
	h.up(ent.index)
	return ent
}

// Peek returns the top entry without removing it.
// ErrEmptyQueue is returned if h is empty.
func (h *Heap[T, P]) Peek() (*Entry[T, P], error) {
	if len(h.s) == 0 {
		return nil, ErrEmptyQueue
	}
	return h.s[0], nil
}

// Pop removes and returns the top entry.
// ErrEmptyQueue is returned if h is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T, P]) Pop() (*Entry[T, P], error) {
	if len(h.s) == 0 {
		return nil, ErrEmptyQueue
	}
	return h.removeAt(0), nil
}

// Heapify replaces the content of h with entries and restores heap order in O(n).
//
// h takes ownership of entries; the caller must not use the slice afterwards.
// Entries previously stored in h are detached.
// Elements may be entries of h itself, or detached ones.
//
// Heapify panics, leaving h unchanged, if an element is nil, appears twice,
// or is stored in another heap.
func (h *Heap[T, P]) Heapify(entries []*Entry[T, P]) {
	for _, ent := range h.s {
		ent.index = -1
	}
	// -2 marks an entry seen in this pass.
	for i, ent := range entries {
		if ent == nil || ent.index != -1 {
			for _, marked := range entries[:i] {
				marked.index = -1
			}
			for j, ent := range h.s {
				ent.index = j
			}
			panic("heap: Heapify: nil, duplicate or foreign entry")
		}
		ent.index = -2
	}
	if entries == nil {
		entries = make([]*Entry[T, P], 0)
	}
	h.s = entries
	h.init()
}

// Trim shrinks the underlying storage to exactly h.Len().
// Size, order and handles are unchanged.
func (h *Heap[T, P]) Trim() {
	if cap(h.s) == len(h.s) {
		return
	}
	trimmed := make([]*Entry[T, P], len(h.s))
	copy(trimmed, h.s)
	h.s = trimmed
}

// Contains reports whether ent is currently stored in h.
func (h *Heap[T, P]) Contains(ent *Entry[T, P]) bool {
	if ent == nil {
		return false
	}
	i := ent.index
	return i >= 0 && i < len(h.s) && h.s[i] == ent
}

// Remove removes ent from h. It returns false if ent is not in h.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[T, P]) Remove(ent *Entry[T, P]) bool {
	if !h.Contains(ent) {
		return false
	}
	h.removeAt(ent.index)
	return true
}

// Exclude removes entries for which filter returns true.
// Only slots in [start,end) are scanned; the range is clamped to the storage.
// If filter is nil, Exclude is no-op.
// The complexity of exclusion is O(n) where n = end-start,
// and restoration of heap order is O(m) where m = new len.
func (h *Heap[T, P]) Exclude(filter func(ent *Entry[T, P]) bool, start, end int) (removed []*Entry[T, P]) {
	if filter == nil {
		return
	}
	if start < 0 {
		start = 0
	}
	if end > len(h.s) {
		end = len(h.s)
	}
	if start >= end {
		return
	}

	kept := h.s[:start]
	for i := start; i < len(h.s); i++ {
		ent := h.s[i]
		if i < end && filter(ent) {
			ent.index = -1
			removed = append(removed, ent)
			continue
		}
		kept = append(kept, ent)
	}
	for i := len(kept); i < len(h.s); i++ {
		h.s[i] = nil
	}
	h.s = kept

	if len(removed) > 0 {
		h.init()
	}
	return removed
}

// Entries returns a copy of the stored handles in storage order.
// Index 0 is the top.
func (h *Heap[T, P]) Entries() []*Entry[T, P] {
	out := make([]*Entry[T, P], len(h.s))
	copy(out, h.s)
	return out
}
