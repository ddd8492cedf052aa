package heap

// Slot level helpers. Every helper keeps Entry.index in sync with the
// slot it lands on.

func (h *Heap[T, P]) lessAt(i, j int) bool {
	return h.less(h.s[i].priority, h.s[j].priority)
}

func (h *Heap[T, P]) swap(i, j int) {
	h.s[i], h.s[j] = h.s[j], h.s[i]
	h.s[i].index = i
	h.s[j].index = j
}

func (h *Heap[T, P]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.lessAt(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

// down sifts the entry at i0 toward the leaves.
// It reports whether the entry moved.
func (h *Heap[T, P]) down(i0 int) bool {
	n := len(h.s)
	i := i0
	for {
		l := 2*i + 1
		if l >= n || l < 0 { // l < 0 after int overflow
			break
		}
		j := l
		if r := l + 1; r < n && h.lessAt(r, l) {
			j = r
		}
		if !h.lessAt(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

// removeAt detaches the entry at i, fills the hole with the last entry
// and restores heap order around it.
func (h *Heap[T, P]) removeAt(i int) *Entry[T, P] {
	n := len(h.s) - 1
	removed := h.s[i]
	if i != n {
		h.s[i] = h.s[n]
		h.s[i].index = i
	}
	// let the GC reclaim the vacated slot.
	h.s[n] = nil
	h.s = h.s[:n]

	if i != n {
		if !h.down(i) {
			h.up(i)
		}
	}

	removed.index = -1
	return removed
}

// init rewrites every index and establishes heap order bottom-up.
// The loop starts at n/2 and walks down to the root.
func (h *Heap[T, P]) init() {
	for i, ent := range h.s {
		ent.index = i
	}
	for i := len(h.s) / 2; i >= 0; i-- {
		h.down(i)
	}
}
