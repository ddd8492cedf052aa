package heap_test

import (
	"math/rand"
	"testing"

	"github.com/ngicks/fastheap/heap"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	newHeap := func() *heap.Identity[*testObject, int] {
		return heap.NewIdentity[*testObject, int](heap.Ascending[int])
	}

	t.Run("membership", func(t *testing.T) {
		h := newHeap()
		a, b, c := &testObject{"a"}, &testObject{"b"}, &testObject{"c"}
		never := &testObject{"a"}

		h.Push(a, 1)
		require.True(t, h.Has(a))
		h.Push(b, 2)
		h.Push(c, 3)
		require.False(t, h.Has(never), "identity, not value equality")

		popped, err := h.Pop()
		require.NoError(t, err)
		require.Same(t, a, popped.Value())
		require.False(t, h.Has(a))

		require.True(t, h.RemoveIdentity(c))
		require.False(t, h.Has(c))
		require.False(t, h.RemoveIdentity(c))
		require.False(t, h.RemoveIdentity(never))

		require.True(t, h.Has(b))
		require.Equal(t, 1, h.Len())
	})

	t.Run("duplicates", func(t *testing.T) {
		h := newHeap()
		a := &testObject{"a"}
		h.Push(a, 5)
		h.Push(a, 1)
		require.Len(t, h.Handles(a), 2)

		require.True(t, h.RemoveIdentity(a))
		require.True(t, h.Has(a))
		require.Len(t, h.Handles(a), 1)

		require.True(t, h.RemoveIdentity(a))
		require.False(t, h.Has(a))
		require.Nil(t, h.Handles(a))
		require.True(t, h.IsEmpty())
	})

	t.Run("remove by handle", func(t *testing.T) {
		h := newHeap()
		a := &testObject{"a"}
		ent := h.Push(a, 1)
		h.Push(&testObject{"b"}, 0)
		require.True(t, h.Contains(ent))
		require.True(t, h.Remove(ent))
		require.False(t, h.Has(a))
		require.False(t, h.Remove(ent))
	})

	t.Run("heapify rebuilds index", func(t *testing.T) {
		h := newHeap()
		old := &testObject{"old"}
		h.Push(old, 1)

		x, y := &testObject{"x"}, &testObject{"y"}
		h.Heapify([]*heap.Entry[*testObject, int]{
			heap.NewEntry(x, 9),
			heap.NewEntry(y, 3),
		})
		require.False(t, h.Has(old))
		require.True(t, h.Has(x))
		require.True(t, h.Has(y))

		top, err := h.Peek()
		require.NoError(t, err)
		require.Same(t, y, top.Value())
		assertHeapOrder(t, h.Entries(), heap.Ascending[int])
	})

	t.Run("trim keeps index", func(t *testing.T) {
		h := heap.NewIdentity[*testObject, int](heap.Ascending[int], heap.WithCapacity(32))
		objs := make([]*testObject, 8)
		for i := range objs {
			objs[i] = &testObject{}
			h.Push(objs[i], i)
		}
		_, err := h.Pop()
		require.NoError(t, err)

		h.Trim()
		require.Equal(t, 7, h.Cap())
		require.False(t, h.Has(objs[0]))
		for _, o := range objs[1:] {
			require.True(t, h.Has(o))
		}
	})

	t.Run("exclude keeps index", func(t *testing.T) {
		h := newHeap()
		objs := make([]*testObject, 6)
		for i := range objs {
			objs[i] = &testObject{}
			h.Push(objs[i], i)
		}
		removed := h.Exclude(func(ent *heap.Entry[*testObject, int]) bool { return ent.Priority()%2 == 0 }, 0, h.Len())
		require.Len(t, removed, 3)
		for i, o := range objs {
			require.Equal(t, i%2 != 0, h.Has(o))
		}
	})

	t.Run("random", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		h := newHeap()
		live := map[*testObject]bool{}
		var all []*testObject
		for step := 0; step < 3000; step++ {
			switch op := rng.Intn(4); {
			case op < 2:
				o := &testObject{}
				h.Push(o, rng.Intn(100))
				live[o] = true
				all = append(all, o)
			case op == 2:
				if ent, err := h.Pop(); err == nil {
					delete(live, ent.Value())
				}
			default:
				if len(all) > 0 {
					o := all[rng.Intn(len(all))]
					require.Equal(t, live[o], h.RemoveIdentity(o))
					delete(live, o)
				}
			}
			require.Equal(t, len(live), h.Len())
		}
		for _, o := range all {
			require.Equal(t, live[o], h.Has(o))
		}
		assertHeapOrder(t, h.Entries(), heap.Ascending[int])
	})
}
