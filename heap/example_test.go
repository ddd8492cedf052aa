package heap_test

import (
	"fmt"

	"github.com/ngicks/fastheap/heap"
)

func ExampleHeap() {
	h := heap.NewNumber[string, int]()
	h.Push("obj_1", 1)
	h.Push("obj_0", 0)
	h.Push("obj_5", 5)
	h.Push("obj_4", 4)
	h.Push("obj_3", 3)

	top, _ := h.Peek()
	fmt.Println(top.Value(), h.Len())

	for !h.IsEmpty() {
		ent, _ := h.Pop()
		fmt.Println(ent.Value())
	}
	h.Trim()
	// Output:
	// obj_0 5
	// obj_0
	// obj_1
	// obj_3
	// obj_4
	// obj_5
}

func ExampleIdentity() {
	type job struct{ name string }
	a, b := &job{"a"}, &job{"b"}

	h := heap.NewIdentity[*job, int](heap.Descending[int])
	h.Push(a, 1)
	h.Push(b, 2)
	h.RemoveIdentity(b)

	fmt.Println(h.Has(a), h.Has(b))
	top, _ := h.Peek()
	fmt.Println(top.Value().name)
	// Output:
	// true false
	// a
}
