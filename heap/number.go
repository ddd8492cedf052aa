package heap

import "golang.org/x/exp/constraints"

// NewNumber returns a heap ordered ascending by priority.
func NewNumber[T any, P constraints.Ordered](options ...Option) *Heap[T, P] {
	return New[T, P](Ascending[P], options...)
}

// Ascending reports a < b. It is the default ordering.
//
// Float NaN breaks strict weak ordering; do not store NaN priorities.
func Ascending[P constraints.Ordered](a, b P) bool {
	return a < b
}

// Descending reports a > b. A heap built with it pops the largest priority first.
func Descending[P constraints.Ordered](a, b P) bool {
	return a > b
}
