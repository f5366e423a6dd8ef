package tree

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Lesser compares two values
type Lesser[V any] interface {
	// Less returns
	//  -1 if a < b
	//   0 if a == b
	//   1 if a > b
	Less(a, b V) int
}

// LesserFunc allows functions to implement the Lesser interface
type LesserFunc[V any] func(a, b V) int

// Less returns the result of calling f
func (f LesserFunc[V]) Less(a, b V) int {
	return f(a, b)
}

// OrderedLesser implementation of the Lesser interface for
// any type that supports the builtin ordering operators. NaN
// is lower than any other float and only equal to itself
type OrderedLesser[V constraints.Ordered] struct{}

// Less returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func (OrderedLesser[V]) Less(a, b V) int {
	return cmp.Compare(a, b)
}
