package tree

import "golang.org/x/exp/constraints"

// Lesser compares two values. Implementations must define
// a strict total order, the tree does not detect inconsistent
// comparisons
type Lesser[T any] interface {
	// Less returns
	//  -1 if a < b
	//   0 if a == b
	//   1 if a > b
	Less(a, b T) int
}

// LesserFunc allows functions to implement the Lesser interface
type LesserFunc[T any] func(a, b T) int

// Less implementation of Lesser for LesserFunc
func (f LesserFunc[T]) Less(a, b T) int {
	return f(a, b)
}

// OrderedLesser implementation of the Lesser interface for
// any type supporting the < and > operators
type OrderedLesser[T constraints.Ordered] struct{}

// Less returns
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
func (OrderedLesser[T]) Less(a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else {
		return 0
	}
}

// IntLesser implementation of the Lesser interface for
// integers
type IntLesser = OrderedLesser[int]
