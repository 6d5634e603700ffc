package tree

import "iter"

// SortedSet is the set of operations offered by every tree kind.
// Values are kept in the order defined by a Lesser, and values
// comparing equal are stored once
type SortedSet[T any] interface {
	Len() int
	Empty() bool

	// Insert adds v, overwriting an equal value if present.
	// It returns true if the set grew
	Insert(v T) bool
	Contains(v T) bool

	// Delete removes the value equal to v. It returns false
	// if there was none
	Delete(v T) bool

	Min() (T, error)
	Max() (T, error)
	Successor(v T) (T, error)
	Predecessor(v T) (T, error)
	Ceil(v T) (T, bool)
	Floor(v T) (T, bool)

	Iterator() *Iterator[T]
	All() iter.Seq[T]
	ToSlice() []T

	// Height returns -1 for an empty set
	Height() int
}

var _ SortedSet[int] = (*Tree[int])(nil)
