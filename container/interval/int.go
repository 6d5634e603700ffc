package interval

import (
	"github.com/eaugeas/ordered/container/tree"
)

// IntLesser is an implementor of tree.Lesser that
// can be used to compare intervals within a tree.
// It is based on the comparison of only the minimum
// number of the interval
type IntLesser struct{}

func (IntLesser) Less(a, b Int) int {
	amin := a.Min()
	bmin := b.Min()
	if amin < bmin {
		return -1
	} else if amin == bmin {
		return 0
	} else {
		return 1
	}
}

// Int represents an interval with integers. An interval
// is represented by two integers a, b such that
// [a, b]. An interval is immutable.
type Int struct {
	min int
	max int
}

// NewInt returns a new interval
func NewInt(min, max int) Int {
	if min > max {
		panic("min cannot be greater than max")
	}

	return Int{min: min, max: max}
}

// Min returns the a of the interval [a, b]
func (i Int) Min() int {
	return i.min
}

// Max returns the b of the interval [a, b]
func (i Int) Max() int {
	return i.max
}

// Len returns the length of the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains returns true if the interval represented
// by j is contained by i
func (i *Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints returns true if the intersection between
// i and j is empty. All empty intervals are disjoint
func (i Int) Disjoints(j Int) bool {
	return (i.min < j.min && i.max < j.min) ||
		(j.min < i.min && j.max < i.min)
}

// Intersection returns the interval of intersection
// between i and j
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection between two disjoint intervals")
	}

	return Int{
		min: max(i.min, j.min),
		max: min(i.max, j.max),
	}
}

// CanMerge returns true if the both intervals can be
// merged into one. That is, if i and j are not disjoints
// or they share a boundary. For example, i = [a, b] and
// j = [b + 1, c], in which case the resulting merged
// interval would be k = [a, c]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || i.min == j.max+1 || i.max+1 == j.min
}

// Merge merges two intervals and returns the result
// in a new interval. Only a pair of non disjoints
// intervals can be merged. If j is disjoint with i
// Merge will panic
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("cannot merge intervals")
	}

	return Int{
		min: min(i.min, j.min),
		max: max(i.max, j.max),
	}
}

// IntSet represents a set of intervals
// of the type {[Ii.Min(), Ii.Max()], i = 0 .. Len()}, where
// the intervals are disjoints. A Window is a
// useful data structure to keep track of continuous
// sets of objects.
//
// A use case for this is to keep track of message offsets
// that are continous. Instead of keeping [1, 2, 3, 5],
// for example, a window can keep [1, 3], [5] and when 4
// is added to the window, the result will be [1, 5],
// instead of [1, 2, 3, 4, 5].
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates a new instance of a interval set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.NewAVLTree[Int](IntLesser{})}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Intervals returns the disjoint intervals of the
// set in ascending order
func (s *IntSet) Intervals() []Int {
	return s.intervals.ToSlice()
}

// Contains returns true if the set contains
// any interval which contains the interval
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	if !ok {
		return false
	}

	return lower.Min() <= i.Min() && i.Max() <= lower.Max()
}

// Insert inserts an interval to the set. If there already
// is an interval in the tree which is not disjoint with i
// the two will be merged
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		s.mustDelete(lower)
		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		s.mustDelete(higher)
		i = i.Merge(higher)
	}

	s.intervals.Insert(i)
}

// Remove removes every number in r from the set. Intervals
// that are only partially covered by r are shrunk or split
func (s *IntSet) Remove(r Int) {
	var remainders []Int

	if lower, ok := s.lower(r); ok && !lower.Disjoints(r) {
		s.mustDelete(lower)
		remainders = appendRemainders(remainders, lower, r)
	}

	for {
		higher, ok := s.higher(r)
		if !ok || higher.Disjoints(r) {
			break
		}

		s.mustDelete(higher)
		remainders = appendRemainders(remainders, higher, r)
	}

	for _, i := range remainders {
		s.intervals.Insert(i)
	}
}

// appendRemainders appends the parts of i not covered by r
func appendRemainders(remainders []Int, i, r Int) []Int {
	if i.min < r.min {
		remainders = append(remainders, Int{min: i.min, max: r.min - 1})
	}
	if i.max > r.max {
		remainders = append(remainders, Int{min: r.max + 1, max: i.max})
	}
	return remainders
}

func (s *IntSet) mustDelete(i Int) {
	if !s.intervals.Delete(i) {
		panic("failed to delete interval from set")
	}
}

func (s *IntSet) higher(i Int) (Int, bool) {
	return s.intervals.Ceil(i)
}

func (s *IntSet) lower(i Int) (Int, bool) {
	return s.intervals.Floor(i)
}
