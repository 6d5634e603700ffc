package tree

import "iter"

// Iterator walks the values of a tree in ascending order. It keeps
// the path of ancestors pending to be visited in a private stack.
// The tree must not be modified while an iterator is in use,
// otherwise values can be skipped or repeated
type Iterator[T any] struct {
	stack []*Node[T]
}

func newIterator[T any](root *Node[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeft(root)
	return it
}

func (it *Iterator[T]) pushLeft(n *Node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// HasNext returns true if there are values left to visit
func (it *Iterator[T]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *Iterator[T]) nextNode() *Node[T] {
	if len(it.stack) == 0 {
		return nil
	}

	n := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n
}

// Next returns the next value in ascending order. The boolean is
// false once the iterator is exhausted, and stays false afterwards
func (it *Iterator[T]) Next() (T, bool) {
	n := it.nextNode()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Value, true
}

// Iterator returns a new iterator positioned before the
// lowest value of the tree
func (t *Tree[T]) Iterator() *Iterator[T] {
	return newIterator(t.root)
}

// All returns a sequence of the values of the tree in
// ascending order. Each call to the sequence starts a
// fresh traversal
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := t.Iterator(); it.HasNext(); {
			v, _ := it.Next()
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice copies the values in the tree to a slice
// in ascending order
func (t *Tree[T]) ToSlice() []T {
	values := make([]T, 0, t.len)
	for it := t.Iterator(); it.HasNext(); {
		v, _ := it.Next()
		values = append(values, v)
	}
	return values
}

// InOrderWalk implements an in order walk
// on the tree
func (t *Tree[T]) InOrderWalk(fn func(*Node[T])) {
	for it := t.Iterator(); it.HasNext(); {
		fn(it.nextNode())
	}
}

// PreOrderWalk implements a pre order walk on the tree,
// visiting every node before its left and right subtrees
func (t *Tree[T]) PreOrderWalk(fn func(*Node[T])) {
	if t.root == nil {
		return
	}

	stack := []*Node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)

		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}
