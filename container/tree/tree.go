package tree

import (
	errs "github.com/eaugeas/ordered/errors"
	"github.com/eaugeas/ordered/logs"
)

var (
	// ErrEmpty is returned by queries that need at least one
	// value when the tree has none
	ErrEmpty = errs.New(errs.ErrCodeEmptyContainer, "tree is empty")

	// ErrNoResult is returned when no value in the tree
	// satisfies a query
	ErrNoResult = errs.New(errs.ErrCodeNoResult, "no value satisfies the query")
)

// Node of a tree. A node owns its children exclusively, there
// are no parent links
type Node[T any] struct {
	Value T

	height int
	left   *Node[T]
	right  *Node[T]
}

func heightOf[T any](n *Node[T]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeight[T any](n *Node[T]) {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Height returns the number of edges in the longest path
// from the node to a leaf. It returns -1 for a nil node
func (n *Node[T]) Height() int {
	return heightOf(n)
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Opts are the options used to create a Tree
type Opts struct {
	// Kind of balancing applied to the tree. Defaults to KindAVL
	Kind Kind

	// Logger used by the tree. Defaults to a logger that
	// discards every entry
	Logger logs.Logger
}

// Tree represents a binary search tree holding a set of values.
// Values equal according to the Lesser are stored once.
// A Tree is not safe for concurrent use
type Tree[T any] struct {
	root *Node[T]
	cmp  Lesser[T]
	mod  modifier[T]
	log  logs.Logger
	len  int
}

// NewWithOpts creates a new tree of the kind selected by opts
func NewWithOpts[T any](cmp Lesser[T], opts Opts) (*Tree[T], error) {
	if cmp == nil {
		panic("cmp must be set")
	}

	mod, err := newModifier[T](opts.Kind)
	if err != nil {
		return nil, err
	}

	var logger logs.Logger = logs.NewDiscardLogger()
	if opts.Logger != nil {
		logger = opts.Logger
	}

	kind := opts.Kind
	if kind == "" {
		kind = KindAVL
	}

	return &Tree[T]{
		cmp: cmp,
		mod: mod,
		log: logger.ForClass("tree", string(kind)),
	}, nil
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Height returns the number of edges in the longest path from
// the root to a leaf. It returns -1 for an empty tree
func (t *Tree[T]) Height() int {
	return heightOf(t.root)
}

// Min returns the lowest value in the tree. It returns
// ErrEmpty if the tree is empty
func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmpty
	}
	return t.root.Min().Value, nil
}

// Max returns the highest value in the tree. It returns
// ErrEmpty if the tree is empty
func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmpty
	}
	return t.root.Max().Value, nil
}

// Contains returns true if the tree contains a
// value equal to v
func (t *Tree[T]) Contains(v T) bool {
	return t.Find(v) != nil
}

// Find returns the node in the tree that
// contains a value equal to the one provided
func (t *Tree[T]) Find(v T) *Node[T] {
	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Insert a value into the tree. It returns true if the value was
// not present. If an equal value is already stored it is
// overwritten with v and Insert returns false
func (t *Tree[T]) Insert(v T) bool {
	var added bool
	t.root, added = t.insert(t.root, v)
	if added {
		t.len++
	}
	return added
}

func (t *Tree[T]) insert(n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return &Node[T]{Value: v}, true
	}

	var added bool
	switch c := t.cmp.Less(v, n.Value); {
	case c < 0:
		n.left, added = t.insert(n.left, v)
	case c > 0:
		n.right, added = t.insert(n.right, v)
	default:
		n.Value = v
		return n, false
	}

	if !added {
		return n, false
	}
	return t.mod.fix(t, n), true
}

// Delete the node in the tree that has a value equal
// to v. It returns false if there is no such node
func (t *Tree[T]) Delete(v T) bool {
	var deleted bool
	t.root, deleted = t.delete(t.root, v)
	if deleted {
		t.len--
	}
	return deleted
}

func (t *Tree[T]) delete(n *Node[T], v T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var deleted bool
	switch c := t.cmp.Less(v, n.Value); {
	case c < 0:
		n.left, deleted = t.delete(n.left, v)
	case c > 0:
		n.right, deleted = t.delete(n.right, v)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		}

		// the in order successor takes the place of n and is
		// then removed from the right subtree, where it has
		// no left child
		n.Value = n.right.Min().Value
		n.right, deleted = t.delete(n.right, n.Value)
	}

	if !deleted {
		return n, false
	}
	return t.mod.fix(t, n), true
}

// Successor returns the value in the tree of the lowest order
// that is strictly greater than v. It returns ErrEmpty if the
// tree is empty and ErrNoResult if there is no such value
func (t *Tree[T]) Successor(v T) (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmpty
	}

	var successor *Node[T]
	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			successor = curr
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			if curr.right != nil {
				successor = curr.right.Min()
			}
			curr = nil
		}
	}

	if successor == nil {
		return zero, ErrNoResult
	}
	return successor.Value, nil
}

// Predecessor returns the value in the tree of the highest order
// that is strictly smaller than v. It returns ErrEmpty if the
// tree is empty and ErrNoResult if there is no such value
func (t *Tree[T]) Predecessor(v T) (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmpty
	}

	var predecessor *Node[T]
	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			predecessor = curr
			curr = curr.right
		default:
			if curr.left != nil {
				predecessor = curr.left.Max()
			}
			curr = nil
		}
	}

	if predecessor == nil {
		return zero, ErrNoResult
	}
	return predecessor.Value, nil
}

// Ceil returns the value in the tree of the lowest order that
// is greater or equal to v. The boolean is false if there is
// no such value
func (t *Tree[T]) Ceil(v T) (T, bool) {
	var ceil *Node[T]
	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			ceil = curr
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr.Value, true
		}
	}

	if ceil == nil {
		var zero T
		return zero, false
	}
	return ceil.Value, true
}

// Floor returns the value in the tree of the highest order that
// is lower or equal to v. The boolean is false if there is
// no such value
func (t *Tree[T]) Floor(v T) (T, bool) {
	var floor *Node[T]
	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			floor = curr
			curr = curr.right
		default:
			return curr.Value, true
		}
	}

	if floor == nil {
		var zero T
		return zero, false
	}
	return floor.Value, true
}

// Balanced returns true if for every node in the tree the heights
// of its two subtrees differ by at most one. The heights are
// computed from scratch and the tree is never modified
func (t *Tree[T]) Balanced() bool {
	_, balanced := checkBalance(t.root)
	return balanced
}

func checkBalance[T any](n *Node[T]) (int, bool) {
	if n == nil {
		return -1, true
	}

	left, ok := checkBalance(n.left)
	if !ok {
		return left, false
	}

	right, ok := checkBalance(n.right)
	if !ok {
		return right, false
	}

	diff := left - right
	return 1 + max(left, right), diff >= -1 && diff <= 1
}
