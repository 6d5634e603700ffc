package tree

import "github.com/eaugeas/ordered/logs"

// rotation is the restructuring applied to a node whose
// subtrees differ in height by more than one
type rotation uint8

const (
	rotationNone rotation = iota

	// rotationLeftLeft: the left subtree is too tall and
	// is not heavier on its right side
	rotationLeftLeft

	// rotationRightRight: the right subtree is too tall and
	// is not heavier on its left side
	rotationRightRight

	// rotationLeftRight: the left subtree is too tall and
	// heavier on its right side
	rotationLeftRight

	// rotationRightLeft: the right subtree is too tall and
	// heavier on its left side
	rotationRightLeft
)

func (r rotation) String() string {
	switch r {
	case rotationNone:
		return "none"
	case rotationLeftLeft:
		return "left-left"
	case rotationRightRight:
		return "right-right"
	case rotationLeftRight:
		return "left-right"
	case rotationRightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

// balanceFactor is the height of the left subtree of n minus
// the height of its right subtree
func balanceFactor[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return heightOf(n.left) - heightOf(n.right)
}

// classify selects the rotation that restores the balance of n.
// The heights of the children of n must be up to date
func classify[T any](n *Node[T]) rotation {
	switch bf := balanceFactor(n); {
	case bf > 1 && balanceFactor(n.left) >= 0:
		return rotationLeftLeft
	case bf > 1:
		return rotationLeftRight
	case bf < -1 && balanceFactor(n.right) <= 0:
		return rotationRightRight
	case bf < -1:
		return rotationRightLeft
	default:
		return rotationNone
	}
}

// avl balances the tree using the AVL algorithm. After each insert
// or delete every node on the modified path is rotated back into
// balance, so the height of the tree stays below 1.44*log2(n+2)
type avl[T any] struct{}

func (avl[T]) fix(t *Tree[T], n *Node[T]) *Node[T] {
	updateHeight(n)

	r := classify(n)
	switch r {
	case rotationNone:
		return n
	case rotationLeftLeft:
		n = rotateRight(n)
	case rotationRightRight:
		n = rotateLeft(n)
	case rotationLeftRight:
		n.left = rotateLeft(n.left)
		n = rotateRight(n)
	case rotationRightLeft:
		n.right = rotateRight(n.right)
		n = rotateLeft(n)
	default:
		panic("unreachable statement")
	}

	if t.log.IsLevelEnabled(logs.TraceLevel) {
		t.log.Trace("rotate", logs.MapFields{
			"rotation": r.String(),
			"height":   n.height,
			"len":      t.len,
		})
	}

	return n
}

// NewAVLTree creates a new instance of a tree using AVL
// as the balancing algorithm
func NewAVLTree[T any](cmp Lesser[T]) *Tree[T] {
	return NewAVLTreeWithOpts(cmp, Opts{})
}

// NewAVLTreeWithOpts creates a new AVL tree with the provided
// options. opts.Kind is ignored
func NewAVLTreeWithOpts[T any](cmp Lesser[T], opts Opts) *Tree[T] {
	opts.Kind = KindAVL
	t, err := NewWithOpts(cmp, opts)
	if err != nil {
		panic(err)
	}
	return t
}
