package tree

// unbalanced keeps the Binary Search Tree properties without
// applying any balancing strategy. It only refreshes the
// cached height of the nodes along the modified path
type unbalanced[T any] struct{}

func (unbalanced[T]) fix(t *Tree[T], n *Node[T]) *Node[T] {
	updateHeight(n)
	return n
}

// NewUnbalancedTree creates a new instance of a tree that applies
// no balancing. How balanced the branches of the tree are depends
// exclusively on the order of the insert and delete operations
// performed on the tree. Inserting values in sorted order degrades
// it into a list
func NewUnbalancedTree[T any](cmp Lesser[T]) *Tree[T] {
	return NewUnbalancedTreeWithOpts(cmp, Opts{})
}

// NewUnbalancedTreeWithOpts creates a new unbalanced tree with the
// provided options. opts.Kind is ignored
func NewUnbalancedTreeWithOpts[T any](cmp Lesser[T], opts Opts) *Tree[T] {
	opts.Kind = KindUnbalanced
	t, err := NewWithOpts(cmp, opts)
	if err != nil {
		panic(err)
	}
	return t
}
