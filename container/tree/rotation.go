package tree

// rotateLeft makes the right child of n the root of the subtree
// and returns it. The heights of both nodes are refreshed
func rotateLeft[T any](n *Node[T]) *Node[T] {
	target := n.right
	if target == nil {
		return n
	}

	n.right = target.left
	target.left = n

	updateHeight(n)
	updateHeight(target)
	return target
}

// rotateRight makes the left child of n the root of the subtree
// and returns it. The heights of both nodes are refreshed
func rotateRight[T any](n *Node[T]) *Node[T] {
	target := n.left
	if target == nil {
		return n
	}

	n.left = target.right
	target.right = n

	updateHeight(n)
	updateHeight(target)
	return target
}
