package tree

import (
	errs "github.com/eaugeas/ordered/errors"
)

// Kind identifies the balancing strategy used by a tree
type Kind string

const (
	// KindUnbalanced trees apply no balancing strategy
	KindUnbalanced Kind = "unbalanced"

	// KindAVL trees keep the heights of the two subtrees of
	// every node within one of each other
	KindAVL Kind = "avl"
)

// ErrInvalidKind is returned when asking for a tree of an unknown Kind
var ErrInvalidKind = errs.New(errs.ErrCodeInvalidKind, "unknown tree kind")

// ParseKind returns the Kind named by s
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindUnbalanced, KindAVL:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

// modifier restores the tree properties of a node after the
// subtree rooted at it has changed. The tree calls it on every
// node on the path from a changed node back to the root, and
// the returned node replaces n as the root of that subtree
type modifier[T any] interface {
	fix(t *Tree[T], n *Node[T]) *Node[T]
}

func newModifier[T any](kind Kind) (modifier[T], error) {
	switch kind {
	case KindUnbalanced:
		return unbalanced[T]{}, nil
	case KindAVL, "":
		return avl[T]{}, nil
	default:
		return nil, ErrInvalidKind
	}
}
