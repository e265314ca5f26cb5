package tree

import (
	"errors"

	"github.com/benz9527/xtree/lib/infra"
)

func isBlack[K any, V any](node RBNode[K, V]) bool {
	return isNilLeaf[K, V](node) || node.Color() == Black
}

func isRed[K any, V any](node RBNode[K, V]) bool {
	return !isNilLeaf[K, V](node) && node.Color() == Red
}

func isNilLeaf[K any, V any](node RBNode[K, V]) bool {
	return node == nil || (!node.HasKeyVal() && node.Parent() == nil && node.Left() == nil && node.Right() == nil)
}

func isRoot[K any, V any](node RBNode[K, V]) bool {
	return node != nil && node.Parent() == nil
}

func blackDepthTo[K any, V any](target, to RBNode[K, V]) int {
	depth := 0
	for aux := target; aux != to; aux = aux.Parent() {
		if isBlack[K, V](aux) {
			depth++
		}
	}
	return depth
}

// rbtree rule validation utilities.

var (
	ErrRBTreeRedViolation   = errors.New("[rbtree] red violation")
	ErrRBTreeBlackViolation = errors.New("[rbtree] black violation")
	ErrRBTreeOrderViolation = errors.New("[rbtree] in-order key sequence not ascending")
)

// RedViolationValidate checks that the root is black and that no red node
// has a red parent or a red child, via an iterative in-order traversal.
func RedViolationValidate[K any, V any](tree RBTree[K, V]) error {
	size := tree.Len()
	var aux RBNode[K, V] = tree.Root()
	if size <= 0 || aux == nil {
		return nil
	}
	if isRed[K, V](tree.Root()) {
		return ErrRBTreeRedViolation
	}

	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !isNilLeaf[K, V](aux); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; isRed[K, V](aux) {
			if isRed[K, V](aux.Parent()) ||
				isRed[K, V](aux.Left()) || isRed[K, V](aux.Right()) {
				return ErrRBTreeRedViolation
			}
		}

		stack = stack[:size-1]
		if aux.Right() != nil {
			for aux = aux.Right(); !isNilLeaf[K, V](aux); aux = aux.Left() {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// BFS traversal to load every node owning at least one nil leaf.
func bfsLeaves[K any, V any](tree RBTree[K, V]) []RBNode[K, V] {
	size := tree.Len()
	var aux RBNode[K, V] = tree.Root()
	if size <= 0 || isNilLeaf[K, V](aux) {
		return nil
	}

	leaves := make([]RBNode[K, V], 0, size>>1+1)
	stack := make([]RBNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()
	stack = append(stack, aux)

	for len(stack) > 0 {
		aux = stack[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ isNilLeaf[K, V](l) || isNilLeaf[K, V](r) {
			leaves = append(leaves, aux)
		}
		if !isNilLeaf[K, V](l) {
			stack = append(stack, l)
		}
		if !isNilLeaf[K, V](r) {
			stack = append(stack, r)
		}
		stack = stack[1:]
	}
	return leaves
}

// BlackViolationValidate checks black-height uniformity: every path from
// the root down to a nil leaf crosses the same number of black nodes.
func BlackViolationValidate[K any, V any](tree RBTree[K, V]) error {
	leaves := bfsLeaves[K, V](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K, V](leaves[0], tree.Root())
	for i := 1; i < len(leaves); i++ {
		if blackDepthTo[K, V](leaves[i], tree.Root()) != blackDepth {
			return ErrRBTreeBlackViolation
		}
	}
	return nil
}

// AscendingOrderValidate checks the binary-search-tree order invariant:
// a full in-order traversal yields strictly ascending keys under kcmp.
func AscendingOrderValidate[K any, V any](tree RBTree[K, V], kcmp infra.KeyComparator[K]) error {
	var (
		prev    K
		hasPrev bool
		verr    error
	)
	tree.Foreach(func(_ int64, _ RBColor, key K, _ V) bool {
		if hasPrev {
			res, err := kcmp(prev, key)
			if err != nil {
				verr = err
				return false
			}
			if res >= 0 {
				verr = ErrRBTreeOrderViolation
				return false
			}
		}
		prev, hasPrev = key, true
		return true
	})
	return verr
}
