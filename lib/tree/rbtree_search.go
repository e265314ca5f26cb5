package tree

// The navigable query family. Every query is a single descent from the
// root tracking the best candidate seen so far; none of them mutate the
// tree, and an unsatisfiable bound (or an empty tree) is a nil result,
// never an error.

func (tree *rbTree[K, V]) findNode(key K) (*rbNode[K, V], error) {
	for aux := tree.root; !aux.isNilLeaf(); {
		res, err := tree.kcmp(key, aux.key)
		if err != nil {
			return nil, err
		}
		if /* equal */ res == 0 {
			return aux, nil
		} else /* less */ if res < 0 {
			aux = aux.left
		} else /* greater */ {
			aux = aux.right
		}
	}
	return nil, nil
}

func (tree *rbTree[K, V]) Find(key K) (RBNode[K, V], error) {
	node, err := tree.findNode(key)
	if node == nil || err != nil {
		return nil, err
	}
	return node, nil
}

// ceilingNode: the smallest stored key >= key. A node >= key is a
// candidate and something smaller-but-still-qualified may live to its
// left; a node < key pushes the descent right.
func (tree *rbTree[K, V]) ceilingNode(key K) (*rbNode[K, V], error) {
	var best *rbNode[K, V]
	for aux := tree.root; !aux.isNilLeaf(); {
		res, err := tree.kcmp(key, aux.key)
		if err != nil {
			return nil, err
		}
		if res == 0 {
			return aux, nil
		} else if res < 0 {
			best = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return best, nil
}

// floorNode: the largest stored key <= key. Mirror of ceilingNode.
func (tree *rbTree[K, V]) floorNode(key K) (*rbNode[K, V], error) {
	var best *rbNode[K, V]
	for aux := tree.root; !aux.isNilLeaf(); {
		res, err := tree.kcmp(key, aux.key)
		if err != nil {
			return nil, err
		}
		if res == 0 {
			return aux, nil
		} else if res > 0 {
			best = aux
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return best, nil
}

// higherNode: the smallest stored key > key, the strict ceiling.
func (tree *rbTree[K, V]) higherNode(key K) (*rbNode[K, V], error) {
	var best *rbNode[K, V]
	for aux := tree.root; !aux.isNilLeaf(); {
		res, err := tree.kcmp(key, aux.key)
		if err != nil {
			return nil, err
		}
		if res < 0 {
			best = aux
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return best, nil
}

// lowerNode: the largest stored key < key, the strict floor.
func (tree *rbTree[K, V]) lowerNode(key K) (*rbNode[K, V], error) {
	var best *rbNode[K, V]
	for aux := tree.root; !aux.isNilLeaf(); {
		res, err := tree.kcmp(key, aux.key)
		if err != nil {
			return nil, err
		}
		if res > 0 {
			best = aux
			aux = aux.right
		} else {
			aux = aux.left
		}
	}
	return best, nil
}

func (tree *rbTree[K, V]) Ceiling(key K) (RBNode[K, V], error) {
	node, err := tree.ceilingNode(key)
	if node == nil || err != nil {
		return nil, err
	}
	return node, nil
}

func (tree *rbTree[K, V]) Floor(key K) (RBNode[K, V], error) {
	node, err := tree.floorNode(key)
	if node == nil || err != nil {
		return nil, err
	}
	return node, nil
}

func (tree *rbTree[K, V]) Higher(key K) (RBNode[K, V], error) {
	node, err := tree.higherNode(key)
	if node == nil || err != nil {
		return nil, err
	}
	return node, nil
}

func (tree *rbTree[K, V]) Lower(key K) (RBNode[K, V], error) {
	node, err := tree.lowerNode(key)
	if node == nil || err != nil {
		return nil, err
	}
	return node, nil
}

// Range is a bounded in-order walk. Subtrees entirely outside [lo, hi]
// are pruned instead of filtered, so the cost is O(log n + k) for k
// visited entries.
func (tree *rbTree[K, V]) Range(lo, hi K, action func(idx int64, key K, val V) bool, opts ...RangeOpt) error {
	var ro rangeOptions
	for _, o := range opts {
		o(&ro)
	}

	if tree.root.isNilLeaf() {
		return nil
	}
	res, err := tree.kcmp(lo, hi)
	if err != nil {
		return err
	}
	if /* empty interval */ res > 0 {
		return nil
	}

	idx := int64(0)
	_, err = tree.rangeVisit(tree.root, lo, hi, &ro, &idx, action)
	return err
}

// rangeVisit reports whether the walk was stopped by the action.
func (tree *rbTree[K, V]) rangeVisit(
	node *rbNode[K, V],
	lo, hi K,
	ro *rangeOptions,
	idx *int64,
	action func(idx int64, key K, val V) bool,
) (bool, error) {
	if node.isNilLeaf() {
		return false, nil
	}

	cl, err := tree.kcmp(lo, node.key)
	if err != nil {
		return false, err
	}
	ch, err := tree.kcmp(hi, node.key)
	if err != nil {
		return false, err
	}

	// The left subtree can only hold in-range keys when lo < node.key.
	if cl < 0 {
		stop, err := tree.rangeVisit(node.left, lo, hi, ro, idx, action)
		if stop || err != nil {
			return stop, err
		}
	}

	inLo := cl < 0 || (cl == 0 && !ro.excludeLo)
	inHi := ch > 0 || (ch == 0 && !ro.excludeHi)
	if inLo && inHi {
		if !action(*idx, node.key, node.val) {
			return true, nil
		}
		*idx++
	}

	// Mirror pruning for the right subtree.
	if ch > 0 {
		return tree.rangeVisit(node.right, lo, hi, ro, idx, action)
	}
	return false, nil
}

func (tree *rbTree[K, V]) RangeKeys(lo, hi K, opts ...RangeOpt) ([]K, error) {
	keys := make([]K, 0, 8)
	err := tree.Range(lo, hi, func(_ int64, key K, _ V) bool {
		keys = append(keys, key)
		return true
	}, opts...)
	if err != nil {
		return nil, err
	}
	return keys, nil
}
