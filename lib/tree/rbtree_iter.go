package tree

// Foreach is an iterative in-order walk over the whole tree, ascending
// under the active comparator. Each call starts a fresh traversal, so it
// is restartable; returning false from the action stops the walk early.
func (tree *rbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	size := tree.count
	aux := tree.root
	if size <= 0 || aux == nil {
		return
	}

	stack := make([]*rbNode[K, V], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isNilLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; !aux.isNilLeaf(); aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Iterator is a lazy in-order cursor over the tree. It is restartable
// through Reset, which begins a fresh traversal from the root. Mutating
// the tree while a cursor is live leaves its remaining output unspecified;
// serialization is the caller's obligation.
type Iterator[K any, V any] struct {
	tree  *rbTree[K, V]
	stack []*rbNode[K, V]
	cur   *rbNode[K, V]
}

func (tree *rbTree[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{
		tree: tree,
	}
	it.Reset()
	return it
}

// Reset rewinds the cursor to before the first entry.
func (it *Iterator[K, V]) Reset() {
	it.stack = it.stack[:0]
	it.cur = nil
	for aux := it.tree.root; !aux.isNilLeaf(); aux = aux.left {
		it.stack = append(it.stack, aux)
	}
}

// Next advances to the following entry, reporting whether one exists.
func (it *Iterator[K, V]) Next() bool {
	size := len(it.stack)
	if size == 0 {
		it.cur = nil
		return false
	}
	it.cur = it.stack[size-1]
	it.stack = it.stack[:size-1]
	if it.cur.right != nil {
		for aux := it.cur.right; !aux.isNilLeaf(); aux = aux.left {
			it.stack = append(it.stack, aux)
		}
	}
	return true
}

// Key panics if called before Next or after Next returned false.
func (it *Iterator[K, V]) Key() K {
	return it.cur.key
}

func (it *Iterator[K, V]) Val() V {
	return it.cur.val
}

func (it *Iterator[K, V]) Color() RBColor {
	return it.cur.color
}
