package container

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// TreeMultiSet is an ordered bag: one node per distinct key, duplicates
// tracked as an occurrence count in the node payload. The tree-wide total
// is maintained incrementally here in the facade — rotations and
// recolorings in the core never touch it, so it cannot drift after
// structural mutation.
type TreeMultiSet[K any] struct {
	core  tree.RBTree[K, int64]
	total int64
}

func NewTreeMultiSet[K infra.OrderedKey]() *TreeMultiSet[K] {
	return &TreeMultiSet[K]{
		core: tree.NewRBTree[K, int64](),
	}
}

func NewTreeMultiSetFromComparator[K any](kcmp infra.KeyComparator[K]) (*TreeMultiSet[K], error) {
	core, err := tree.NewRBTreeFromComparator[K, int64](kcmp)
	if err != nil {
		return nil, err
	}
	return &TreeMultiSet[K]{core: core}, nil
}

// NewTreeMultiSetOf seeds a default-ordered multiset with initial keys,
// duplicates included.
func NewTreeMultiSetOf[K infra.OrderedKey](keys ...K) (*TreeMultiSet[K], error) {
	ms := NewTreeMultiSet[K]()
	for _, key := range keys {
		if _, err := ms.Add(key); err != nil {
			return nil, err
		}
	}
	return ms, nil
}

// Len is the number of distinct keys; Total counts duplicates too.
func (ms *TreeMultiSet[K]) Len() int64 {
	return ms.core.Len()
}

func (ms *TreeMultiSet[K]) Total() int64 {
	return ms.total
}

// Add stores one more occurrence of key and reports the new occurrence
// count.
func (ms *TreeMultiSet[K]) Add(key K) (int64, error) {
	node, err := ms.core.Find(key)
	if err != nil {
		return 0, err
	}
	count := int64(1)
	if node != nil {
		count = node.Val() + 1
	}
	if _, err = ms.core.Insert(key, count); err != nil {
		return 0, err
	}
	ms.total++
	return count, nil
}

func (ms *TreeMultiSet[K]) Count(key K) (int64, error) {
	node, err := ms.core.Find(key)
	if node == nil || err != nil {
		return 0, err
	}
	return node.Val(), nil
}

func (ms *TreeMultiSet[K]) Contains(key K) (bool, error) {
	node, err := ms.core.Find(key)
	return node != nil, err
}

// DeleteOne removes a single occurrence of key; the node disappears only
// when the last occurrence goes.
func (ms *TreeMultiSet[K]) DeleteOne(key K) (bool, error) {
	node, err := ms.core.Find(key)
	if node == nil || err != nil {
		return false, err
	}
	if count := node.Val(); count > 1 {
		if _, err = ms.core.Insert(key, count-1); err != nil {
			return false, err
		}
	} else if _, err = ms.core.Remove(key); err != nil {
		return false, err
	}
	ms.total--
	return true, nil
}

// DeleteAll removes every occurrence of key, reporting how many there
// were.
func (ms *TreeMultiSet[K]) DeleteAll(key K) (int64, error) {
	node, err := ms.core.Remove(key)
	if node == nil || err != nil {
		return 0, err
	}
	ms.total -= node.Val()
	return node.Val(), nil
}

func (ms *TreeMultiSet[K]) Min() (key K, ok bool) {
	node := ms.core.Min()
	if node == nil {
		return key, false
	}
	return node.Key(), true
}

func (ms *TreeMultiSet[K]) Max() (key K, ok bool) {
	node := ms.core.Max()
	if node == nil {
		return key, false
	}
	return node.Key(), true
}

func (ms *TreeMultiSet[K]) Ceiling(key K) (K, bool, error) {
	return keyOf[K, int64](ms.core.Ceiling(key))
}

func (ms *TreeMultiSet[K]) Floor(key K) (K, bool, error) {
	return keyOf[K, int64](ms.core.Floor(key))
}

func (ms *TreeMultiSet[K]) Higher(key K) (K, bool, error) {
	return keyOf[K, int64](ms.core.Higher(key))
}

func (ms *TreeMultiSet[K]) Lower(key K) (K, bool, error) {
	return keyOf[K, int64](ms.core.Lower(key))
}

func (ms *TreeMultiSet[K]) RangeSearch(lo, hi K, opts ...tree.RangeOpt) ([]K, error) {
	return ms.core.RangeKeys(lo, hi, opts...)
}

// Keys lists the distinct keys ascending.
func (ms *TreeMultiSet[K]) Keys() []K {
	keys := make([]K, 0, ms.core.Len())
	ms.core.Foreach(func(_ int64, _ tree.RBColor, key K, _ int64) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (ms *TreeMultiSet[K]) Foreach(action func(idx int64, key K, count int64) bool) {
	ms.core.Foreach(func(idx int64, _ tree.RBColor, key K, count int64) bool {
		return action(idx, key, count)
	})
}

func (ms *TreeMultiSet[K]) Clear() {
	ms.core.Release()
	ms.total = 0
}
