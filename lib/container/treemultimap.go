package container

import (
	"github.com/samber/lo"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// TreeMultiMap is an ordered map allowing several values per key: one node
// per distinct key, values bucketed in the node payload in insertion
// order.
type TreeMultiMap[K any, V comparable] struct {
	core  tree.RBTree[K, []V]
	total int64
}

func NewTreeMultiMap[K infra.OrderedKey, V comparable]() *TreeMultiMap[K, V] {
	return &TreeMultiMap[K, V]{
		core: tree.NewRBTree[K, []V](),
	}
}

func NewTreeMultiMapFromComparator[K any, V comparable](kcmp infra.KeyComparator[K]) (*TreeMultiMap[K, V], error) {
	core, err := tree.NewRBTreeFromComparator[K, []V](kcmp)
	if err != nil {
		return nil, err
	}
	return &TreeMultiMap[K, V]{core: core}, nil
}

// Len is the number of distinct keys; Total counts every stored value.
func (mm *TreeMultiMap[K, V]) Len() int64 {
	return mm.core.Len()
}

func (mm *TreeMultiMap[K, V]) Total() int64 {
	return mm.total
}

func (mm *TreeMultiMap[K, V]) Put(key K, val V) error {
	node, err := mm.core.Find(key)
	if err != nil {
		return err
	}
	var bucket []V
	if node != nil {
		bucket = node.Val()
	}
	if _, err = mm.core.Insert(key, append(bucket, val)); err != nil {
		return err
	}
	mm.total++
	return nil
}

// Get returns a copy of the value bucket for key, nil when absent.
func (mm *TreeMultiMap[K, V]) Get(key K) ([]V, error) {
	node, err := mm.core.Find(key)
	if node == nil || err != nil {
		return nil, err
	}
	return append([]V(nil), node.Val()...), nil
}

func (mm *TreeMultiMap[K, V]) Count(key K) (int64, error) {
	node, err := mm.core.Find(key)
	if node == nil || err != nil {
		return 0, err
	}
	return int64(len(node.Val())), nil
}

// Delete removes one occurrence of val under key; the node disappears
// with its last value.
func (mm *TreeMultiMap[K, V]) Delete(key K, val V) (bool, error) {
	node, err := mm.core.Find(key)
	if node == nil || err != nil {
		return false, err
	}
	bucket := node.Val()
	i := lo.IndexOf(bucket, val)
	if i < 0 {
		return false, nil
	}
	if len(bucket) == 1 {
		if _, err = mm.core.Remove(key); err != nil {
			return false, err
		}
	} else {
		bucket = append(append([]V(nil), bucket[:i]...), bucket[i+1:]...)
		if _, err = mm.core.Insert(key, bucket); err != nil {
			return false, err
		}
	}
	mm.total--
	return true, nil
}

// DeleteKey removes key with all of its values, reporting how many values
// went with it.
func (mm *TreeMultiMap[K, V]) DeleteKey(key K) (int64, error) {
	node, err := mm.core.Remove(key)
	if node == nil || err != nil {
		return 0, err
	}
	removed := int64(len(node.Val()))
	mm.total -= removed
	return removed, nil
}

// Keys lists the distinct keys ascending.
func (mm *TreeMultiMap[K, V]) Keys() []K {
	keys := make([]K, 0, mm.core.Len())
	mm.core.Foreach(func(_ int64, _ tree.RBColor, key K, _ []V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values lists every stored value, grouped by ascending key, insertion
// order within a key.
func (mm *TreeMultiMap[K, V]) Values() []V {
	buckets := make([][]V, 0, mm.core.Len())
	mm.core.Foreach(func(_ int64, _ tree.RBColor, _ K, bucket []V) bool {
		buckets = append(buckets, bucket)
		return true
	})
	return lo.Flatten(buckets)
}

func (mm *TreeMultiMap[K, V]) Foreach(action func(idx int64, key K, vals []V) bool) {
	mm.core.Foreach(func(idx int64, _ tree.RBColor, key K, bucket []V) bool {
		return action(idx, key, bucket)
	})
}

func (mm *TreeMultiMap[K, V]) Clear() {
	mm.core.Release()
	mm.total = 0
}
