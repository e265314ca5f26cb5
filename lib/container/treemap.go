// Package container holds the thin ordered-container facades composed
// over the shared red-black tree core in lib/tree. The facades add size
// and payload bookkeeping only; ordering, balancing and the navigable
// queries all live in the core.
package container

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// TreeMap is an ordered key/value map. Keys ascend under the active
// comparator; equal-key puts replace the value in place.
type TreeMap[K any, V any] struct {
	core tree.RBTree[K, V]
}

func NewTreeMap[K infra.OrderedKey, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{
		core: tree.NewRBTree[K, V](),
	}
}

func NewTreeMapFromComparator[K any, V any](kcmp infra.KeyComparator[K]) (*TreeMap[K, V], error) {
	core, err := tree.NewRBTreeFromComparator[K, V](kcmp)
	if err != nil {
		return nil, err
	}
	return &TreeMap[K, V]{core: core}, nil
}

// NewTreeMapOf seeds a default-ordered map with initial entries.
func NewTreeMapOf[K infra.OrderedKey, V any](entries map[K]V) (*TreeMap[K, V], error) {
	m := NewTreeMap[K, V]()
	for key, val := range entries {
		if _, err := m.Put(key, val); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *TreeMap[K, V]) Len() int64 {
	return m.core.Len()
}

func (m *TreeMap[K, V]) Put(key K, val V) (updated bool, err error) {
	return m.core.Insert(key, val)
}

func (m *TreeMap[K, V]) Get(key K) (val V, ok bool, err error) {
	node, err := m.core.Find(key)
	if node == nil || err != nil {
		return val, false, err
	}
	return node.Val(), true, nil
}

func (m *TreeMap[K, V]) ContainsKey(key K) (bool, error) {
	node, err := m.core.Find(key)
	return node != nil, err
}

// Delete removes the entry for key, reporting the removed value. Absent
// keys are a no-op with ok == false.
func (m *TreeMap[K, V]) Delete(key K) (val V, ok bool, err error) {
	node, err := m.core.Remove(key)
	if node == nil || err != nil {
		return val, false, err
	}
	return node.Val(), true, nil
}

func (m *TreeMap[K, V]) Min() (key K, val V, ok bool) {
	node := m.core.Min()
	if node == nil {
		return key, val, false
	}
	return node.Key(), node.Val(), true
}

func (m *TreeMap[K, V]) Max() (key K, val V, ok bool) {
	node := m.core.Max()
	if node == nil {
		return key, val, false
	}
	return node.Key(), node.Val(), true
}

func (m *TreeMap[K, V]) CeilingKey(key K) (K, bool, error) {
	return keyOf[K, V](m.core.Ceiling(key))
}

func (m *TreeMap[K, V]) FloorKey(key K) (K, bool, error) {
	return keyOf[K, V](m.core.Floor(key))
}

func (m *TreeMap[K, V]) HigherKey(key K) (K, bool, error) {
	return keyOf[K, V](m.core.Higher(key))
}

func (m *TreeMap[K, V]) LowerKey(key K) (K, bool, error) {
	return keyOf[K, V](m.core.Lower(key))
}

// RangeSearch lists the keys inside [lo, hi] ascending; bounds are
// inclusive unless toggled through the range options.
func (m *TreeMap[K, V]) RangeSearch(lo, hi K, opts ...tree.RangeOpt) ([]K, error) {
	return m.core.RangeKeys(lo, hi, opts...)
}

func (m *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.core.Len())
	m.core.Foreach(func(_ int64, _ tree.RBColor, key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *TreeMap[K, V]) Values() []V {
	vals := make([]V, 0, m.core.Len())
	m.core.Foreach(func(_ int64, _ tree.RBColor, _ K, val V) bool {
		vals = append(vals, val)
		return true
	})
	return vals
}

func (m *TreeMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.core.Foreach(func(idx int64, _ tree.RBColor, key K, val V) bool {
		return action(idx, key, val)
	})
}

func (m *TreeMap[K, V]) Iterator() *tree.Iterator[K, V] {
	return m.core.Iterator()
}

func (m *TreeMap[K, V]) Clear() {
	m.core.Release()
}

func keyOf[K any, V any](node tree.RBNode[K, V], err error) (key K, ok bool, _ error) {
	if node == nil || err != nil {
		return key, false, err
	}
	return node.Key(), true, nil
}
