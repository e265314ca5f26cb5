package container

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// TreeSet is an ordered set of distinct keys over the red-black tree core
// with an empty payload.
type TreeSet[K any] struct {
	core tree.RBTree[K, struct{}]
}

func NewTreeSet[K infra.OrderedKey]() *TreeSet[K] {
	return &TreeSet[K]{
		core: tree.NewRBTree[K, struct{}](),
	}
}

func NewTreeSetFromComparator[K any](kcmp infra.KeyComparator[K]) (*TreeSet[K], error) {
	core, err := tree.NewRBTreeFromComparator[K, struct{}](kcmp)
	if err != nil {
		return nil, err
	}
	return &TreeSet[K]{core: core}, nil
}

// NewTreeSetOf seeds a default-ordered set with initial keys.
func NewTreeSetOf[K infra.OrderedKey](keys ...K) (*TreeSet[K], error) {
	s := NewTreeSet[K]()
	for _, key := range keys {
		if _, err := s.Add(key); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *TreeSet[K]) Len() int64 {
	return s.core.Len()
}

// Add reports whether the key was newly stored; re-adding an existing key
// is a no-op with added == false.
func (s *TreeSet[K]) Add(key K) (added bool, err error) {
	updated, err := s.core.Insert(key, struct{}{})
	return !updated, err
}

func (s *TreeSet[K]) Contains(key K) (bool, error) {
	node, err := s.core.Find(key)
	return node != nil, err
}

func (s *TreeSet[K]) Delete(key K) (bool, error) {
	node, err := s.core.Remove(key)
	return node != nil, err
}

func (s *TreeSet[K]) Min() (key K, ok bool) {
	node := s.core.Min()
	if node == nil {
		return key, false
	}
	return node.Key(), true
}

func (s *TreeSet[K]) Max() (key K, ok bool) {
	node := s.core.Max()
	if node == nil {
		return key, false
	}
	return node.Key(), true
}

func (s *TreeSet[K]) Ceiling(key K) (K, bool, error) {
	return keyOf[K, struct{}](s.core.Ceiling(key))
}

func (s *TreeSet[K]) Floor(key K) (K, bool, error) {
	return keyOf[K, struct{}](s.core.Floor(key))
}

func (s *TreeSet[K]) Higher(key K) (K, bool, error) {
	return keyOf[K, struct{}](s.core.Higher(key))
}

func (s *TreeSet[K]) Lower(key K) (K, bool, error) {
	return keyOf[K, struct{}](s.core.Lower(key))
}

func (s *TreeSet[K]) RangeSearch(lo, hi K, opts ...tree.RangeOpt) ([]K, error) {
	return s.core.RangeKeys(lo, hi, opts...)
}

func (s *TreeSet[K]) Keys() []K {
	keys := make([]K, 0, s.core.Len())
	s.core.Foreach(func(_ int64, _ tree.RBColor, key K, _ struct{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (s *TreeSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.core.Foreach(func(idx int64, _ tree.RBColor, key K, _ struct{}) bool {
		return action(idx, key)
	})
}

func (s *TreeSet[K]) Clear() {
	s.core.Release()
}
