package tree

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// RBNode is the read-only view of one stored entry. A node handle returned
// by a lookup stays valid until the entry it refers to is removed; handles
// returned by Remove are detached descriptors of what was removed.
type RBNode[K any, V any] interface {
	Key() K
	Val() V
	HasKeyVal() bool
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

// RBTree is an ordered associative container over a red-black tree.
//
// Not-found outcomes are nil results, never errors; the only errors any
// operation returns are ordering errors raised by the key comparator, and
// they are always raised before the tree is structurally changed.
//
// The tree is exclusively owned: no operation is safe to call concurrently
// with a mutation, and mutating while an iteration is being consumed leaves
// the iteration's output unspecified. Callers needing shared access must
// serialize externally.
type RBTree[K any, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	// Insert stores the key/value entry. An equal key has its value
	// replaced in place (updated == true); the tree shape is untouched.
	Insert(key K, val V) (updated bool, err error)
	// Remove unlinks the entry for key and returns a detached descriptor
	// of it, or nil if the key is absent.
	Remove(key K) (RBNode[K, V], error)
	RemoveMin() (RBNode[K, V], error)
	RemoveMax() (RBNode[K, V], error)
	Find(key K) (RBNode[K, V], error)
	// Min and Max are O(1) through cached extreme references.
	Min() RBNode[K, V]
	Max() RBNode[K, V]
	// Ceiling is the smallest entry with key >= the given key, Floor the
	// largest with key <= it; Higher and Lower are the strict variants.
	Ceiling(key K) (RBNode[K, V], error)
	Floor(key K) (RBNode[K, V], error)
	Higher(key K) (RBNode[K, V], error)
	Lower(key K) (RBNode[K, V], error)
	// Range walks the entries inside [lo, hi] in ascending order, pruning
	// subtrees outside the bounds, O(log n + k). Bounds are inclusive
	// unless toggled through WithRangeExcludeLo / WithRangeExcludeHi.
	// Returning false from action stops the walk.
	Range(lo, hi K, action func(idx int64, key K, val V) bool, opts ...RangeOpt) error
	RangeKeys(lo, hi K, opts ...RangeOpt) ([]K, error)
	// Foreach is a restartable ascending walk over the whole tree.
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	// Iterator is a lazy restartable in-order cursor.
	Iterator() *Iterator[K, V]
	// Release unlinks every node, resetting the tree to empty.
	Release()
}

type RBTreeOpt[K any, V any] func(*rbTree[K, V])

// WithRBTreeRemoveBorrowPred makes two-child removal substitute the
// in-order predecessor instead of the default successor.
func WithRBTreeRemoveBorrowPred[K any, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.borrowPred = true
	}
}

type rangeOptions struct {
	excludeLo bool
	excludeHi bool
}

type RangeOpt func(*rangeOptions)

func WithRangeExcludeLo() RangeOpt {
	return func(ro *rangeOptions) {
		ro.excludeLo = true
	}
}

func WithRangeExcludeHi() RangeOpt {
	return func(ro *rangeOptions) {
		ro.excludeHi = true
	}
}
