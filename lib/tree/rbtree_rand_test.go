package tree

import (
	randv2 "math/rand"
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

// Random insert/remove sequences, invariants asserted after every step,
// with the gods red-black tree as an independent oracle for content.
func TestRbtreeRandomOps_InvariantsAfterEveryStep(t *testing.T) {
	const (
		steps    = 1500
		keySpace = 256
	)
	tree := NewRBTree[int, int]()
	oracle := redblacktree.NewWithIntComparator()

	for step := 0; step < steps; step++ {
		key := randv2.Intn(keySpace)
		if randv2.Intn(3) > 0 {
			_, err := tree.Insert(key, step)
			require.NoError(t, err)
			oracle.Put(key, step)
		} else {
			removed, err := tree.Remove(key)
			require.NoError(t, err)
			if _, found := oracle.Get(key); found {
				require.NotNil(t, removed)
				require.Equal(t, key, removed.Key())
			} else {
				require.Nil(t, removed)
			}
			oracle.Remove(key)
		}

		require.Equal(t, int64(oracle.Size()), tree.Len())
		require.NoError(t, RedViolationValidate[int, int](tree))
		require.NoError(t, BlackViolationValidate[int, int](tree))
		require.NoError(t, AscendingOrderValidate[int, int](tree, infra.OrderedKeyCompare[int]))
	}

	var keys []int
	tree.Foreach(func(_ int64, _ RBColor, key int, _ int) bool {
		keys = append(keys, key)
		return true
	})
	oracleKeys := make([]int, 0, oracle.Size())
	for _, k := range oracle.Keys() {
		oracleKeys = append(oracleKeys, k.(int))
	}
	require.Equal(t, oracleKeys, keys)
}

// Size always equals the count produced by a full traversal.
func TestRbtreeSizeMatchesTraversal(t *testing.T) {
	tree := NewRBTree[int, int]()
	for i := 0; i < 512; i++ {
		_, err := tree.Insert(randv2.Intn(128), 0)
		require.NoError(t, err)
	}
	for i := 0; i < 128; i++ {
		_, err := tree.Remove(randv2.Intn(128))
		require.NoError(t, err)
	}

	n := int64(0)
	tree.Foreach(func(_ int64, _ RBColor, _ int, _ int) bool {
		n++
		return true
	})
	require.Equal(t, tree.Len(), n)
}

// Inserting a fresh key then removing it restores the pre-insert key
// sequence.
func TestRbtreeInsertRemoveRoundTrip(t *testing.T) {
	tree := NewRBTree[int, int]()
	for _, key := range []int{20, 10, 30, 5, 15, 25, 35} {
		_, err := tree.Insert(key, key)
		require.NoError(t, err)
	}
	snapshot, err := tree.RangeKeys(0, 100)
	require.NoError(t, err)

	for _, key := range []int{0, 12, 22, 40} {
		_, err = tree.Insert(key, key)
		require.NoError(t, err)
		removed, rerr := tree.Remove(key)
		require.NoError(t, rerr)
		require.Equal(t, key, removed.Key())

		after, kerr := tree.RangeKeys(0, 100)
		require.NoError(t, kerr)
		require.Equal(t, snapshot, after)
		require.NoError(t, RedViolationValidate[int, int](tree))
		require.NoError(t, BlackViolationValidate[int, int](tree))
	}
}

// The navigable family against a linear scan over a sorted copy of the
// same keys, plus gods Floor/Ceiling where it offers them.
func TestRbtreeNavigable_MatchesLinearScan(t *testing.T) {
	const (
		keyCount = 300
		queries  = 400
		keySpace = 1024
	)
	tree := NewRBTree[int, int]()
	oracle := redblacktree.NewWithIntComparator()
	present := make(map[int]struct{}, keyCount)
	for i := 0; i < keyCount; i++ {
		key := randv2.Intn(keySpace)
		_, err := tree.Insert(key, key)
		require.NoError(t, err)
		oracle.Put(key, key)
		present[key] = struct{}{}
	}
	sorted := make([]int, 0, len(present))
	for key := range present {
		sorted = append(sorted, key)
	}
	slices.Sort(sorted)

	scan := func(pred func(int) bool, fromLow bool) (int, bool) {
		if fromLow {
			for _, k := range sorted {
				if pred(k) {
					return k, true
				}
			}
		} else {
			for i := len(sorted) - 1; i >= 0; i-- {
				if pred(sorted[i]) {
					return sorted[i], true
				}
			}
		}
		return 0, false
	}

	for i := 0; i < queries; i++ {
		q := randv2.Intn(keySpace+64) - 32

		wantKey, wantOK := scan(func(k int) bool { return k >= q }, true)
		node, err := tree.Ceiling(q)
		requireKeyResult(t, node, err, wantKey, wantOK)
		if gnode, found := oracle.Ceiling(q); found {
			require.Equal(t, gnode.Key.(int), node.Key())
		} else {
			require.Nil(t, node)
		}

		wantKey, wantOK = scan(func(k int) bool { return k <= q }, false)
		node, err = tree.Floor(q)
		requireKeyResult(t, node, err, wantKey, wantOK)
		if gnode, found := oracle.Floor(q); found {
			require.Equal(t, gnode.Key.(int), node.Key())
		} else {
			require.Nil(t, node)
		}

		wantKey, wantOK = scan(func(k int) bool { return k > q }, true)
		node, err = tree.Higher(q)
		requireKeyResult(t, node, err, wantKey, wantOK)

		wantKey, wantOK = scan(func(k int) bool { return k < q }, false)
		node, err = tree.Lower(q)
		requireKeyResult(t, node, err, wantKey, wantOK)
	}
}

// Range output equals the sorted filter of the stored keys, for random
// bounds and all four inclusive/exclusive combinations.
func TestRbtreeRange_MatchesSortedFilter(t *testing.T) {
	const (
		keyCount = 200
		queries  = 200
		keySpace = 512
	)
	tree := NewRBTree[int, int]()
	present := make(map[int]struct{}, keyCount)
	for i := 0; i < keyCount; i++ {
		key := randv2.Intn(keySpace)
		_, err := tree.Insert(key, key)
		require.NoError(t, err)
		present[key] = struct{}{}
	}
	sorted := make([]int, 0, len(present))
	for key := range present {
		sorted = append(sorted, key)
	}
	slices.Sort(sorted)

	for i := 0; i < queries; i++ {
		lo := randv2.Intn(keySpace)
		hi := lo + randv2.Intn(keySpace/4)
		for _, bounds := range [][]RangeOpt{
			nil,
			{WithRangeExcludeLo()},
			{WithRangeExcludeHi()},
			{WithRangeExcludeLo(), WithRangeExcludeHi()},
		} {
			var ro rangeOptions
			for _, o := range bounds {
				o(&ro)
			}
			want := make([]int, 0, 8)
			for _, k := range sorted {
				okLo := k > lo || (k == lo && !ro.excludeLo)
				okHi := k < hi || (k == hi && !ro.excludeHi)
				if okLo && okHi {
					want = append(want, k)
				}
			}

			got, err := tree.RangeKeys(lo, hi, bounds...)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
}
