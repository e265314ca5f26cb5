package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRbtreeForeach_Restartable(t *testing.T) {
	tree := NewRBTree[int, int]()
	for _, key := range []int{10, 5, 15, 3, 7, 12, 18} {
		_, err := tree.Insert(key, key)
		require.NoError(t, err)
	}

	collect := func() []int {
		var keys []int
		tree.Foreach(func(idx int64, _ RBColor, key int, _ int) bool {
			require.Equal(t, int64(len(keys)), idx)
			keys = append(keys, key)
			return true
		})
		return keys
	}
	first := collect()
	require.Equal(t, []int{3, 5, 7, 10, 12, 15, 18}, first)
	// Each call starts a fresh traversal.
	require.Equal(t, first, collect())
}

func TestRbtreeForeach_EarlyStop(t *testing.T) {
	tree := NewRBTree[int, int]()
	for _, key := range []int{10, 5, 15} {
		_, err := tree.Insert(key, key)
		require.NoError(t, err)
	}

	var keys []int
	tree.Foreach(func(_ int64, _ RBColor, key int, _ int) bool {
		keys = append(keys, key)
		return false
	})
	require.Equal(t, []int{5}, keys)
}

func TestRbtreeIterator(t *testing.T) {
	tree := NewRBTree[int, int]()

	it := tree.Iterator()
	require.False(t, it.Next())

	for _, key := range []int{10, 5, 15, 3, 7} {
		_, err := tree.Insert(key, key*10)
		require.NoError(t, err)
	}

	it = tree.Iterator()
	var keys []int
	for it.Next() {
		keys = append(keys, it.Key())
		require.Equal(t, it.Key()*10, it.Val())
	}
	require.Equal(t, []int{3, 5, 7, 10, 15}, keys)
	require.False(t, it.Next())

	// Reset rewinds to a fresh traversal from the root.
	it.Reset()
	keys = keys[:0]
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{3, 5, 7, 10, 15}, keys)

	// A partially consumed cursor restarts cleanly too.
	it.Reset()
	require.True(t, it.Next())
	require.True(t, it.Next())
	require.Equal(t, 5, it.Key())
	it.Reset()
	require.True(t, it.Next())
	require.Equal(t, 3, it.Key())
}
