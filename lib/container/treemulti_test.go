package container

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeMultiSetCounts(t *testing.T) {
	ms, err := NewTreeMultiSetOf(5, 3, 5, 9, 5, 3)
	require.NoError(t, err)

	// Three distinct keys, six occurrences in total.
	require.Equal(t, int64(3), ms.Len())
	require.Equal(t, int64(6), ms.Total())

	count, err := ms.Count(5)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	count, err = ms.Count(4)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	count, err = ms.Add(9)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
	require.Equal(t, int64(3), ms.Len())
	require.Equal(t, int64(7), ms.Total())

	require.Equal(t, []int{3, 5, 9}, ms.Keys())
}

func TestTreeMultiSetDelete(t *testing.T) {
	ms, err := NewTreeMultiSetOf(5, 3, 5, 9)
	require.NoError(t, err)

	// One occurrence at a time; the key survives until the last one.
	ok, err := ms.DeleteOne(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(3), ms.Len())
	require.Equal(t, int64(3), ms.Total())

	ok, err = ms.DeleteOne(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), ms.Len())

	ok, err = ms.DeleteOne(5)
	require.NoError(t, err)
	require.False(t, ok)

	removed, err := ms.DeleteAll(3)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.Equal(t, int64(1), ms.Len())
	require.Equal(t, int64(1), ms.Total())

	removed, err = ms.DeleteAll(42)
	require.NoError(t, err)
	require.Equal(t, int64(0), removed)
}

func TestTreeMultiSetNavigableAndForeach(t *testing.T) {
	ms, err := NewTreeMultiSetOf(10, 5, 10, 15, 10)
	require.NoError(t, err)

	key, ok, err := ms.Ceiling(9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 10, key)
	key, ok, err = ms.Higher(10)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 15, key)

	minKey, ok := ms.Min()
	require.True(t, ok)
	require.Equal(t, 5, minKey)
	maxKey, ok := ms.Max()
	require.True(t, ok)
	require.Equal(t, 15, maxKey)

	keys, err := ms.RangeSearch(6, 20)
	require.NoError(t, err)
	require.Equal(t, []int{10, 15}, keys)

	type entry struct {
		key   int
		count int64
	}
	var got []entry
	ms.Foreach(func(_ int64, key int, count int64) bool {
		got = append(got, entry{key, count})
		return true
	})
	require.Equal(t, []entry{{5, 1}, {10, 3}, {15, 1}}, got)

	ms.Clear()
	require.Equal(t, int64(0), ms.Len())
	require.Equal(t, int64(0), ms.Total())
}

func TestTreeMultiMapBuckets(t *testing.T) {
	mm := NewTreeMultiMap[string, int]()

	require.NoError(t, mm.Put("b", 1))
	require.NoError(t, mm.Put("a", 2))
	require.NoError(t, mm.Put("b", 3))
	require.NoError(t, mm.Put("b", 1))

	require.Equal(t, int64(2), mm.Len())
	require.Equal(t, int64(4), mm.Total())

	bucket, err := mm.Get("b")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 1}, bucket)

	// The returned bucket is a copy; mutating it leaves the map intact.
	bucket[0] = 99
	bucket, err = mm.Get("b")
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 1}, bucket)

	count, err := mm.Count("b")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	require.Equal(t, []string{"a", "b"}, mm.Keys())
	require.Equal(t, []int{2, 1, 3, 1}, mm.Values())
}

func TestTreeMultiMapDelete(t *testing.T) {
	mm := NewTreeMultiMap[string, int]()
	require.NoError(t, mm.Put("b", 1))
	require.NoError(t, mm.Put("b", 3))
	require.NoError(t, mm.Put("a", 2))

	// Removes the first occurrence only.
	ok, err := mm.Delete("b", 1)
	require.NoError(t, err)
	require.True(t, ok)
	bucket, err := mm.Get("b")
	require.NoError(t, err)
	require.Equal(t, []int{3}, bucket)
	require.Equal(t, int64(2), mm.Total())

	ok, err = mm.Delete("b", 42)
	require.NoError(t, err)
	require.False(t, ok)

	// Deleting the last value drops the key.
	ok, err = mm.Delete("b", 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), mm.Len())
	bucket, err = mm.Get("b")
	require.NoError(t, err)
	require.Nil(t, bucket)

	removed, err := mm.DeleteKey("a")
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.Equal(t, int64(0), mm.Len())
	require.Equal(t, int64(0), mm.Total())
}
