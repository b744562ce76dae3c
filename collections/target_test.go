package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestEachSequenceVisitsInIndexOrder(t *testing.T) {
	var values []string
	var keys []int
	collections.Each(collections.Of("a", "b", "c"), func(v string, i int) {
		values = append(values, v)
		keys = append(keys, i)
	})
	assert.Equal(t, []string{"a", "b", "c"}, values)
	assert.Equal(t, []int{0, 1, 2}, keys)
}

func TestEachMappingVisitsEveryEntryOnce(t *testing.T) {
	m := collections.Mapping[string, int]{"a": 1, "b": 2, "c": 3}
	seen := map[string]int{}
	collections.Each(m, func(v int, k string) {
		seen[k] += v
	})
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, seen)
}

func TestEachEmptyAndNil(t *testing.T) {
	calls := 0
	collections.Each(collections.Of[int](), func(int, int) { calls++ })
	collections.Each(collections.Mapping[string, int](nil), func(int, string) { calls++ })
	assert.Zero(t, calls)
}

func TestEachWithPassesTarget(t *testing.T) {
	s := collections.Of(1, 2)
	collections.EachWith(s, func(_ int, _ int, target collections.Target[int, int]) {
		assert.Equal(t, s, target)
	})
}

func TestKeysValuesEntriesAreSortedByKey(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	assert.Equal(t, collections.Of("a", "b", "c"), collections.Keys(m))
	assert.Equal(t, collections.Of(1, 2, 3), collections.Values(m))

	entries := collections.Entries(m)
	require.Len(t, entries, 3)
	assert.Equal(t, collections.Entry[string, int]{Key: "a", Value: 1}, entries[0])
	assert.Equal(t, "c: 3", entries[2].String())
}

func TestWalkSliceArrayAndMap(t *testing.T) {
	var got []any
	require.NoError(t, collections.Walk([]int{4, 5}, func(v, k any) {
		got = append(got, k, v)
	}))
	assert.Equal(t, []any{0, 4, 1, 5}, got)

	got = nil
	require.NoError(t, collections.Walk([2]string{"x", "y"}, func(v, _ any) {
		got = append(got, v)
	}))
	assert.Equal(t, []any{"x", "y"}, got)

	sum := 0
	require.NoError(t, collections.Walk(map[string]int{"a": 1, "b": 2}, func(v, _ any) {
		sum += v.(int)
	}))
	assert.Equal(t, 3, sum)
}

func TestWalkNilIsEmpty(t *testing.T) {
	calls := 0
	require.NoError(t, collections.Walk(nil, func(_, _ any) { calls++ }))
	assert.Zero(t, calls)
}

func TestWalkRejectsNonCollections(t *testing.T) {
	for _, v := range []any{42, "text", struct{}{}, 3.5} {
		calls := 0
		err := collections.Walk(v, func(_, _ any) { calls++ })
		assert.ErrorIs(t, err, collections.ErrInvalidTarget, "value %v", v)
		assert.Zero(t, calls)
	}
}
