package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-underbar/collections"
)

func TestNewAndFromCopy(t *testing.T) {
	s := []string{"a", "b", "c"}
	c := collections.From(s)
	s[0] = "z"
	assert.Equal(t, collections.Of("a", "b", "c"), c.All())

	all := c.All()
	all[1] = "z"
	assert.Equal(t, "b", c.All()[1], "All returns a copy")

	assert.Equal(t, 3, collections.New(1, 2, 3).Count())
	assert.True(t, collections.Empty[int]().IsEmpty())
}

func TestCollectionIsATarget(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.True(t, collections.Contains(c, 2))
	assert.Equal(t, collections.Of("1", "2", "3"), collections.Map(c, func(n int) string {
		return string(rune('0' + n))
	}))
}

func TestCollectionChaining(t *testing.T) {
	c := collections.New(5, 2, 8, 3, 6)
	evens := c.Filter(isEven)
	assert.Equal(t, collections.Of(2, 8, 6), evens.All())
	assert.Equal(t, collections.Of(5, 3), c.Reject(isEven).All())
	assert.Equal(t, 5, c.Count(), "original unchanged")
}

func TestCollectionPredicatesAndReduce(t *testing.T) {
	c := collections.New(2, 4, 6)
	assert.True(t, c.Every(isEven))
	assert.False(t, c.Some(func(n int) bool { return n > 6 }))
	assert.Equal(t, 12, c.Reduce(add).Value)
	assert.Equal(t, 13, c.Reduce(add, 1).Value)
}

func TestCollectionSortByAndPartition(t *testing.T) {
	c := collections.New(person{"b", 2}, person{"a", 1})
	sorted := c.SortBy(collections.ByField[person]("Age"))
	assert.Equal(t, "a", sorted.All()[0].Name)

	young, old := c.Partition(func(p person) bool { return p.Age < 2 })
	assert.Equal(t, 1, young.Count())
	assert.Equal(t, 1, old.Count())
}

func TestCollectionTapAndString(t *testing.T) {
	var seen int
	c := collections.New(1, 2).Tap(func(c *collections.Collection[int]) { seen = c.Count() })
	assert.Equal(t, 2, seen)
	assert.Equal(t, "[1,2]", c.String())
}

func TestNilCollectionIsEmptyTarget(t *testing.T) {
	var c *collections.Collection[int]
	assert.NotPanics(t, func() {
		assert.Empty(t, collections.Filter(c, isEven))
		assert.False(t, collections.Contains(c, 1))
		assert.False(t, collections.Reduce(c, add).Present)
	})
}
