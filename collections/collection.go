package collections

import (
	"encoding/json"
	"fmt"
)

// Collection is a fluent, immutable-by-default wrapper around a slice of T.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. Collection implements [Target], so it can
// be passed to any package-level operation directly:
//
//	c := collections.New(3, 1, 2, 1)
//	c.Filter(func(n int) bool { return n > 1 }).All() // → [3 2]
//	collections.Contains(c, 2)                        // → true
//
// Methods that need comparable elements (Uniq, IndexOf, Difference, ...) stay
// package-level because Go methods cannot add constraints to T.
type Collection[T any] struct {
	items Sequence[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] {
	return From(items)
}

// From creates a Collection from a slice (the slice is copied).
func From[S ~[]T, T any](items S) *Collection[T] {
	dst := make(Sequence[T], len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: Sequence[T]{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying items.
func (c *Collection[T]) All() Sequence[T] {
	out := make(Sequence[T], len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", []T(c.items))
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item. A nil *Collection has no items,
// so package operations treat it as empty.
func (c *Collection[T]) Each(fn func(T, int)) {
	if c == nil {
		return
	}
	c.items.Each(fn)
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-preserving transformations
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the items for which test returns
// true.
func (c *Collection[T]) Filter(test func(T) bool) *Collection[T] {
	return &Collection[T]{items: Filter(c, test)}
}

// Reject returns a new collection with the items for which test returns true
// removed.
func (c *Collection[T]) Reject(test func(T) bool) *Collection[T] {
	return &Collection[T]{items: Reject(c, test)}
}

// SortBy returns a new collection grouped and ordered by the key by
// extracts. See [SortBy].
func (c *Collection[T]) SortBy(by Extractor[T]) *Collection[T] {
	return &Collection[T]{items: SortBy(c, by)}
}

// Partition splits the collection into the items satisfying test and the
// rest.
func (c *Collection[T]) Partition(test func(T) bool) (*Collection[T], *Collection[T]) {
	pass, fail := Partition(c, test)
	return &Collection[T]{items: pass}, &Collection[T]{items: fail}
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates & aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether test holds for every item. See [Every].
func (c *Collection[T]) Every(test func(T) bool) bool { return Every(c, test) }

// Some reports whether test holds for at least one item. See [Some].
func (c *Collection[T]) Some(test func(T) bool) bool { return Some(c, test) }

// Reduce folds the collection with iterator. See [Reduce].
func (c *Collection[T]) Reduce(iterator func(T, T) T, seed ...T) Option[T] {
	return Reduce(c, iterator, seed...)
}
