package collections

// Enumerable is the interface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions so that callers can substitute
// alternative implementations without depending on the concrete
// *Collection type. Any Enumerable is also a [Target], so every package-level
// operation accepts it.
type Enumerable[T any] interface {
	Target[int, T]

	// All returns a copy of every item.
	All() Sequence[T]

	// Count returns the number of items.
	Count() int

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// Filter returns a new collection containing only items for which
	// test returns true.
	Filter(test func(T) bool) *Collection[T]

	// Reject returns a new collection with items for which test returns
	// true removed.
	Reject(test func(T) bool) *Collection[T]
}

var _ Enumerable[int] = (*Collection[int])(nil)
