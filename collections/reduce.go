package collections

// Reduce folds target into a single value by calling iterator(acc, value)
// for each element in traversal order.
//
// When a seed is given, folding starts from seed[0] and every element is
// visited. When it is omitted, the first element becomes the accumulator and
// folding starts from the second. Passing the zero value explicitly is a
// seed, not an omission:
//
//	collections.Reduce(collections.Of(1, 2, 3), add, 0) // → Just(6)
//	collections.Reduce(collections.Of(1, 2, 3), add)    // → Just(6)
//	collections.Reduce(collections.Of[int](), add)      // → Absent
//	collections.Reduce(collections.Of[int](), add, 0)   // → Just(0)
//
// Only the first seed is used.
func Reduce[K, V any](target Target[K, V], iterator func(V, V) V, seed ...V) Option[V] {
	var acc Option[V]
	if len(seed) > 0 {
		acc = Just(seed[0])
	}
	Each(target, func(v V, _ K) {
		if !acc.Present {
			acc = Just(v)
			return
		}
		acc.Value = iterator(acc.Value, v)
	})
	return acc
}

// Fold is [Reduce] for accumulators whose type differs from the element
// type. It always starts from seed.
//
//	total := collections.Fold(orders, 0.0, func(sum float64, o Order) float64 {
//	    return sum + o.Amount
//	})
func Fold[K, V, A any](target Target[K, V], seed A, iterator func(A, V) A) A {
	acc := seed
	Each(target, func(v V, _ K) {
		acc = iterator(acc, v)
	})
	return acc
}
