package collections

import "reflect"

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[S ~[]T, T comparable](s S, target T) int {
	result := -1
	Each(Sequence[T](s), func(item T, i int) {
		if result == -1 && item == target {
			result = i
		}
	})
	return result
}

// Filter returns the values of target for which test returns true, in
// traversal order.
func Filter[K, V any](target Target[K, V], test func(V) bool) Sequence[V] {
	out := make(Sequence[V], 0)
	Each(target, func(v V, _ K) {
		if test(v) {
			out = append(out, v)
		}
	})
	return out
}

// Reject returns the values of target for which test returns false.
// It is the complement of [Filter].
func Reject[K, V any](target Target[K, V], test func(V) bool) Sequence[V] {
	return Filter(target, func(v V) bool { return !test(v) })
}

// Every reports whether test holds for every value of target.
// A nil test checks each value with [Truthy]. An empty target yields true.
func Every[K, V any](target Target[K, V], test func(V) bool) bool {
	if test == nil {
		test = Truthy[V]
	}
	return Fold(target, true, func(all bool, v V) bool {
		return all && test(v)
	})
}

// Some reports whether test holds for at least one value of target.
// A nil test checks each value with [Truthy]. An empty target yields false.
func Some[K, V any](target Target[K, V], test func(V) bool) bool {
	if test == nil {
		test = Truthy[V]
	}
	return !Every(target, func(v V) bool { return !test(v) })
}

// Contains reports whether target holds a value equal to value.
func Contains[K any, V comparable](target Target[K, V], value V) bool {
	return Fold(target, false, func(found bool, v V) bool {
		return found || v == value
	})
}

// Truthy reports whether v is anything other than its type's zero value.
// nil, false, 0, "" and nil slices, maps and pointers are falsy; an empty but
// non-nil slice or map is truthy.
func Truthy[V any](v V) bool {
	rv := reflect.ValueOf(any(v))
	return rv.IsValid() && !rv.IsZero()
}
