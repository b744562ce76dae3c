package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Target is the iteration target accepted by every operation in this package.
//
// Each must call fn(value, key) exactly once per element. For sequences the
// key is the zero-based index and elements are visited first to last; for
// mappings the key is the map key and the order is unspecified.
type Target[K, V any] interface {
	Each(fn func(V, K))
}

// Sequence is an ordered, index-addressable list of elements.
type Sequence[T any] []T

// Of creates a Sequence from a variadic list of items.
func Of[T any](items ...T) Sequence[T] {
	return Sequence[T](items)
}

// Each calls fn(item, index) for every item from first to last.
func (s Sequence[T]) Each(fn func(T, int)) {
	for i := 0; i < len(s); i++ {
		fn(s[i], i)
	}
}

// Len returns the number of items in the sequence.
func (s Sequence[T]) Len() int { return len(s) }

// Mapping is an unordered collection of unique keys to values.
type Mapping[K comparable, V any] map[K]V

// Each calls fn(value, key) for every entry, in map iteration order.
func (m Mapping[K, V]) Each(fn func(V, K)) {
	for k, v := range m {
		fn(v, k)
	}
}

// Len returns the number of entries in the mapping.
func (m Mapping[K, V]) Len() int { return len(m) }

// Each invokes iterator(value, key) once per element of target.
// It is the single primitive every other operation is built on.
func Each[K, V any](target Target[K, V], iterator func(V, K)) {
	if target == nil {
		return
	}
	target.Each(iterator)
}

// EachWith is [Each] with the three-argument iterator form, which also
// receives the target being walked.
func EachWith[K, V any](target Target[K, V], iterator func(V, K, Target[K, V])) {
	Each(target, func(v V, k K) {
		iterator(v, k, target)
	})
}

// Keys returns the keys of m in ascending order.
func Keys[M ~map[K]V, K cmp.Ordered, V any](m M) Sequence[K] {
	keys := make(Sequence[K], 0, len(m))
	Each(Mapping[K, V](m), func(_ V, k K) {
		keys = append(keys, k)
	})
	slices.Sort(keys)
	return keys
}

// Values returns the values of m ordered by their keys.
func Values[M ~map[K]V, K cmp.Ordered, V any](m M) Sequence[V] {
	return Map(Keys(m), func(k K) V { return m[k] })
}

// Entries returns the entries of m ordered by their keys.
func Entries[M ~map[K]V, K cmp.Ordered, V any](m M) Sequence[Entry[K, V]] {
	return Map(Keys(m), func(k K) Entry[K, V] {
		return Entry[K, V]{Key: k, Value: m[k]}
	})
}

// Walk is the untyped counterpart of [Each]. It accepts any slice, array or
// map and calls fn(value, key) for each element; slice and array keys are
// ints. A nil value is treated as an empty collection.
//
// Any other kind of value is a caller error: Walk returns [ErrInvalidTarget]
// without calling fn.
func Walk(v any, fn func(value, key any)) error {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			fn(rv.Index(i).Interface(), i)
		}
		return nil
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			fn(iter.Value().Interface(), iter.Key().Interface())
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidTarget, v)
	}
}

// isSequence reports whether v is a slice or array.
func isSequence(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	k := rv.Kind()
	return rv, k == reflect.Slice || k == reflect.Array
}
