package collections

import (
	"fmt"
	"slices"
)

// Map applies fn to every value of target and returns the results in
// traversal order.
//
//	doubled := collections.Map(collections.Of(1, 2, 3), func(n int) int { return n * 2 })
//	// → [2 4 6]
func Map[K, V, U any](target Target[K, V], fn func(V) U) Sequence[U] {
	out := make(Sequence[U], 0)
	Each(target, func(v V, _ K) {
		out = append(out, fn(v))
	})
	return out
}

// Uniq returns s with every repeated value removed, keeping first
// occurrences in first-seen order.
//
// Duplicates are found by a linear scan of the output so far, which keeps
// the operation free of hashing at the cost of O(n²) comparisons.
func Uniq[S ~[]T, T comparable](s S) Sequence[T] {
	out := make(Sequence[T], 0, len(s))
	Each(Sequence[T](s), func(v T, _ int) {
		if IndexOf(out, v) == -1 {
			out = append(out, v)
		}
	})
	return out
}

// Flatten recursively descends into nested slices and arrays of any depth
// and returns every non-sequence leaf in depth-first, left-to-right order.
//
//	collections.Flatten([]any{1, []any{2, []any{3, []int{4}}, 5}})
//	// → [1 2 3 4 5]
//
// Empty nested sequences contribute nothing. A nested value that is not a
// sequence is emitted as it is; a non-sequence argument yields a single-item
// result.
func Flatten(nested any) Sequence[any] {
	return flattenInto(make(Sequence[any], 0), nested)
}

func flattenInto(out Sequence[any], v any) Sequence[any] {
	rv, ok := isSequence(v)
	if !ok {
		return append(out, v)
	}
	for i := 0; i < rv.Len(); i++ {
		out = flattenInto(out, rv.Index(i).Interface())
	}
	return out
}

// FlattenOf is [Flatten] with every leaf asserted to T.
// It returns [ErrUnexpectedLeaf] on the first leaf of another type.
func FlattenOf[T any](nested any) (Sequence[T], error) {
	leaves := Flatten(nested)
	out := make(Sequence[T], 0, len(leaves))
	for i, leaf := range leaves {
		v, ok := leaf.(T)
		if !ok {
			return nil, fmt.Errorf("%w: leaf %d is %T", ErrUnexpectedLeaf, i, leaf)
		}
		out = append(out, v)
	}
	return out, nil
}

// SortBy groups the values of target by the key by extracts, orders the
// distinct keys, and concatenates the groups in that order.
//
// Keys are ranked by kind (bool, then numbers, then strings, then anything
// else) and compare naturally within a kind; keys outside those kinds
// compare by their printed form. The key order depends only on the set of
// keys, never on traversal order. Within a group,
// values keep their traversal order. This is a grouping sort: it is stable
// for equal keys, but it never calls a comparator on the values themselves.
//
//	collections.SortBy(people, collections.ByField[Person]("Name"))
//	collections.SortBy(people, collections.ByFunc(func(p Person) int { return p.Age }))
func SortBy[K, V any](target Target[K, V], by Extractor[V]) Sequence[V] {
	keyOf := by.resolve()

	var order []any
	index := make(map[any]int)
	groups := make([]Sequence[V], 0)
	Each(target, func(v V, _ K) {
		k := keyOf(v)
		id := groupKey(k)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			order = append(order, k)
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], v)
	})

	ranks := make([]int, len(order))
	for i := range ranks {
		ranks[i] = i
	}
	slices.SortStableFunc(ranks, func(a, b int) int {
		return compareKeys(order[a], order[b])
	})

	out := make(Sequence[V], 0)
	for _, i := range ranks {
		out = append(out, groups[i]...)
	}
	return out
}

// Zip combines seqs position by position. The result has one tuple per
// position of the longest input, and each tuple has one slot per input.
// Slots past the end of a shorter input are [Absent].
//
//	collections.Zip([][]any{{"a", "b", "c", "d"}, {1, 2, 3}})
//	// → [[a 1] [b 2] [c 3] [d <absent>]]
func Zip[S ~[]T, T any](seqs []S) []Sequence[Option[T]] {
	longest := Fold(Sequence[S](seqs), 0, func(n int, s S) int {
		return max(n, len(s))
	})
	out := make([]Sequence[Option[T]], longest)
	for i := range out {
		tuple := make(Sequence[Option[T]], len(seqs))
		Each(Sequence[S](seqs), func(s S, j int) {
			if i < len(s) {
				tuple[j] = Just(s[i])
			}
		})
		out[i] = tuple
	}
	return out
}

// Intersection returns the distinct values present in every one of seqs,
// ordered by their first appearance in seqs[0]. No inputs yield an empty
// result.
func Intersection[S ~[]T, T comparable](seqs []S) Sequence[T] {
	out := make(Sequence[T], 0)
	if len(seqs) == 0 {
		return out
	}
	others := Sequence[S](seqs[1:])
	Each(Sequence[T](seqs[0]), func(v T, _ int) {
		if Contains(out, v) {
			return
		}
		if Every(others, func(s S) bool { return Contains(Sequence[T](s), v) }) {
			out = append(out, v)
		}
	})
	return out
}

// Difference returns the elements of primary that appear in none of others,
// preserving their order and any duplicates.
func Difference[S ~[]T, T comparable](primary S, others []S) Sequence[T] {
	return Reject(Sequence[T](primary), func(v T) bool {
		return Some(Sequence[S](others), func(s S) bool {
			return Contains(Sequence[T](s), v)
		})
	})
}

// GroupBy groups the values of target by the comparable key fn extracts.
// Each group keeps traversal order.
func GroupBy[K, V any, G comparable](target Target[K, V], fn func(V) G) map[G]Sequence[V] {
	groups := make(map[G]Sequence[V])
	Each(target, func(v V, _ K) {
		g := fn(v)
		groups[g] = append(groups[g], v)
	})
	return groups
}

// Partition splits the values of target into those satisfying test and
// those that do not.
func Partition[K, V any](target Target[K, V], test func(V) bool) (Sequence[V], Sequence[V]) {
	return Filter(target, test), Reject(target, test)
}
