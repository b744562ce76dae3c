// Package collections provides generic operations over ordered sequences and
// key/value mappings, all built from a single traversal primitive.
//
// # Overview
//
// Every operation accepts a [Target]: anything that can walk its own elements
// through an Each method. [Sequence] (a named slice), [Mapping] (a named map)
// and the fluent [Collection] wrapper all satisfy it:
//
//	nums := collections.Of(1, 2, 3, 4, 5, 6)
//	evens := collections.Filter(nums, func(n int) bool { return n%2 == 0 })
//	sum := collections.Reduce(evens, func(acc, n int) int { return acc + n })
//	fmt.Println(sum.Value) // → 12
//
//	ages := collections.Mapping[string, int]{"ann": 31, "bob": 17}
//	adults := collections.Filter(ages, func(age int) bool { return age >= 18 })
//
// # Layers
//
// The package is layered and acyclic:
//
//   - [Each] walks a target. Nothing else touches the underlying storage.
//   - [IndexOf], [Filter], [Reject], [Every], [Some] and [Contains] fold over Each.
//   - [Reduce] and [Fold] aggregate through Each.
//   - [Map], [Uniq], [Flatten], [SortBy], [Zip], [Intersection] and
//     [Difference] compose the layers above.
//
// # Mapping order
//
// Walking a [Mapping] follows Go's map iteration order, which is deliberately
// randomised. Callers must not depend on it. Use [Keys] or [Entries] for a
// deterministic, key-sorted view.
//
// # Absent values
//
// Operations that may have nothing to return report it with [Option] rather
// than a zero value: [Reduce] without a seed over an empty target, and [Zip]
// for positions past the end of a shorter input.
//
// # Dynamic values
//
// [Walk] and [Flatten] accept untyped values (any slice, array or map) through
// reflection. Values that are not collections are rejected by Walk with
// [ErrInvalidTarget].
package collections
