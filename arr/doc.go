// Package arr holds the thin helpers that sit beside the core collection
// operations: taking the first or last items of a sequence, plucking a
// property off each record, invoking a method on each item, and shallow
// merging of records.
//
// None of them carries design of its own. Each one is a short composition
// of [collections] primitives:
//
//	arr.First(collections.Of(1, 2, 3), 2)        // → [1 2]
//	arr.Pluck(people, "address.city")           // → ["London" "Paris"]
//	arr.Defaults(opts, map[string]any{"n": 10}) // fills missing keys only
//
// # Dot-notation access
//
// Property paths address nested map[string]any records with dot-separated
// segments:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	arr.Get(m, "user.name")           // → "Alice"
//	arr.Set(m, "user.email", "a@x")   // creates the key
//	arr.Has(m, "user.missing")        // → false
package arr
