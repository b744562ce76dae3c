package collections

import "fmt"

// Entry is a single key/value pair of a [Mapping].
// It is the element type produced by [Entries].
type Entry[K, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
