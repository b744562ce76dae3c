package arr

import (
	"fmt"
	"math/rand"
	"reflect"

	"github.com/hasbyte1/go-underbar/collections"
)

// Identity returns v unchanged. It is the default iterator for helpers that
// take an optional one.
func Identity[T any](v T) T { return v }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first n items of s, or just the first item when n is
// omitted. n is clamped to [0, len(s)].
//
//	First([]int{1, 2, 3})     // → [1]
//	First([]int{1, 2, 3}, 2)  // → [1 2]
//	First([]int{1, 2, 3}, 10) // → [1 2 3]
func First[S ~[]T, T any](s S, n ...int) collections.Sequence[T] {
	k := clamp(1, len(s), n)
	return collections.Sequence[T](s[:k:k])
}

// Last returns the last n items of s, or just the last item when n is
// omitted. n is clamped to [0, len(s)].
func Last[S ~[]T, T any](s S, n ...int) collections.Sequence[T] {
	k := clamp(1, len(s), n)
	return collections.Sequence[T](s[len(s)-k:])
}

func clamp(def, length int, n []int) int {
	k := def
	if len(n) > 0 {
		k = n[0]
	}
	return max(0, min(k, length))
}

// ─────────────────────────────────────────────────────────────────────────────
// Extraction
// ─────────────────────────────────────────────────────────────────────────────

// Pluck reads the dot-notation path off every record. Records without the
// path yield nil.
//
//	Pluck(people, "name") // → ["Ann" "Bob"]
func Pluck[S ~[]map[string]any](records S, path string) collections.Sequence[any] {
	return collections.Map(collections.Sequence[map[string]any](records), func(r map[string]any) any {
		return Get(r, path)
	})
}

// PluckBy extracts a typed value from every item.
//
//	names := PluckBy(users, func(u User) string { return u.Name })
func PluckBy[S ~[]T, T, U any](items S, fn func(T) U) collections.Sequence[U] {
	return collections.Map(collections.Sequence[T](items), fn)
}

// Invoke calls the exported method name on every item with args and
// returns each call's first result (nil for methods without results).
//
// It returns [ErrMethodNotFound] or [ErrBadArguments] for the first item the
// call cannot be made on; no method of any later item is called.
func Invoke[S ~[]T, T any](items S, name string, args ...any) (collections.Sequence[any], error) {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}

	out := make(collections.Sequence[any], 0, len(items))
	for i, item := range items {
		m := reflect.ValueOf(item).MethodByName(name)
		if !m.IsValid() {
			return nil, fmt.Errorf("%w: %T.%s", ErrMethodNotFound, item, name)
		}
		if !callable(m.Type(), in) {
			return nil, fmt.Errorf("%w: item %d, %T.%s", ErrBadArguments, i, item, name)
		}
		results := m.Call(in)
		if len(results) == 0 {
			out = append(out, nil)
			continue
		}
		out = append(out, results[0].Interface())
	}
	return out, nil
}

// InvokeFunc is the function form of [Invoke]: it calls fn with every item
// and the same args, and collects the results. The method form needs
// reflection and can fail; this one cannot.
//
//	InvokeFunc(words, func(w string, args ...any) string {
//		return strings.Repeat(w, args[0].(int))
//	}, 2)
func InvokeFunc[S ~[]T, T, R any](items S, fn func(T, ...any) R, args ...any) collections.Sequence[R] {
	return collections.Map(collections.Sequence[T](items), func(item T) R {
		return fn(item, args...)
	})
}

func callable(ft reflect.Type, in []reflect.Value) bool {
	if ft.IsVariadic() || ft.NumIn() != len(in) {
		return false
	}
	for i, v := range in {
		if !v.IsValid() || !v.Type().AssignableTo(ft.In(i)) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Records
// ─────────────────────────────────────────────────────────────────────────────

// Extend copies every entry of each source into dst, later sources
// overwriting earlier ones and dst's own values. It returns dst.
func Extend[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	for _, src := range srcs {
		collections.Each(collections.Mapping[K, V](src), func(v V, k K) {
			dst[k] = v
		})
	}
	return dst
}

// Defaults copies entries of each source into dst only for keys dst does not
// already hold; the first source to supply a key wins. It returns dst.
func Defaults[M ~map[K]V, K comparable, V any](dst M, srcs ...M) M {
	for _, src := range srcs {
		collections.Each(collections.Mapping[K, V](src), func(v V, k K) {
			if _, ok := dst[k]; !ok {
				dst[k] = v
			}
		})
	}
	return dst
}

// Combine builds a map from equal-length key and value sequences. Later
// duplicate keys overwrite earlier ones.
func Combine[K comparable, V any](keys []K, values []V) (map[K]V, error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	out := make(map[K]V, len(keys))
	collections.Each(collections.Sequence[K](keys), func(k K, i int) {
		out[k] = values[i]
	})
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Shuffle returns a randomly ordered copy of s. s itself is not modified.
func Shuffle[S ~[]T, T any](s S) collections.Sequence[T] {
	out := make(collections.Sequence[T], len(s))
	copy(out, s)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
