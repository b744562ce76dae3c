package arr

import (
	"strings"

	"github.com/hasbyte1/go-underbar/collections"
)

// Lookup returns the value at the dot-notation path in m and whether it
// exists.
//
//	Lookup(m, "user.address.city") // → "London", true
func Lookup(m map[string]any, path string) (any, bool) {
	current := m
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		if current, ok = val.(map[string]any); !ok {
			return nil, false
		}
	}
	return nil, false
}

// Get returns the value at the dot-notation path in m, or def[0] (nil when
// omitted) if the path does not exist.
//
//	Get(m, "user.missing", "default") // → "default"
func Get(m map[string]any, path string, def ...any) any {
	if v, ok := Lookup(m, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Has reports whether the dot-notation path exists in m.
func Has(m map[string]any, path string) bool {
	_, ok := Lookup(m, path)
	return ok
}

// Set writes value at the dot-notation path in m, creating or replacing
// intermediate maps as needed.
func Set(m map[string]any, path string, value any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[head] = child
	}
	Set(child, rest, value)
}

// Dot flattens nested maps into a single level keyed by dot-notation paths.
// It is the inverse of calling [Set] for every entry.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}}) // → {"a.b": 1}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", m)
	return out
}

func flattenInto(out map[string]any, prefix string, m map[string]any) {
	collections.Each(collections.Mapping[string, any](m), func(v any, k string) {
		if prefix != "" {
			k = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			flattenInto(out, k, nested)
			return
		}
		out[k] = v
	})
}
