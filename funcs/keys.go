package funcs

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// KeyStrategy selects how [Memoize] turns an argument into a cache key.
type KeyStrategy int

const (
	// KeyNative uses the argument itself. Distinct values never collide.
	//
	// An argument whose dynamic type is not comparable (a slice or map held
	// in an `any`) cannot be a map key; it is keyed by its type-tagged
	// printed form instead, as with [KeyDigest], so equal-printing values of
	// that type share an entry.
	KeyNative KeyStrategy = iota

	// KeyString uses the argument's printed form: String() for a
	// [fmt.Stringer], the default format otherwise.
	//
	// Known limitation: arguments that print the same share a key. With an
	// `any` argument, 1 and "1" collide, as do distinct values whose String
	// methods agree.
	KeyString

	// KeyDigest uses a BLAKE2b-256 digest of the type-tagged printed form.
	// Keys are a fixed 32 bytes however large the argument prints, and
	// values of different types never share a key. Values of the same type
	// that print the same still do.
	KeyDigest

	// KeyHash64 uses the xxHash64 of the type-tagged printed form. Keys are 8
	// bytes; two distinct printed forms collide with probability about
	// 2^-64 per pair.
	KeyHash64
)

// String returns the strategy name.
func (s KeyStrategy) String() string {
	switch s {
	case KeyNative:
		return "native"
	case KeyString:
		return "string"
	case KeyDigest:
		return "digest"
	case KeyHash64:
		return "hash64"
	default:
		return fmt.Sprintf("KeyStrategy(%d)", int(s))
	}
}

// keyFunc returns the coercion for s. Unknown strategies fall back to
// KeyNative.
func (s KeyStrategy) keyFunc() func(any) any {
	switch s {
	case KeyString:
		return stringKey
	case KeyDigest:
		return func(v any) any { return blake2b.Sum256([]byte(taggedKey(v))) }
	case KeyHash64:
		return func(v any) any { return xxhash.Sum64String(taggedKey(v)) }
	default:
		return nativeKey
	}
}

// printedKey keeps fallback keys apart from string arguments.
type printedKey string

func nativeKey(v any) any {
	if v != nil && !reflect.ValueOf(v).Comparable() {
		return printedKey(taggedKey(v))
	}
	return v
}

func stringKey(v any) any {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// taggedKey prefixes the printed form with the dynamic type so that 1 and
// "1" differ.
func taggedKey(v any) string {
	return fmt.Sprintf("%T\x00%s", v, stringKey(v))
}
