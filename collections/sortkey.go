package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
)

// groupKey returns a map-safe identity for an extracted key. Comparable keys
// are used as they are; the rest fall back to their Go-syntax representation.
func groupKey(k any) any {
	if k == nil {
		return nil
	}
	if reflect.ValueOf(k).Comparable() {
		return k
	}
	return fmt.Sprintf("%T:%#v", k, k)
}

// compareKeys orders two extracted keys. Keys are ranked by kind first:
// booleans, then numbers, then strings, then everything else (nil
// included). Within a rank, booleans, numbers and strings compare naturally,
// integers and floats alike by value; the remaining keys compare by printed
// form, then by type name.
func compareKeys(a, b any) int {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	ca, cb := kindClass(ra), kindClass(rb)
	if c := cmp.Compare(rankOf(ca), rankOf(cb)); c != 0 {
		return c
	}
	switch {
	case ca == classBool:
		return cmp.Compare(boolRank(ra.Bool()), boolRank(rb.Bool()))
	case ca == classInt && cb == classInt:
		return cmp.Compare(ra.Int(), rb.Int())
	case ca == classUint && cb == classUint:
		return cmp.Compare(ra.Uint(), rb.Uint())
	case isNumeric(ca):
		return cmp.Compare(asFloat(ra), asFloat(rb))
	case ca == classString:
		return strings.Compare(ra.String(), rb.String())
	}
	if c := strings.Compare(fmt.Sprint(a), fmt.Sprint(b)); c != 0 {
		return c
	}
	return strings.Compare(fmt.Sprintf("%T", a), fmt.Sprintf("%T", b))
}

// rankOf places numeric classes side by side so ints and floats interleave
// by value.
func rankOf(c keyClass) int {
	switch c {
	case classBool:
		return 0
	case classInt, classUint, classFloat:
		return 1
	case classString:
		return 2
	default:
		return 3
	}
}

type keyClass int

const (
	classOther keyClass = iota
	classBool
	classInt
	classUint
	classFloat
	classString
)

func kindClass(rv reflect.Value) keyClass {
	switch rv.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	default:
		return classOther
	}
}

func isNumeric(c keyClass) bool {
	return c == classInt || c == classUint || c == classFloat
}

func asFloat(rv reflect.Value) float64 {
	switch kindClass(rv) {
	case classInt:
		return float64(rv.Int())
	case classUint:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
