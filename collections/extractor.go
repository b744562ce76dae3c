package collections

import (
	"reflect"
)

// Extractor selects the key an element is grouped or sorted by.
//
// It is either a function ([ByFunc]) or a field name ([ByField]). The choice
// is resolved once, when the operation starts, into a single key function.
type Extractor[T any] struct {
	fn    func(T) any
	field string
}

// ByFunc returns an Extractor that calls fn on each element.
func ByFunc[T, R any](fn func(T) R) Extractor[T] {
	return Extractor[T]{fn: func(v T) any { return fn(v) }}
}

// ByField returns an Extractor that reads the named field off each element.
//
// Struct elements (or pointers to structs) are read by exported field name.
// Maps with string keys are indexed by name. Anything else, and a missing
// field, yields a nil key.
func ByField[T any](name string) Extractor[T] {
	return Extractor[T]{field: name}
}

// resolve returns the single key function this Extractor stands for.
func (e Extractor[T]) resolve() func(T) any {
	if e.fn != nil {
		return e.fn
	}
	name := e.field
	return func(v T) any {
		return fieldOf(reflect.ValueOf(any(v)), name)
	}
}

func fieldOf(rv reflect.Value, name string) any {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil
		}
		return f.Interface()
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		f := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !f.IsValid() {
			return nil
		}
		return f.Interface()
	default:
		return nil
	}
}
