package collections

import "fmt"

// Option is a value that may be absent.
//
// It is returned where "nothing" has to be told apart from a zero value:
// [Reduce] without a seed over an empty target, and the padded positions of
// [Zip].
type Option[T any] struct {
	Value   T
	Present bool
}

// Just returns a present Option holding v.
func Just[T any](v T) Option[T] {
	return Option[T]{Value: v, Present: true}
}

// Absent returns an absent Option.
func Absent[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrElse returns the held value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.Present {
		return fallback
	}
	return o.Value
}

// String returns the value's default format, or "<absent>".
func (o Option[T]) String() string {
	if !o.Present {
		return "<absent>"
	}
	return fmt.Sprint(o.Value)
}
