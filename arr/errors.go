package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrMethodNotFound is returned by [Invoke] when an item has no exported
	// method of the requested name.
	ErrMethodNotFound = errors.New("arr: method not found")

	// ErrBadArguments is returned by [Invoke] when the supplied arguments do
	// not match the method's parameters.
	ErrBadArguments = errors.New("arr: arguments do not match method signature")

	// ErrMismatchedLengths is returned by [Combine] when the key and value
	// sequences differ in length.
	ErrMismatchedLengths = errors.New("arr: keys and values differ in length")
)
