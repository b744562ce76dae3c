package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrInvalidTarget is returned when a dynamic traversal is asked to walk a
	// value that is neither a sequence (slice or array) nor a mapping.
	ErrInvalidTarget = errors.New("collections: value is not a sequence or mapping")

	// ErrUnexpectedLeaf is returned by [FlattenOf] when a leaf value does not
	// have the requested element type.
	ErrUnexpectedLeaf = errors.New("collections: unexpected leaf type")
)
