package circulant

import "errors"

// Sentinel errors returned by circulant operations.
var (
	// ErrInvalidLength is returned when a zero-length vector is supplied.
	// The transform pair is undefined for n = 0.
	ErrInvalidLength = errors.New("circulant: invalid vector length")

	// ErrNilSlice is returned when a nil slice is passed where data is required.
	ErrNilSlice = errors.New("circulant: nil slice")

	// ErrLengthMismatch is returned when the generating vector, the input
	// vector, and the destination do not all share the same length.
	ErrLengthMismatch = errors.New("circulant: vector length mismatch")
)
