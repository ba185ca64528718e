package fftnd

import (
	"errors"

	"github.com/cwbudde/algo-fftnd/internal/fft"
)

// Sentinel errors returned by plan construction and execution.
var (
	// ErrUnsupportedLength is returned when an axis length cannot be
	// decomposed into an executable radix sequence.
	ErrUnsupportedLength = fft.ErrUnsupportedLength

	// ErrIncompatibleShape is returned for non-positive or overflowing
	// dimensions, and when a buffer view's shape or strides do not match
	// what the plan expects.
	ErrIncompatibleShape = errors.New("fftnd: incompatible shape")

	// ErrBufferTooSmall is returned when the declared shape and strides
	// address elements outside the buffer's bounds, or when a supplied
	// scratch workspace is undersized for the plan.
	ErrBufferTooSmall = errors.New("fftnd: buffer too small")

	// ErrAliasedBuffers is returned when input and output views overlap in
	// a way the executor cannot handle. Identical views (full in-place
	// execution) are supported and do not trigger this error.
	ErrAliasedBuffers = errors.New("fftnd: aliased buffers")

	// ErrDirectionMismatch is returned when an operation requires the
	// opposite direction from the one the plan was built with.
	ErrDirectionMismatch = errors.New("fftnd: plan direction does not match operation")

	// ErrNilSlice is returned when a nil slice is passed to a transform.
	ErrNilSlice = errors.New("fftnd: nil slice")

	// ErrLengthMismatch is returned when slice lengths don't match the
	// plan's dimensions.
	ErrLengthMismatch = errors.New("fftnd: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid for
	// the given data layout.
	ErrInvalidStride = errors.New("fftnd: invalid stride")
)
