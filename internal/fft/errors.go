package fft

import "errors"

// Sentinel errors surfaced through the public package.
var (
	// ErrUnsupportedLength is returned when an axis length cannot be
	// decomposed into an executable radix sequence (n <= 0).
	ErrUnsupportedLength = errors.New("fftnd: unsupported transform length")

	// ErrBadDecomposition is returned when an externally supplied radix
	// decomposition (e.g. from imported wisdom) does not match the axis
	// length it claims to describe.
	ErrBadDecomposition = errors.New("fftnd: radix decomposition does not match length")
)
