package gpu

import "errors"

var (
	// ErrNoBackend is returned when no GPU backend is registered.
	ErrNoBackend = errors.New("fftnd/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("fftnd/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("fftnd/gpu: not implemented")

	// ErrInvalidShape is returned for invalid plan shapes.
	ErrInvalidShape = errors.New("fftnd/gpu: invalid shape")

	// ErrNilSlice is returned when dst or src is nil.
	ErrNilSlice = errors.New("fftnd/gpu: nil slice")

	// ErrLengthMismatch is returned when dst or src lengths are not as required.
	ErrLengthMismatch = errors.New("fftnd/gpu: length mismatch")
)
