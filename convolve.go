package fftnd

import (
	"github.com/cwbudde/algo-fftnd/internal/fft"
	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// Convolve64 computes the linear convolution of a and b into dst.
// dst must have length >= len(a)+len(b)-1.
func Convolve64(dst, a, b []complex64) error {
	return convolve(dst, a, b)
}

// Convolve128 computes the linear convolution of a and b into dst.
// dst must have length >= len(a)+len(b)-1.
func Convolve128(dst, a, b []complex128) error {
	return convolve(dst, a, b)
}

// convolve multiplies the spectra over a power-of-two transform large enough
// to hold the full linear convolution.
func convolve[T Complex](dst, a, b []T) error {
	if dst == nil || a == nil || b == nil {
		return ErrNilSlice
	}

	if len(a) == 0 || len(b) == 0 {
		return ErrUnsupportedLength
	}

	n := len(a) + len(b) - 1
	if len(dst) < n {
		return ErrLengthMismatch
	}

	m := imath.NextPowerOf2(n)

	axis, err := fft.NewAxis[T](m)
	if err != nil {
		return err
	}

	ws := fft.NewWorkspace[T](m, 0)

	pa := make([]T, m)
	copy(pa, a)
	fa := make([]T, m)
	axis.Forward(fa, pa, ws)

	pb := make([]T, m)
	copy(pb, b)
	fb := make([]T, m)
	axis.Forward(fb, pb, ws)

	for i := range fa {
		fa[i] *= fb[i]
	}

	axis.Inverse(pa, fa, ws)
	fft.ScaleInPlace(pa, 1.0/float64(m))

	copy(dst[:n], pa[:n])

	return nil
}
