package fft

import (
	"github.com/cwbudde/algo-fftnd/internal/cpu"
	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// detectedFeatures is resolved once; feature flags cannot change mid-process.
var detectedFeatures = cpu.DetectFeatures()

// Codelet is a fixed-size transform with no dispatch overhead. Codelets are
// self-contained: they need no twiddle table and no workspace.
type Codelet[T Complex] func(dst, src []T, inverse bool)

// SelectCodelet returns a codelet for tiny sizes, or nil when the size must
// go through the stage pipeline. Feature flags are accepted for parity with
// SIMD codelet selection; the current codelets are pure Go.
func SelectCodelet[T Complex](n int, features cpu.Features) Codelet[T] {
	_ = features

	switch n {
	case 1:
		return codelet1[T]
	case 2:
		return codelet2[T]
	case 4:
		return codelet4[T]
	default:
		return nil
	}
}

func codelet1[T Complex](dst, src []T, inverse bool) {
	_ = inverse
	dst[0] = src[0]
}

func codelet2[T Complex](dst, src []T, inverse bool) {
	_ = inverse

	a := src[0]
	b := src[1]
	dst[0] = a + b
	dst[1] = a - b
}

func codelet4[T Complex](dst, src []T, inverse bool) {
	c0 := src[0]
	c1 := src[1]
	c2 := src[2]
	c3 := src[3]

	t0 := c0 + c2
	t1 := c0 - c2
	t2 := c1 + c3

	rot := imath.FromFloat64[T](0, -1)
	if inverse {
		rot = imath.FromFloat64[T](0, 1)
	}

	t3 := (c1 - c3) * rot

	dst[0] = t0 + t2
	dst[1] = t1 + t3
	dst[2] = t0 - t2
	dst[3] = t1 - t3
}
