package fft

import imath "github.com/cwbudde/algo-fftnd/internal/math"

// ScaleInPlace multiplies every element of data by scale.
func ScaleInPlace[T Complex](data []T, scale float64) {
	if scale == 1 {
		return
	}

	factor := imath.FromFloat64[T](scale, 0)
	for i := range data {
		data[i] *= factor
	}
}

// ScaleStridedInPlace multiplies n elements spaced stride apart by scale,
// starting at data[offset].
func ScaleStridedInPlace[T Complex](data []T, offset, stride, n int, scale float64) {
	if scale == 1 {
		return
	}

	factor := imath.FromFloat64[T](scale, 0)
	idx := offset

	for i := 0; i < n; i++ {
		data[idx] *= factor
		idx += stride
	}
}
