package math

import "math"

// twiddleRenormInterval is the number of recurrence steps between direct
// trigonometric recomputations. Pure multiplicative accumulation of the
// rotation step drifts visibly after a few thousand steps in float64.
const twiddleRenormInterval = 1024

// ComputeTwiddleFactors returns the precomputed twiddle factors (roots of
// unity) for a size-n FFT: W_n^k = exp(-2πik/n) for k = 0..n-1.
//
// The factors are generated by an incremental complex rotation that is
// renormalized every twiddleRenormInterval steps with a direct sincos call,
// bounding the accumulated floating-point drift.
func ComputeTwiddleFactors[T Complex](n int) []T {
	if n <= 0 {
		return nil
	}

	twiddle := make([]T, n)

	stepAngle := -TwoPi / float64(n)
	stepIm, stepRe := math.Sincos(stepAngle)
	step := complex(stepRe, stepIm)

	cur := complex(1, 0)

	for k := 0; k < n; k++ {
		if k%twiddleRenormInterval == 0 {
			im, re := math.Sincos(stepAngle * float64(k))
			cur = complex(re, im)
		}

		twiddle[k] = FromFloat64[T](real(cur), imag(cur))
		cur *= step
	}

	return twiddle
}
