package fft

import (
	"math"

	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// Real transforms of even length n ride on a half-size complex transform of
// the packed sequence z[j] = x[2j] + i·x[2j+1]. The packed spectrum is
// recovered from Z via X[k] = A·(1-U[k]) + B·U[k] with A = Z[k],
// B = conj(Z[n/2-k]) and the recombination weight U below.

// RealWeights returns the recombination weights for an even real length n:
// U[k] = 0.5·(1+sin(2πk/n)) + 0.5i·cos(2πk/n) for k = 0..n/2.
func RealWeights[T Complex](n int) []T {
	half := n / 2

	weight := make([]T, half+1)
	for k := range weight {
		theta := imath.TwoPi * float64(k) / float64(n)
		s, c := math.Sincos(theta)
		weight[k] = imath.FromFloat64[T](0.5*(1+s), 0.5*c)
	}

	return weight
}

// RepackForward recombines the half-size transform z (length n/2) into the
// packed spectrum dst (length n/2+1).
func RepackForward[T Complex](dst, z, weight []T) {
	half := len(z)

	re0, im0 := imath.Parts(z[0])
	dst[0] = imath.FromFloat64[T](re0+im0, 0)
	dst[half] = imath.FromFloat64[T](re0-im0, 0)

	for k := 1; k < half; k++ {
		a := z[k]
		b := imath.Conj(z[half-k])
		c := weight[k] * (a - b)
		dst[k] = a - c
	}
}

// RepackInverse reconstructs the packed half-size buffer dst (length n/2)
// from the packed spectrum src (length n/2+1). It is the exact algebraic
// inverse of RepackForward.
func RepackInverse[T Complex](dst, src, weight []T) {
	half := len(dst)
	if half == 0 {
		return
	}

	x0, _ := imath.Parts(src[0])
	xh, _ := imath.Parts(src[half])
	dst[0] = imath.FromFloat64[T](0.5*(x0+xh), 0.5*(x0-xh))

	one := imath.FromFloat64[T](1, 0)

	for k := 1; k < half; k++ {
		m := half - k
		if k > m {
			continue
		}

		xk := src[k]
		xmkc := imath.Conj(src[m])

		u := weight[k]
		oneMinusU := one - u
		det := one - u - u
		// det is on the unit circle, so 1/det == conj(det).
		invDet := imath.Conj(det)

		a := (xk*oneMinusU - xmkc*u) * invDet
		b := (oneMinusU*xmkc - u*xk) * invDet

		dst[k] = a
		if k != m {
			dst[m] = imath.Conj(b)
		}
	}
}
