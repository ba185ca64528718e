package fft

import (
	"math"

	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// bluestein reduces an arbitrary-length DFT to a circular convolution of
// power-of-two size m >= 2n-1, computable with the mixed-radix pipeline.
//
// With the chirp c[k] = exp(-iπk²/n), the identity nk = (n²+k²-(k-n)²)/2
// gives X[k] = c[k] · Σ (x·c)[j] · conj(c)[k-j], a linear convolution that
// is embedded into the circular one. The inverse DFT uses the conjugated
// chirp; the convolution FFTs themselves always run forward+inverse.
type bluestein[T Complex] struct {
	n, m      int
	chirp     []T // c[k] = exp(-iπk²/n), forward sign, length n
	filterFwd []T // FFT_m of the wrapped conj-chirp, for forward transforms
	filterInv []T // FFT_m of the wrapped chirp, for inverse transforms
	inner     *Axis[T]
}

func newBluestein[T Complex](n int) (*bluestein[T], error) {
	if n <= 0 {
		return nil, ErrUnsupportedLength
	}

	m := imath.NextPowerOf2(2*n - 1)

	// Power-of-two length: factorizes into 4s and 2s, never recurses here.
	inner, err := NewAxis[T](m)
	if err != nil {
		return nil, err
	}

	bs := &bluestein[T]{
		n:     n,
		m:     m,
		chirp: make([]T, n),
		inner: inner,
	}

	// c[k] = exp(-iπ·(k² mod 2n)/n). The square is reduced incrementally
	// ((k+1)² = k² + 2k + 1) to keep the sincos argument small for large n.
	q := 0
	for k := 0; k < n; k++ {
		angle := -math.Pi * float64(q) / float64(n)
		im, re := math.Sincos(angle)
		bs.chirp[k] = imath.FromFloat64[T](re, im)

		q += 2*k + 1
		q %= 2 * n
	}

	bs.filterFwd = bs.buildFilter(true)
	bs.filterInv = bs.buildFilter(false)

	return bs, nil
}

// buildFilter computes the FFT of the symmetric chirp filter
// h[j] = conj(c[j]) (forward) or c[j] (inverse), wrapped into m points.
func (bs *bluestein[T]) buildFilter(forward bool) []T {
	h := make([]T, bs.m)
	for j := 0; j < bs.n; j++ {
		v := bs.chirp[j]
		if forward {
			v = imath.Conj(v)
		}

		h[j] = v
		if j > 0 {
			h[bs.m-j] = v
		}
	}

	// The inner length is a power of two, so no pass needs radix scratch.
	filter := make([]T, bs.m)
	work := make([]T, bs.m)
	bs.inner.stages(filter, h, work, nil, false)

	return filter
}

func (bs *bluestein[T]) execute(dst, src []T, ws *Workspace[T], inverse bool) {
	n, m := bs.n, bs.m
	a := ws.ConvA[:m]
	b := ws.ConvB[:m]
	work := ws.ConvWork[:m]

	for i := range a {
		var zero T
		a[i] = zero
	}

	for k := 0; k < n; k++ {
		ck := bs.chirp[k]
		if inverse {
			ck = imath.Conj(ck)
		}

		a[k] = src[k] * ck
	}

	bs.inner.stages(b, a, work, nil, false)

	filter := bs.filterFwd
	if inverse {
		filter = bs.filterInv
	}

	for j := range b {
		b[j] *= filter[j]
	}

	bs.inner.stages(a, b, work, nil, true)

	// The inner round trip contributes a factor of m.
	scale := imath.FromFloat64[T](1.0/float64(m), 0)

	for k := 0; k < n; k++ {
		ck := bs.chirp[k]
		if inverse {
			ck = imath.Conj(ck)
		}

		dst[k] = a[k] * ck * scale
	}
}
