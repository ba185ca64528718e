package fft

import (
	"github.com/cwbudde/algo-fftnd/internal/fftypes"
	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// maxDirectRadix bounds the generic O(r²) butterfly. When the factorization
// of an axis length contains a larger prime, the whole axis switches to
// Bluestein's convolution method instead.
const maxDirectRadix = 31

// Axis executes 1-D transforms of a single fixed length. It bundles the
// radix decomposition with the twiddle table so that plans can share one
// Axis across all axes of equal length.
//
// An Axis is immutable after construction and safe for concurrent use; all
// mutable state lives in the caller-supplied Workspace.
type Axis[T Complex] struct {
	n       int
	factors []int
	method  fftypes.Method
	w       []T // forward twiddle table, length n (mixed radix only)
	codelet Codelet[T]
	bs      *bluestein[T]
}

// NewAxis builds an executor for length n, choosing the decomposition with
// the default policy. Returns ErrUnsupportedLength for n <= 0.
func NewAxis[T Complex](n int) (*Axis[T], error) {
	if n <= 0 {
		return nil, ErrUnsupportedLength
	}

	factors := imath.Factorize(n)

	method := fftypes.MethodMixedRadix
	if imath.MaxFactor(factors) > maxDirectRadix {
		method = fftypes.MethodBluestein
	}

	return NewAxisWith[T](n, factors, method)
}

// NewAxisWith builds an executor for length n using an externally chosen
// decomposition, e.g. one recalled from wisdom. The factor product must
// equal n or ErrBadDecomposition is returned.
func NewAxisWith[T Complex](n int, factors []int, method fftypes.Method) (*Axis[T], error) {
	if n <= 0 {
		return nil, ErrUnsupportedLength
	}

	product := 1
	for _, f := range factors {
		if f < 2 {
			return nil, ErrBadDecomposition
		}

		product *= f
	}

	if product != n {
		return nil, ErrBadDecomposition
	}

	a := &Axis[T]{
		n:       n,
		factors: append([]int(nil), factors...),
		method:  method,
	}

	if method == fftypes.MethodBluestein {
		bs, err := newBluestein[T](n)
		if err != nil {
			return nil, err
		}

		a.bs = bs

		return a, nil
	}

	a.w = imath.ComputeTwiddleFactors[T](n)
	a.codelet = SelectCodelet[T](n, detectedFeatures)

	return a, nil
}

// Len returns the transform length.
func (a *Axis[T]) Len() int {
	return a.n
}

// Factors returns a copy of the radix decomposition.
func (a *Axis[T]) Factors() []int {
	return append([]int(nil), a.factors...)
}

// Method reports how the axis is executed.
func (a *Axis[T]) Method() fftypes.Method {
	return a.method
}

// ConvLen returns the Bluestein convolution length, or 0 for mixed-radix
// axes. Workspaces for this axis must provide conv buffers of this size.
func (a *Axis[T]) ConvLen() int {
	if a.bs == nil {
		return 0
	}

	return a.bs.m
}

// Forward computes the unnormalized forward DFT of src into dst.
// dst and src must have length >= Len() and must not alias each other or
// the workspace buffers.
func (a *Axis[T]) Forward(dst, src []T, ws *Workspace[T]) {
	a.transform(dst, src, ws, false)
}

// Inverse computes the unnormalized inverse DFT of src into dst.
// A Forward followed by an Inverse yields the input scaled by Len().
func (a *Axis[T]) Inverse(dst, src []T, ws *Workspace[T]) {
	a.transform(dst, src, ws, true)
}

func (a *Axis[T]) transform(dst, src []T, ws *Workspace[T], inverse bool) {
	if a.bs != nil {
		a.bs.execute(dst, src, ws, inverse)
		return
	}

	if a.codelet != nil {
		a.codelet(dst[:a.n], src[:a.n], inverse)
		return
	}

	a.stages(dst, src, ws.Work, ws.Radix, inverse)
}

// stages runs the pass pipeline, ping-ponging between dst and work so that
// the final pass always lands in dst. src is read only by the first pass.
// radix is the generic butterfly's scratch, forwarded to each pass.
func (a *Axis[T]) stages(dst, src, work, radix []T, inverse bool) {
	total := len(a.factors)
	if total == 0 {
		copy(dst[:a.n], src[:a.n])
		return
	}

	n := a.n
	s := 1
	cur := src

	for i, r := range a.factors {
		out := work
		if (total-i)%2 == 1 {
			out = dst
		}

		stagePass(out[:a.n], cur[:a.n], a.w, radix, n, s, r, inverse)

		cur = out
		n /= r
		s *= r
	}
}
