package fftnd

import (
	"sync"

	"github.com/cwbudde/algo-fftnd/internal/fft"
	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// realPlan is the shared implementation behind PlanReal32 and PlanReal64.
//
// The last axis carries the real↔packed transform; any remaining axes run as
// an ordinary complex sub-plan over the packed shape. Real plans operate on
// contiguous row-major buffers.
//
// For even last-axis lengths the transform rides on a half-size complex FFT
// of the packed sequence x[2j] + i·x[2j+1] with Hermitian recombination; odd
// lengths promote the line to a full-length complex transform.
type realPlan[F Float, T Complex] struct {
	shape       []int
	packed      []int
	dir         Direction
	scale       ScaleMode
	n           int // real extent of the last axis
	half        int // n/2 (even path)
	packedLast  int // ⌊n/2⌋+1
	even        bool
	realTotal   int
	packedTotal int
	axisHalf    *fft.Axis[T]
	axisFull    *fft.Axis[T]
	weight      []T
	inner       *Plan[T]

	pool sync.Pool // of *realScratch[T]
}

type realScratch[T Complex] struct {
	ws    *fft.Workspace[T]
	buf   []T // packed staging for multidimensional inverse
	inner *Scratch[T]
}

func newRealPlan[F Float, T Complex](shape []int, dir Direction, opts ...PlanOption) (*realPlan[F, T], error) {
	cfg := defaultPlanConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Real plans are contiguous row-major only.
	if cfg.strides != nil {
		return nil, ErrInvalidStride
	}

	if cfg.axes != nil {
		return nil, ErrIncompatibleShape
	}

	if len(shape) == 0 {
		return nil, ErrIncompatibleShape
	}

	realTotal, ok := imath.Product(shape)
	if !ok {
		return nil, ErrIncompatibleShape
	}

	rank := len(shape)
	n := shape[rank-1]

	p := &realPlan[F, T]{
		shape:      append([]int(nil), shape...),
		dir:        dir,
		scale:      cfg.scale,
		n:          n,
		half:       n / 2,
		packedLast: n/2 + 1,
		even:       n%2 == 0,
		realTotal:  realTotal,
	}

	p.packed = append([]int(nil), shape...)
	p.packed[rank-1] = p.packedLast

	p.packedTotal, _ = imath.Product(p.packed)

	var err error

	if p.even {
		p.axisHalf, err = fft.NewAxis[T](p.half)
		if err != nil {
			return nil, err
		}

		p.weight = fft.RealWeights[T](n)
	} else {
		p.axisFull, err = fft.NewAxis[T](n)
		if err != nil {
			return nil, err
		}
	}

	if rank > 1 {
		innerAxes := make([]int, 0, rank-1)
		for i := rank - 2; i >= 0; i-- {
			innerAxes = append(innerAxes, i)
		}

		innerOpts := []PlanOption{
			WithScaleMode(ScaleNone),
			WithAxes(innerAxes...),
			WithWorkers(cfg.workers),
		}
		if !cfg.wisdom {
			innerOpts = append(innerOpts, WithoutWisdom())
		}

		p.inner, err = NewPlan[T](p.packed, dir, innerOpts...)
		if err != nil {
			return nil, err
		}
	}

	p.pool.New = func() any { return p.newScratch() }

	return p, nil
}

func (p *realPlan[F, T]) newScratch() *realScratch[T] {
	convLen := 0
	if p.axisHalf != nil {
		convLen = p.axisHalf.ConvLen()
	}

	if p.axisFull != nil {
		convLen = p.axisFull.ConvLen()
	}

	rs := &realScratch[T]{
		ws: fft.NewWorkspace[T](p.n, convLen),
	}

	if p.inner != nil {
		rs.buf = make([]T, p.packedTotal)
		rs.inner = p.inner.NewScratch()
	}

	return rs
}

// forward computes the packed spectrum of a real array.
func (p *realPlan[F, T]) forward(dst []T, src []F) error {
	if p.dir != Forward {
		return ErrDirectionMismatch
	}

	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) < p.realTotal || len(dst) < p.packedTotal {
		return ErrLengthMismatch
	}

	rs := p.pool.Get().(*realScratch[T])
	defer p.pool.Put(rs)

	lines := p.realTotal / p.n

	for line := 0; line < lines; line++ {
		srcLine := src[line*p.n : line*p.n+p.n]
		dstLine := dst[line*p.packedLast : line*p.packedLast+p.packedLast]
		p.forwardLine(dstLine, srcLine, rs.ws)
	}

	if p.inner != nil {
		view := View(dst[:p.packedTotal], p.packed...)
		if err := p.inner.Execute(view, view, rs.inner); err != nil {
			return err
		}
	}

	if p.scale == ScaleUnitary {
		fft.ScaleInPlace(dst[:p.packedTotal], scaleFactor(p.realTotal, Forward, ScaleUnitary))
	}

	return nil
}

func (p *realPlan[F, T]) forwardLine(dst []T, src []F, ws *fft.Workspace[T]) {
	if p.even {
		zIn := ws.In[:p.half]
		for j := range zIn {
			zIn[j] = imath.FromFloat64[T](float64(src[2*j]), float64(src[2*j+1]))
		}

		zOut := ws.Out[:p.half]
		p.axisHalf.Forward(zOut, zIn, ws)

		fft.RepackForward(dst, zOut, p.weight)

		return
	}

	full := ws.In[:p.n]
	for j := range full {
		full[j] = imath.FromFloat64[T](float64(src[j]), 0)
	}

	out := ws.Out[:p.n]
	p.axisFull.Forward(out, full, ws)

	copy(dst, out[:p.packedLast])
}

// inverse recovers the real array from a packed spectrum.
func (p *realPlan[F, T]) inverse(dst []F, src []T) error {
	if p.dir != Inverse {
		return ErrDirectionMismatch
	}

	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) < p.packedTotal || len(dst) < p.realTotal {
		return ErrLengthMismatch
	}

	rs := p.pool.Get().(*realScratch[T])
	defer p.pool.Put(rs)

	packed := src[:p.packedTotal]

	if p.inner != nil {
		// The complex axes run first, on a staging copy so src stays intact.
		copy(rs.buf, packed)

		view := View(rs.buf, p.packed...)
		if err := p.inner.Execute(view, view, rs.inner); err != nil {
			return err
		}

		packed = rs.buf
	}

	lines := p.realTotal / p.n

	for line := 0; line < lines; line++ {
		srcLine := packed[line*p.packedLast : line*p.packedLast+p.packedLast]
		dstLine := dst[line*p.n : line*p.n+p.n]
		p.inverseLine(dstLine, srcLine, rs.ws)
	}

	scaleRealInPlace(dst[:p.realTotal], p.inverseScale())

	return nil
}

func (p *realPlan[F, T]) inverseLine(dst []F, src []T, ws *fft.Workspace[T]) {
	if p.even {
		z := ws.In[:p.half]
		fft.RepackInverse(z, src, p.weight)

		zOut := ws.Out[:p.half]
		p.axisHalf.Inverse(zOut, z, ws)

		for j, v := range zOut {
			re, im := imath.Parts(v)
			dst[2*j] = F(re)
			dst[2*j+1] = F(im)
		}

		return
	}

	full := ws.In[:p.n]
	for k := 0; k < p.packedLast; k++ {
		full[k] = src[k]
	}

	for k := 1; k < p.packedLast; k++ {
		if p.n-k >= p.packedLast {
			full[p.n-k] = imath.Conj(src[k])
		}
	}

	out := ws.Out[:p.n]
	p.axisFull.Inverse(out, full, ws)

	for j := range dst {
		re, _ := imath.Parts(out[j])
		dst[j] = F(re)
	}
}

// inverseScale maps the plan's convention onto the raw pipeline gain.
//
// The unnormalized inverse accrues a factor of N_i per complex axis but only
// n/2 along an even real axis, so the correction differs from the complex
// case by that factor of two.
func (p *realPlan[F, T]) inverseScale() float64 {
	rawGain := float64(p.realTotal)
	if p.even {
		rawGain /= 2
	}

	switch p.scale {
	case ScaleInverse:
		return 1 / rawGain
	case ScaleUnitary:
		return scaleFactor(p.realTotal, Forward, ScaleUnitary) * float64(p.realTotal) / rawGain
	default:
		return float64(p.realTotal) / rawGain
	}
}

// fullSpectrum expands a packed spectrum into the full complex array of the
// real shape, reconstructing the omitted bins through Hermitian symmetry:
// X[N-k] = conj(X[k]) with the index mirror applied per axis.
func (p *realPlan[F, T]) fullSpectrum(dst, packed []T) error {
	if dst == nil || packed == nil {
		return ErrNilSlice
	}

	if len(packed) < p.packedTotal || len(dst) < p.realTotal {
		return ErrLengthMismatch
	}

	rank := len(p.shape)
	idx := make([]int, rank)

	for flat := 0; flat < p.realTotal; flat++ {
		last := idx[rank-1]

		if last < p.packedLast {
			off := 0
			for i, k := range idx {
				if i == rank-1 {
					off = off*p.packedLast + k
				} else {
					off = off*p.shape[i] + k
				}
			}

			dst[flat] = packed[off]
		} else {
			off := 0
			for i, k := range idx {
				mirror := (p.shape[i] - k) % p.shape[i]
				if i == rank-1 {
					off = off*p.packedLast + mirror
				} else {
					off = off*p.shape[i] + mirror
				}
			}

			dst[flat] = imath.Conj(packed[off])
		}

		// Odometer increment, last axis fastest.
		for i := rank - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < p.shape[i] {
				break
			}

			idx[i] = 0
		}
	}

	return nil
}

func scaleRealInPlace[F Float](data []F, s float64) {
	if s == 1 {
		return
	}

	for i := range data {
		data[i] = F(float64(data[i]) * s)
	}
}

// PlanReal32 transforms real float32 arrays to and from packed complex64
// spectra. The last axis of a real shape n packs into ⌊n/2⌋+1 bins.
type PlanReal32 struct {
	p *realPlan[float32, complex64]
}

// NewPlanReal32 builds a real-input plan over contiguous row-major buffers.
func NewPlanReal32(shape []int, dir Direction, opts ...PlanOption) (*PlanReal32, error) {
	p, err := newRealPlan[float32, complex64](shape, dir, opts...)
	if err != nil {
		return nil, err
	}

	return &PlanReal32{p: p}, nil
}

// Shape returns the real-domain shape.
func (p *PlanReal32) Shape() []int { return append([]int(nil), p.p.shape...) }

// PackedShape returns the packed spectrum shape.
func (p *PlanReal32) PackedShape() []int { return append([]int(nil), p.p.packed...) }

// Len returns the number of real samples.
func (p *PlanReal32) Len() int { return p.p.realTotal }

// SpectrumLen returns the number of packed complex bins.
func (p *PlanReal32) SpectrumLen() int { return p.p.packedTotal }

// Forward computes the packed spectrum of src. The plan must have been
// built with direction Forward.
func (p *PlanReal32) Forward(dst []complex64, src []float32) error {
	return p.p.forward(dst, src)
}

// Inverse recovers the real array from a packed spectrum. The plan must
// have been built with direction Inverse.
func (p *PlanReal32) Inverse(dst []float32, src []complex64) error {
	return p.p.inverse(dst, src)
}

// FullSpectrum expands a packed spectrum into the full Hermitian-symmetric
// complex array of the real shape.
func (p *PlanReal32) FullSpectrum(dst, packed []complex64) error {
	return p.p.fullSpectrum(dst, packed)
}

// PlanReal64 transforms real float64 arrays to and from packed complex128
// spectra. The last axis of a real shape n packs into ⌊n/2⌋+1 bins.
type PlanReal64 struct {
	p *realPlan[float64, complex128]
}

// NewPlanReal64 builds a real-input plan over contiguous row-major buffers.
func NewPlanReal64(shape []int, dir Direction, opts ...PlanOption) (*PlanReal64, error) {
	p, err := newRealPlan[float64, complex128](shape, dir, opts...)
	if err != nil {
		return nil, err
	}

	return &PlanReal64{p: p}, nil
}

// Shape returns the real-domain shape.
func (p *PlanReal64) Shape() []int { return append([]int(nil), p.p.shape...) }

// PackedShape returns the packed spectrum shape.
func (p *PlanReal64) PackedShape() []int { return append([]int(nil), p.p.packed...) }

// Len returns the number of real samples.
func (p *PlanReal64) Len() int { return p.p.realTotal }

// SpectrumLen returns the number of packed complex bins.
func (p *PlanReal64) SpectrumLen() int { return p.p.packedTotal }

// Forward computes the packed spectrum of src. The plan must have been
// built with direction Forward.
func (p *PlanReal64) Forward(dst []complex128, src []float64) error {
	return p.p.forward(dst, src)
}

// Inverse recovers the real array from a packed spectrum. The plan must
// have been built with direction Inverse.
func (p *PlanReal64) Inverse(dst []float64, src []complex128) error {
	return p.p.inverse(dst, src)
}

// FullSpectrum expands a packed spectrum into the full Hermitian-symmetric
// complex array of the real shape.
func (p *PlanReal64) FullSpectrum(dst, packed []complex128) error {
	return p.p.fullSpectrum(dst, packed)
}
