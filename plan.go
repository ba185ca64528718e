package fftnd

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-fftnd/internal/cpu"
	"github.com/cwbudde/algo-fftnd/internal/fft"
	"github.com/cwbudde/algo-fftnd/internal/fftypes"
	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// planStep executes one axis of the transform.
type planStep[T Complex] struct {
	axis int
	exec *fft.Axis[T]
}

// Plan is an immutable description of one multidimensional transform:
// shape, direction, scaling convention, and the per-axis radix
// decompositions with their twiddle tables.
//
// A Plan holds no mutable execution state. It may be executed repeatedly and
// concurrently from independent goroutines against independent buffer views;
// only a single BufferView must not be executed upon concurrently with
// itself.
type Plan[T Complex] struct {
	shape    []int
	strides  []int
	dir      Direction
	scale    ScaleMode
	workers  int
	total    int
	logicalN int // product of the transformed axis lengths; scaling base
	steps    []planStep[T]
	lineLen  int
	convLen  int
	features cpu.Features

	scratchPool sync.Pool // of *Scratch[T]
}

// NewPlan builds a complex transform plan for the given shape and direction.
//
// Each axis length is factorized independently; axes of equal length share
// one twiddle table. Axes whose factorization contains a prime larger than
// the direct-butterfly limit fall back to Bluestein's method. By default the
// axes execute last-to-first (row-major friendly); WithAxes overrides the
// set and order.
//
// Returns ErrIncompatibleShape for empty shapes, non-positive axis lengths,
// or element counts that overflow the platform integer range.
func NewPlan[T Complex](shape []int, dir Direction, opts ...PlanOption) (*Plan[T], error) {
	cfg := defaultPlanConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(shape) == 0 {
		return nil, ErrIncompatibleShape
	}

	total, ok := imath.Product(shape)
	if !ok {
		return nil, ErrIncompatibleShape
	}

	if cfg.strides != nil && len(cfg.strides) != len(shape) {
		return nil, ErrInvalidStride
	}

	order, err := axisOrder(len(shape), cfg.axes)
	if err != nil {
		return nil, err
	}

	p := &Plan[T]{
		shape:    append([]int(nil), shape...),
		strides:  cfg.strides,
		dir:      dir,
		scale:    cfg.scale,
		workers:  cfg.workers,
		total:    total,
		logicalN: 1,
		features: cpu.DetectFeatures(),
	}

	if p.strides == nil {
		p.strides = RowMajorStrides(shape)
	}

	var recalled map[int]axisDecomposition

	key := wisdomKey(shape, dir, KindComplex, order)
	if cfg.wisdom {
		if value, found := fft.DefaultWisdom.Lookup(key); found {
			recalled, _ = decodeDecomposition(value)
		}
	}

	byLength := make(map[int]*fft.Axis[T])

	for _, axis := range order {
		n := shape[axis]

		exec, found := byLength[n]
		if !found {
			if d, hit := recalled[axis]; hit {
				exec, err = fft.NewAxisWith[T](n, d.factors, d.method)
				if err != nil {
					// Stale or corrupt wisdom must not fail a valid shape;
					// replan and let the Record below repair the entry.
					exec, err = fft.NewAxis[T](n)
				}
			} else {
				exec, err = fft.NewAxis[T](n)
			}

			if err != nil {
				return nil, err
			}

			byLength[n] = exec
		}

		p.steps = append(p.steps, planStep[T]{axis: axis, exec: exec})
		p.logicalN *= n

		if n > p.lineLen {
			p.lineLen = n
		}

		if cl := exec.ConvLen(); cl > p.convLen {
			p.convLen = cl
		}
	}

	if cfg.wisdom {
		fft.DefaultWisdom.Record(key, encodeDecomposition(p.steps))
	}

	p.scratchPool.New = func() any { return p.NewScratch() }

	return p, nil
}

// NewPlan32 builds a 1-D complex64 plan of length n.
func NewPlan32(n int, dir Direction, opts ...PlanOption) (*Plan[complex64], error) {
	return NewPlan[complex64]([]int{n}, dir, opts...)
}

// NewPlan64 builds a 1-D complex128 plan of length n.
func NewPlan64(n int, dir Direction, opts ...PlanOption) (*Plan[complex128], error) {
	return NewPlan[complex128]([]int{n}, dir, opts...)
}

// Shape returns a copy of the plan's shape.
func (p *Plan[T]) Shape() []int {
	return append([]int(nil), p.shape...)
}

// Len returns the total number of elements the plan transforms.
func (p *Plan[T]) Len() int {
	return p.total
}

// Direction reports the plan's fixed direction.
func (p *Plan[T]) Direction() Direction {
	return p.dir
}

// axisOrder resolves the execution order: the given axes verbatim, or all
// axes last-to-first when none are specified.
func axisOrder(rank int, axes []int) ([]int, error) {
	if axes == nil {
		order := make([]int, rank)
		for i := 0; i < rank; i++ {
			order[i] = rank - 1 - i
		}

		return order, nil
	}

	seen := make(map[int]bool, len(axes))

	for _, a := range axes {
		if a < 0 || a >= rank || seen[a] {
			return nil, ErrIncompatibleShape
		}

		seen[a] = true
	}

	return append([]int(nil), axes...), nil
}

// axisDecomposition is the wisdom-recallable planning result for one axis.
type axisDecomposition struct {
	factors []int
	method  fftypes.Method
}

// wisdomKey builds the opaque cache key for a plan:
// shape, direction, element kind and axis order.
func wisdomKey(shape []int, dir Direction, kind Kind, order []int) string {
	var sb strings.Builder

	for i, d := range shape {
		if i > 0 {
			sb.WriteByte('x')
		}

		sb.WriteString(strconv.Itoa(d))
	}

	sb.WriteByte('|')
	sb.WriteString(dir.String())
	sb.WriteByte('|')
	sb.WriteString(kind.String())
	sb.WriteString("|axes=")

	for i, a := range order {
		if i > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(strconv.Itoa(a))
	}

	return sb.String()
}

// encodeDecomposition serializes per-step decompositions as
// "axis:f1,f2@method;...".
func encodeDecomposition[T Complex](steps []planStep[T]) string {
	var sb strings.Builder

	for i, step := range steps {
		if i > 0 {
			sb.WriteByte(';')
		}

		sb.WriteString(strconv.Itoa(step.axis))
		sb.WriteByte(':')

		for j, f := range step.exec.Factors() {
			if j > 0 {
				sb.WriteByte(',')
			}

			sb.WriteString(strconv.Itoa(f))
		}

		sb.WriteByte('@')
		sb.WriteString(step.exec.Method().String())
	}

	return sb.String()
}

// decodeDecomposition parses the encodeDecomposition format.
func decodeDecomposition(value string) (map[int]axisDecomposition, error) {
	result := make(map[int]axisDecomposition)

	for _, part := range strings.Split(value, ";") {
		if part == "" {
			continue
		}

		axisStr, rest, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("fftnd: malformed wisdom entry %q", part)
		}

		axis, err := strconv.Atoi(axisStr)
		if err != nil {
			return nil, fmt.Errorf("fftnd: malformed wisdom axis %q: %w", axisStr, err)
		}

		factorsStr, methodStr, ok := strings.Cut(rest, "@")
		if !ok {
			return nil, fmt.Errorf("fftnd: malformed wisdom entry %q", part)
		}

		method, ok := fftypes.ParseMethod(methodStr)
		if !ok {
			return nil, fmt.Errorf("fftnd: unknown wisdom method %q", methodStr)
		}

		var factors []int

		if factorsStr != "" {
			for _, fs := range strings.Split(factorsStr, ",") {
				f, err := strconv.Atoi(fs)
				if err != nil {
					return nil, fmt.Errorf("fftnd: malformed wisdom factor %q: %w", fs, err)
				}

				factors = append(factors, f)
			}
		}

		result[axis] = axisDecomposition{factors: factors, method: method}
	}

	return result, nil
}
