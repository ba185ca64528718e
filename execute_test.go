package fftnd

import (
	"math/cmplx"
	"math/rand"
	"sync"
	"testing"

	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// naiveDFT1D is the O(n²) reference transform for one line.
func naiveDFT1D(src []complex128, inverse bool) []complex128 {
	n := len(src)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	dst := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128

		for j := 0; j < n; j++ {
			angle := sign * imath.TwoPi * float64(j) * float64(k) / float64(n)
			sum += src[j] * cmplx.Exp(complex(0, angle))
		}

		dst[k] = sum
	}

	return dst
}

// naiveDFT2D transforms rows then columns of a row-major r×c array.
func naiveDFT2D(src []complex128, rows, cols int, inverse bool) []complex128 {
	out := append([]complex128(nil), src...)

	for r := 0; r < rows; r++ {
		line := naiveDFT1D(out[r*cols:(r+1)*cols], inverse)
		copy(out[r*cols:(r+1)*cols], line)
	}

	col := make([]complex128, rows)

	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			col[r] = out[r*cols+c]
		}

		line := naiveDFT1D(col, inverse)

		for r := 0; r < rows; r++ {
			out[r*cols+c] = line[r]
		}
	}

	return out
}

func TestTransformKnownLength4(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan64(4, Forward)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}

	dst := make([]complex128, 4)

	if err := plan.Transform(dst, []complex128{1, 1, 1, 1}); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	assertApproxSlice128(t, dst, []complex128{4, 0, 0, 0}, 1e-12, "constant input")

	if err := plan.Transform(dst, []complex128{1, 0, 0, 0}); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	assertApproxSlice128(t, dst, []complex128{1, 1, 1, 1}, 1e-12, "unit impulse")
}

func TestTransform2DMatchesNaive(t *testing.T) {
	t.Parallel()

	const (
		rows = 5
		cols = 12
	)

	rnd := rand.New(rand.NewSource(21))
	src := randomSignal128(rnd, rows*cols)

	plan, err := NewPlan[complex128]([]int{rows, cols}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	dst := make([]complex128, rows*cols)
	if err := plan.Transform(dst, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	want := naiveDFT2D(src, rows, cols, false)
	assertApproxSlice128(t, dst, want, 1e-9*float64(rows*cols), "2-D forward")
}

func TestTransformRoundTrip(t *testing.T) {
	t.Parallel()

	shapes := [][]int{
		{8},
		{97},
		{4, 6},
		{3, 5, 7},
		{2, 37, 4},
		{16, 16, 16},
	}

	rnd := rand.New(rand.NewSource(22))

	for _, shape := range shapes {
		fwd, err := NewPlan[complex128](shape, Forward)
		if err != nil {
			t.Fatalf("NewPlan(%v, Forward): %v", shape, err)
		}

		inv, err := NewPlan[complex128](shape, Inverse)
		if err != nil {
			t.Fatalf("NewPlan(%v, Inverse): %v", shape, err)
		}

		src := randomSignal128(rnd, fwd.Len())
		freq := make([]complex128, fwd.Len())
		back := make([]complex128, fwd.Len())

		if err := fwd.Transform(freq, src); err != nil {
			t.Fatalf("forward(%v): %v", shape, err)
		}

		if err := inv.Transform(back, freq); err != nil {
			t.Fatalf("inverse(%v): %v", shape, err)
		}

		assertApproxSlice128(t, back, src, 1e-9*float64(fwd.Len()), "roundtrip")
	}
}

func TestExecuteInPlace(t *testing.T) {
	t.Parallel()

	const n = 64

	rnd := rand.New(rand.NewSource(23))
	src := randomSignal128(rnd, n)

	plan, err := NewPlan[complex128]([]int{8, 8}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	want := make([]complex128, n)
	if err := plan.Transform(want, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	data := append([]complex128(nil), src...)
	view := View(data, 8, 8)

	if err := plan.Execute(view, view, nil); err != nil {
		t.Fatalf("Execute in-place: %v", err)
	}

	assertApproxSlice128(t, data, want, 1e-10*n, "in-place")
}

func TestExecutePartialOverlapRejected(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[complex128]([]int{8}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	data := make([]complex128, 16)

	src := View(data[:8], 8)
	dst := View(data[4:12], 8)

	if err := plan.Execute(dst, src, nil); err != ErrAliasedBuffers {
		t.Fatalf("Execute error = %v, want ErrAliasedBuffers", err)
	}
}

func TestExecuteShapeMismatch(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan[complex128]([]int{4, 4}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	good := make([]complex128, 16)
	bad := make([]complex128, 12)

	if err := plan.Execute(View(good, 4, 4), View(bad, 4, 3), nil); err != ErrIncompatibleShape {
		t.Fatalf("Execute error = %v, want ErrIncompatibleShape", err)
	}

	if err := plan.Execute(View(good, 4, 4), View(bad, 4, 4), nil); err != ErrBufferTooSmall {
		t.Fatalf("Execute error = %v, want ErrBufferTooSmall", err)
	}

	var nilView BufferView[complex128]

	if err := plan.Execute(View(good, 4, 4), nilView, nil); err != ErrNilSlice {
		t.Fatalf("Execute error = %v, want ErrNilSlice", err)
	}
}

func TestExecuteScratchTooSmall(t *testing.T) {
	t.Parallel()

	small, err := NewPlan[complex128]([]int{4}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	big, err := NewPlan[complex128]([]int{64}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	scratch := small.NewScratch()

	data := make([]complex128, 64)
	out := make([]complex128, 64)

	if err := big.Execute(View(out, 64), View(data, 64), scratch); err != ErrBufferTooSmall {
		t.Fatalf("Execute error = %v, want ErrBufferTooSmall", err)
	}
}

func TestExecuteStridedView(t *testing.T) {
	t.Parallel()

	const (
		rows = 4
		cols = 6
		pad  = 3
	)

	rnd := rand.New(rand.NewSource(24))

	plan, err := NewPlan[complex128]([]int{rows, cols}, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	contig := randomSignal128(rnd, rows*cols)

	want := make([]complex128, rows*cols)
	if err := plan.Transform(want, contig); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	// Same array embedded in a padded buffer with a wider row pitch.
	pitch := cols + pad
	padded := make([]complex128, rows*pitch)

	for r := 0; r < rows; r++ {
		copy(padded[r*pitch:r*pitch+cols], contig[r*cols:(r+1)*cols])
	}

	out := make([]complex128, rows*pitch)

	srcView := StridedView(padded, []int{rows, cols}, []int{pitch, 1}, 0)
	dstView := StridedView(out, []int{rows, cols}, []int{pitch, 1}, 0)

	if err := plan.Execute(dstView, srcView, nil); err != nil {
		t.Fatalf("Execute strided: %v", err)
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assertApproxComplex128(t, out[r*pitch+c], want[r*cols+c], 1e-10*float64(rows*cols),
				"strided[%d,%d]", r, c)
		}
	}
}

func TestExecuteWorkersMatchSingleThreaded(t *testing.T) {
	t.Parallel()

	shape := []int{16, 32}

	rnd := rand.New(rand.NewSource(25))
	src := randomSignal128(rnd, 16*32)

	serial, err := NewPlan[complex128](shape, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	parallel, err := NewPlan[complex128](shape, Forward, WithWorkers(4))
	if err != nil {
		t.Fatalf("NewPlan workers: %v", err)
	}

	want := make([]complex128, len(src))
	if err := serial.Transform(want, src); err != nil {
		t.Fatalf("serial Transform: %v", err)
	}

	got := make([]complex128, len(src))
	if err := parallel.Transform(got, src); err != nil {
		t.Fatalf("parallel Transform: %v", err)
	}

	// Same decomposition and twiddles, so results are bit-identical.
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d: parallel %v, serial %v", i, got[i], want[i])
		}
	}
}

func TestExecuteConcurrentUse(t *testing.T) {
	t.Parallel()

	shape := []int{8, 15}

	plan, err := NewPlan[complex128](shape, Forward)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	rnd := rand.New(rand.NewSource(26))
	src := randomSignal128(rnd, plan.Len())

	want := make([]complex128, plan.Len())
	if err := plan.Transform(want, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	const goroutines = 8

	var wg sync.WaitGroup

	errs := make([]error, goroutines)
	results := make([][]complex128, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)

		go func(g int) {
			defer wg.Done()

			dst := make([]complex128, plan.Len())
			scratch := plan.NewScratch()

			for i := 0; i < 10; i++ {
				if err := plan.Execute(View(dst, shape...), View(src, shape...), scratch); err != nil {
					errs[g] = err
					return
				}
			}

			results[g] = dst
		}(g)
	}

	wg.Wait()

	for g := 0; g < goroutines; g++ {
		if errs[g] != nil {
			t.Fatalf("goroutine %d: %v", g, errs[g])
		}

		assertApproxSlice128(t, results[g], want, 1e-12, "concurrent result")
	}
}

func TestExecuteAxesSubset(t *testing.T) {
	t.Parallel()

	const (
		rows = 6
		cols = 10
	)

	rnd := rand.New(rand.NewSource(27))
	src := randomSignal128(rnd, rows*cols)

	// Transform only the rows (axis 1): every row independently.
	plan, err := NewPlan[complex128]([]int{rows, cols}, Forward, WithAxes(1))
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	got := make([]complex128, rows*cols)
	if err := plan.Transform(got, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	for r := 0; r < rows; r++ {
		want := naiveDFT1D(src[r*cols:(r+1)*cols], false)
		assertApproxSlice128(t, got[r*cols:(r+1)*cols], want, 1e-10*cols, "row transform")
	}
}

func TestTransformNoAxes(t *testing.T) {
	t.Parallel()

	const (
		rows = 3
		cols = 5
	)

	rnd := rand.New(rand.NewSource(29))
	src := randomSignal128(rnd, rows*cols)

	// An explicit empty axis set transforms nothing.
	plan, err := NewPlan[complex128]([]int{rows, cols}, Forward, WithAxes())
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	got := make([]complex128, rows*cols)
	if err := plan.Transform(got, src); err != nil {
		t.Fatalf("Transform: %v", err)
	}

	assertApproxSlice128(t, got, src, 0, "identity copy")

	// In place it must leave the data untouched.
	inPlace := append([]complex128(nil), src...)
	view := View(inPlace, rows, cols)

	if err := plan.Execute(view, view, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	assertApproxSlice128(t, inPlace, src, 0, "in-place identity")
}

func TestScaleModes(t *testing.T) {
	t.Parallel()

	const n = 16

	rnd := rand.New(rand.NewSource(28))
	src := randomSignal128(rnd, n)

	t.Run("unitary round trip", func(t *testing.T) {
		t.Parallel()

		fwd, err := NewPlan[complex128]([]int{n}, Forward, WithScaleMode(ScaleUnitary))
		if err != nil {
			t.Fatalf("NewPlan: %v", err)
		}

		inv, err := NewPlan[complex128]([]int{n}, Inverse, WithScaleMode(ScaleUnitary))
		if err != nil {
			t.Fatalf("NewPlan: %v", err)
		}

		freq := make([]complex128, n)
		back := make([]complex128, n)

		if err := fwd.Transform(freq, src); err != nil {
			t.Fatalf("forward: %v", err)
		}

		// Unitary scaling preserves the signal energy.
		var inEnergy, outEnergy float64
		for i := range src {
			inEnergy += real(src[i])*real(src[i]) + imag(src[i])*imag(src[i])
			outEnergy += real(freq[i])*real(freq[i]) + imag(freq[i])*imag(freq[i])
		}

		if diff := inEnergy - outEnergy; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("energy not preserved: in=%v out=%v", inEnergy, outEnergy)
		}

		if err := inv.Transform(back, freq); err != nil {
			t.Fatalf("inverse: %v", err)
		}

		assertApproxSlice128(t, back, src, 1e-11*n, "unitary roundtrip")
	})

	t.Run("none gains n", func(t *testing.T) {
		t.Parallel()

		fwd, err := NewPlan[complex128]([]int{n}, Forward, WithScaleMode(ScaleNone))
		if err != nil {
			t.Fatalf("NewPlan: %v", err)
		}

		inv, err := NewPlan[complex128]([]int{n}, Inverse, WithScaleMode(ScaleNone))
		if err != nil {
			t.Fatalf("NewPlan: %v", err)
		}

		freq := make([]complex128, n)
		back := make([]complex128, n)

		if err := fwd.Transform(freq, src); err != nil {
			t.Fatalf("forward: %v", err)
		}

		if err := inv.Transform(back, freq); err != nil {
			t.Fatalf("inverse: %v", err)
		}

		want := make([]complex128, n)
		for i := range want {
			want[i] = src[i] * n
		}

		assertApproxSlice128(t, back, want, 1e-10*n, "unscaled roundtrip")
	})
}
