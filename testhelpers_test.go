package fftnd

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared helpers used across the package tests.

func assertApproxComplex128(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxSlice128(t *testing.T, got, want []complex128, tol float64, label string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", label, len(got), len(want))
	}

	for i := range want {
		assertApproxComplex128(t, got[i], want[i], tol, "%s[%d]", label, i)
	}
}

func assertApproxFloat64s(t *testing.T, got, want []float64, tol float64, label string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", label, len(got), len(want))
	}

	for i := range want {
		diff := got[i] - want[i]
		if diff < 0 {
			diff = -diff
		}

		if diff > tol {
			t.Fatalf("%s[%d]: got %v want %v", label, i, got[i], want[i])
		}
	}
}

func randomSignal128(rnd *rand.Rand, n int) []complex128 {
	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}

	return data
}

func randomFloat64s(rnd *rand.Rand, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = rnd.Float64()*2 - 1
	}

	return data
}
