package gpu

import (
	"math/cmplx"
	"testing"
)

func TestMockBackendForwardInverse(t *testing.T) {
	RegisterMockBackend()

	plan, err := NewPlan[complex64]([]int{4, 8}, PlanOptions{})
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	defer func() { _ = plan.Close() }()

	if plan.Len() != 32 {
		t.Fatalf("Len = %d, want 32", plan.Len())
	}

	src := make([]complex64, 32)
	src[0] = 1

	dst := make([]complex64, 32)
	if err := plan.Forward(dst, src); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	// An impulse transforms to a flat spectrum.
	for i, v := range dst {
		if cmplx.Abs(complex128(v)-1) > 1e-5 {
			t.Fatalf("spectrum[%d] = %v, want 1", i, v)
		}
	}

	out := make([]complex64, 32)
	if err := plan.Inverse(out, dst); err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	for i, v := range out {
		if cmplx.Abs(complex128(v)-complex128(src[i])) > 1e-5 {
			t.Fatalf("roundtrip[%d] = %v, want %v", i, v, src[i])
		}
	}
}

func TestMockBackendBuffers(t *testing.T) {
	RegisterMockBackend()

	ctx, err := NewMockBackend().NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	defer func() { _ = ctx.Close() }()

	buf, err := ctx.NewBuffer(8, PrecisionComplex128)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}

	host := []complex128{1, 2, 3, 4, 5, 6, 7, 8}
	if err := buf.Upload(host); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	got := make([]complex128, 8)
	if err := buf.Download(got); err != nil {
		t.Fatalf("Download: %v", err)
	}

	for i := range host {
		if got[i] != host[i] {
			t.Fatalf("element %d: got %v want %v", i, got[i], host[i])
		}
	}

	if err := buf.Upload([]complex64{1}); err == nil {
		t.Fatal("Upload accepted mismatched precision")
	}
}

func TestNewPlanWithoutBackend(t *testing.T) {
	RegisterBackend(nil)
	defer RegisterMockBackend()

	if _, err := NewPlan[complex128]([]int{8}, PlanOptions{}); err != ErrNoBackend {
		t.Fatalf("error = %v, want ErrNoBackend", err)
	}

	RegisterMockBackend()

	if _, err := NewPlan[complex128](nil, PlanOptions{}); err != ErrInvalidShape {
		t.Fatalf("error = %v, want ErrInvalidShape", err)
	}

	if _, err := NewPlan[complex128]([]int{0}, PlanOptions{}); err != ErrInvalidShape {
		t.Fatalf("error = %v, want ErrInvalidShape", err)
	}
}
