package gpu

import (
	"fmt"

	fftnd "github.com/cwbudde/algo-fftnd"
)

// MockBackend is a CPU-backed GPU backend for development and tests.
// It satisfies the GPU backend interfaces but executes on the CPU.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockGPU",
			Vendor:     "fftnd",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: "cpu",
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock GPU backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewBuffer(elemCount int, precision PrecisionKind) (Buffer, error) {
	if elemCount < 0 {
		return nil, ErrInvalidShape
	}
	switch precision {
	case PrecisionComplex64:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			data64:    make([]complex64, elemCount),
		}, nil
	case PrecisionComplex128:
		return &mockBuffer{
			precision: precision,
			len:       elemCount,
			data128:   make([]complex128, elemCount),
		}, nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) NewStream() (Stream, error) {
	return &mockStream{}, nil
}

func (c *mockContext) NewFFTPlan(shape []int, precision PrecisionKind, _ PlanOptions) (PlanImpl, error) {
	if len(shape) == 0 {
		return nil, ErrInvalidShape
	}
	switch precision {
	case PrecisionComplex64:
		return newMockPlan[complex64](shape)
	case PrecisionComplex128:
		return newMockPlan[complex128](shape)
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) Close() error {
	return nil
}

type mockBuffer struct {
	precision PrecisionKind
	len       int
	data64    []complex64
	data128   []complex128
}

func (b *mockBuffer) Len() int {
	return b.len
}

func (b *mockBuffer) Precision() PrecisionKind {
	return b.precision
}

func (b *mockBuffer) Upload(src any) error {
	switch b.precision {
	case PrecisionComplex64:
		data, ok := src.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.data64, data[:b.len])
		return nil
	case PrecisionComplex128:
		data, ok := src.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(b.data128, data[:b.len])
		return nil
	default:
		return ErrNotImplemented
	}
}

func (b *mockBuffer) Download(dst any) error {
	switch b.precision {
	case PrecisionComplex64:
		data, ok := dst.([]complex64)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.data64)
		return nil
	case PrecisionComplex128:
		data, ok := dst.([]complex128)
		if !ok {
			return ErrNotImplemented
		}
		if len(data) < b.len {
			return ErrLengthMismatch
		}
		copy(data[:b.len], b.data128)
		return nil
	default:
		return ErrNotImplemented
	}
}

func (b *mockBuffer) Close() error {
	b.data64 = nil
	b.data128 = nil
	b.len = 0
	return nil
}

type mockStream struct{}

func (s *mockStream) Synchronize() error { return nil }
func (s *mockStream) Close() error       { return nil }

// mockPlan pairs a forward and an inverse CPU plan over the same shape,
// since CPU plan direction is fixed at build time.
type mockPlan[T Complex] struct {
	shape   []int
	forward *fftnd.Plan[T]
	inverse *fftnd.Plan[T]
}

func newMockPlan[T Complex](shape []int) (*mockPlan[T], error) {
	fwd, err := fftnd.NewPlan[T](shape, fftnd.Forward)
	if err != nil {
		return nil, err
	}
	inv, err := fftnd.NewPlan[T](shape, fftnd.Inverse)
	if err != nil {
		return nil, err
	}
	return &mockPlan[T]{
		shape:   append([]int(nil), shape...),
		forward: fwd,
		inverse: inv,
	}, nil
}

func (p *mockPlan[T]) Shape() []int {
	return append([]int(nil), p.shape...)
}

func (p *mockPlan[T]) Len() int {
	return p.forward.Len()
}

func (p *mockPlan[T]) Precision() PrecisionKind {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return PrecisionComplex128
	}
	return PrecisionComplex64
}

func (p *mockPlan[T]) Forward(dst, src any) error {
	out, ok := dst.([]T)
	if !ok {
		return ErrNotImplemented
	}
	in, ok := src.([]T)
	if !ok {
		return ErrNotImplemented
	}
	return p.forward.Transform(out, in)
}

func (p *mockPlan[T]) Inverse(dst, src any) error {
	out, ok := dst.([]T)
	if !ok {
		return ErrNotImplemented
	}
	in, ok := src.([]T)
	if !ok {
		return ErrNotImplemented
	}
	return p.inverse.Transform(out, in)
}

func (p *mockPlan[T]) Close() error {
	p.forward = nil
	p.inverse = nil
	return nil
}
