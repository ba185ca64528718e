package fftnd

import (
	"sort"
	"unsafe"
)

// BufferView references caller-owned memory together with the shape and
// strides describing how the multidimensional array is laid out in it.
//
// A view never owns the underlying storage and must stay valid for the
// duration of any execution it is passed to. Strides are measured in
// elements and may be negative or non-contiguous, as long as all valid index
// combinations map to distinct in-bounds offsets.
type BufferView[T Complex] struct {
	Data    []T
	Shape   []int
	Strides []int
	Offset  int
}

// View wraps data as a contiguous row-major array of the given shape.
func View[T Complex](data []T, shape ...int) BufferView[T] {
	return BufferView[T]{
		Data:    data,
		Shape:   append([]int(nil), shape...),
		Strides: RowMajorStrides(shape),
	}
}

// StridedView wraps data with an explicit layout.
func StridedView[T Complex](data []T, shape, strides []int, offset int) BufferView[T] {
	return BufferView[T]{
		Data:    data,
		Shape:   append([]int(nil), shape...),
		Strides: append([]int(nil), strides...),
		Offset:  offset,
	}
}

// RowMajorStrides returns the contiguous row-major (C order) strides for
// shape: the last axis has stride 1.
func RowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))

	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

// extent returns the inclusive range [lo, hi] of element offsets the view
// can address.
func (v BufferView[T]) extent() (lo, hi int) {
	lo, hi = v.Offset, v.Offset

	for i, d := range v.Shape {
		span := (d - 1) * v.Strides[i]
		if span >= 0 {
			hi += span
		} else {
			lo += span
		}
	}

	return lo, hi
}

// validate checks the view against the plan shape: data presence, shape
// match, stride sanity (distinct offsets for distinct indices), and bounds.
func (v BufferView[T]) validate(shape []int) error {
	if v.Data == nil {
		return ErrNilSlice
	}

	if len(v.Shape) != len(shape) || len(v.Strides) != len(shape) {
		return ErrIncompatibleShape
	}

	for i, d := range shape {
		if v.Shape[i] != d {
			return ErrIncompatibleShape
		}
	}

	if !stridesDisjoint(v.Shape, v.Strides) {
		return ErrIncompatibleShape
	}

	lo, hi := v.extent()
	if lo < 0 || hi >= len(v.Data) {
		return ErrBufferTooSmall
	}

	return nil
}

// stridesDisjoint reports whether the layout is guaranteed to map distinct
// index tuples to distinct offsets. Axes are sorted by absolute stride and
// each stride must clear the span addressable by the smaller ones. The check
// is sufficient, not exact; exotic but valid layouts that fail it are
// rejected rather than risking element aliasing.
func stridesDisjoint(shape, strides []int) bool {
	type axis struct{ abs, extent int }

	axes := make([]axis, 0, len(shape))

	for i, d := range shape {
		if d == 1 {
			// Stride is never applied more than zero times.
			continue
		}

		abs := strides[i]
		if abs < 0 {
			abs = -abs
		}

		if abs == 0 {
			return false
		}

		axes = append(axes, axis{abs: abs, extent: d})
	}

	sort.Slice(axes, func(i, j int) bool { return axes[i].abs < axes[j].abs })

	span := 0
	for _, a := range axes {
		if a.abs <= span {
			return false
		}

		span += (a.extent - 1) * a.abs
	}

	return true
}

// aliasing classifies the memory relationship between two validated views.
func aliasing[T Complex](a, b BufferView[T]) (overlap, identical bool) {
	if len(a.Data) == 0 || len(b.Data) == 0 {
		return false, false
	}

	elemSize := unsafe.Sizeof(a.Data[0])

	aBase := uintptr(unsafe.Pointer(unsafe.SliceData(a.Data)))
	bBase := uintptr(unsafe.Pointer(unsafe.SliceData(b.Data)))

	aLo, aHi := a.extent()
	bLo, bHi := b.extent()

	aStart := aBase + uintptr(aLo)*elemSize
	aEnd := aBase + uintptr(aHi+1)*elemSize
	bStart := bBase + uintptr(bLo)*elemSize
	bEnd := bBase + uintptr(bHi+1)*elemSize

	if aEnd <= bStart || bEnd <= aStart {
		return false, false
	}

	identical = aBase+uintptr(a.Offset)*elemSize == bBase+uintptr(b.Offset)*elemSize &&
		equalInts(a.Strides, b.Strides) && equalInts(a.Shape, b.Shape)

	return true, identical
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
