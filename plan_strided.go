package fftnd

// Transform runs the plan on contiguous row-major slices, following the
// plan's fixed direction.
//
// Returns ErrNilSlice if dst or src is nil and ErrLengthMismatch if either
// slice is shorter than the plan's element count. dst and src may be the
// same slice for an in-place transform.
func (p *Plan[T]) Transform(dst, src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.total || len(src) < p.total {
		return ErrLengthMismatch
	}

	return p.Execute(View(dst[:p.total], p.shape...), View(src[:p.total], p.shape...), nil)
}

// TransformStrided runs a 1-D plan over strided input/output data.
//
// The stride parameter specifies the distance between consecutive elements.
// For example, stride=numCols transforms a matrix column in row-major
// storage.
//
// Returns ErrIncompatibleShape for multidimensional plans, ErrNilSlice if
// dst or src is nil, ErrInvalidStride if stride < 1 or overflows index
// computation, and ErrLengthMismatch if the slices are too short for the
// given stride.
func (p *Plan[T]) TransformStrided(dst, src []T, stride int) error {
	if len(p.shape) != 1 {
		return ErrIncompatibleShape
	}

	if err := p.validateStridedSlices(dst, src, stride); err != nil {
		return err
	}

	return p.Execute(
		StridedView(dst, p.shape, []int{stride}, 0),
		StridedView(src, p.shape, []int{stride}, 0),
		nil,
	)
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	n := p.shape[0]

	maxInt := int(^uint(0) >> 1)
	maxIndex := n - 1

	if maxIndex > 0 && maxIndex > (maxInt-1)/stride {
		return ErrInvalidStride
	}

	required := 1 + maxIndex*stride
	if len(dst) < required || len(src) < required {
		return ErrLengthMismatch
	}

	return nil
}
