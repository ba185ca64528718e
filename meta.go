package fftnd

// AxisDecomposition reports how one axis of a plan executes.
type AxisDecomposition struct {
	// Axis is the axis index within the plan's shape.
	Axis int

	// Length is the axis extent.
	Length int

	// Factors is the ordered radix sequence; its product equals Length.
	Factors []int

	// Method names the execution method ("mixed" or "bluestein").
	Method string
}

// PlanMeta is a snapshot of a plan's immutable configuration, useful for
// diagnostics and benchmarking harnesses.
type PlanMeta struct {
	Shape     []int
	Strides   []int
	Direction Direction
	Kind      Kind
	Scale     ScaleMode
	Workers   int

	// Axes lists the per-axis decompositions in execution order.
	Axes []AxisDecomposition

	// CPU summarizes the detected processor features at plan build time.
	CPU string
}

// Meta returns the plan's configuration snapshot.
func (p *Plan[T]) Meta() PlanMeta {
	axes := make([]AxisDecomposition, 0, len(p.steps))

	for _, step := range p.steps {
		axes = append(axes, AxisDecomposition{
			Axis:    step.axis,
			Length:  step.exec.Len(),
			Factors: step.exec.Factors(),
			Method:  step.exec.Method().String(),
		})
	}

	return PlanMeta{
		Shape:     append([]int(nil), p.shape...),
		Strides:   append([]int(nil), p.strides...),
		Direction: p.dir,
		Kind:      KindComplex,
		Scale:     p.scale,
		Workers:   p.workers,
		Axes:      axes,
		CPU:       p.features.String(),
	}
}
