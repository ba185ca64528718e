package fftnd

// PlanOption configures plan construction.
type PlanOption func(*planConfig)

type planConfig struct {
	strides []int
	scale   ScaleMode
	workers int
	axes    []int
	wisdom  bool
}

func defaultPlanConfig() planConfig {
	return planConfig{
		scale:   ScaleInverse,
		workers: 1,
		wisdom:  true,
	}
}

// WithStrides records the expected element strides of the buffers this plan
// will run against. The strides are a planning hint recorded in the plan's
// metadata; execution always adapts to the strides of the actual views.
func WithStrides(strides []int) PlanOption {
	return func(c *planConfig) {
		c.strides = append([]int(nil), strides...)
	}
}

// WithScaleMode fixes the normalization convention for the plan.
// The default is ScaleInverse.
func WithScaleMode(mode ScaleMode) PlanOption {
	return func(c *planConfig) {
		c.scale = mode
	}
}

// WithWorkers distributes the per-line iteration of each axis pass across n
// goroutines, each with a private scratch buffer. Values below 2 keep
// execution single-threaded.
func WithWorkers(n int) PlanOption {
	return func(c *planConfig) {
		if n < 1 {
			n = 1
		}

		c.workers = n
	}
}

// WithAxes restricts the transform to the given axes, in execution order
// last-to-first. All axes are transformed by default. Calling WithAxes with
// no arguments builds a plan that transforms no axes; executing it copies
// the input to the output unchanged.
func WithAxes(axes ...int) PlanOption {
	return func(c *planConfig) {
		c.axes = append(make([]int, 0, len(axes)), axes...)
	}
}

// WithoutWisdom disables consulting and updating the process-wide wisdom
// cache for this plan.
func WithoutWisdom() PlanOption {
	return func(c *planConfig) {
		c.wisdom = false
	}
}
