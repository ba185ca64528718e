package fftnd

import "github.com/cwbudde/algo-fftnd/internal/fft"

// Scratch is the reusable temporary storage for one execution of a plan:
// line buffers sized to the largest axis extent, plus Bluestein convolution
// buffers when the plan needs them, one set per worker.
//
// A Scratch must never be shared between simultaneous executions. For
// repeated calls, allocating one Scratch with Plan.NewScratch and passing it
// to every Execute avoids per-call allocation; passing nil lets the plan
// draw one from an internal pool.
type Scratch[T Complex] struct {
	workers []*fft.Workspace[T]
}

// NewScratch allocates a scratch workspace correctly sized for the plan,
// including one buffer set per configured worker.
func (p *Plan[T]) NewScratch() *Scratch[T] {
	count := max(p.workers, 1)

	workers := make([]*fft.Workspace[T], count)
	for i := range workers {
		workers[i] = fft.NewWorkspace[T](p.lineLen, p.convLen)
	}

	return &Scratch[T]{workers: workers}
}

// fits reports whether the scratch can serve the plan.
func (s *Scratch[T]) fits(p *Plan[T]) bool {
	if len(s.workers) < max(p.workers, 1) {
		return false
	}

	for _, ws := range s.workers {
		if !ws.Fits(p.lineLen, p.convLen) {
			return false
		}
	}

	return true
}
