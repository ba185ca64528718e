package fftnd

import (
	"sync"

	"github.com/cwbudde/algo-fftnd/internal/fft"
)

// minLinesPerWorker keeps the goroutine fan-out from dominating small
// transforms.
const minLinesPerWorker = 4

// Execute runs the plan against concrete buffer views.
//
// dst and src must match the plan's shape. They may be the same view for an
// in-place transform; any other overlap returns ErrAliasedBuffers. scratch
// may be nil, in which case a pooled workspace is used. On error the output
// buffer contents are unspecified but never outside its declared bounds.
func (p *Plan[T]) Execute(dst, src BufferView[T], scratch *Scratch[T]) error {
	if err := src.validate(p.shape); err != nil {
		return err
	}

	if err := dst.validate(p.shape); err != nil {
		return err
	}

	overlap, identical := aliasing(dst, src)
	if overlap && !identical {
		return ErrAliasedBuffers
	}

	if scratch == nil {
		pooled := p.scratchPool.Get().(*Scratch[T])
		defer p.scratchPool.Put(pooled)

		scratch = pooled
	} else if !scratch.fits(p) {
		return ErrBufferTooSmall
	}

	if len(p.steps) == 0 && !identical {
		p.copyView(dst, src)
	}

	cur := src
	inverse := p.dir == Inverse

	for _, step := range p.steps {
		p.runAxis(dst, cur, step, scratch, inverse)
		cur = dst
	}

	p.applyScale(dst)

	return nil
}

// runAxis transforms every line along step.axis, gathering each strided line
// into contiguous scratch, executing the axis kernel, and scattering back.
// The per-line iteration has no cross-line dependencies and is fanned out
// across workers when the plan asks for it.
func (p *Plan[T]) runAxis(dst, src BufferView[T], step planStep[T], scratch *Scratch[T], inverse bool) {
	n := p.shape[step.axis]
	lines := p.total / n

	workers := min(p.workers, len(scratch.workers))
	if workers > lines/minLinesPerWorker {
		workers = max(lines/minLinesPerWorker, 1)
	}

	if workers <= 1 {
		p.runLines(dst, src, step, scratch.workers[0], inverse, 0, lines)
		return
	}

	var wg sync.WaitGroup

	chunk := (lines + workers - 1) / workers

	for w := 0; w < workers; w++ {
		first := w * chunk
		last := min(first+chunk, lines)

		if first >= last {
			break
		}

		wg.Add(1)

		go func(ws *fft.Workspace[T], first, last int) {
			defer wg.Done()
			p.runLines(dst, src, step, ws, inverse, first, last)
		}(scratch.workers[w], first, last)
	}

	wg.Wait()
}

func (p *Plan[T]) runLines(dst, src BufferView[T], step planStep[T], ws *fft.Workspace[T], inverse bool, first, last int) {
	n := p.shape[step.axis]
	sStride := src.Strides[step.axis]
	dStride := dst.Strides[step.axis]

	in := ws.In[:n]
	out := ws.Out[:n]

	for line := first; line < last; line++ {
		sBase, dBase := p.lineBases(dst, src, step.axis, line)

		idx := sBase
		for i := range in {
			in[i] = src.Data[idx]
			idx += sStride
		}

		if inverse {
			step.exec.Inverse(out, in, ws)
		} else {
			step.exec.Forward(out, in, ws)
		}

		idx = dBase
		for i := range out {
			dst.Data[idx] = out[i]
			idx += dStride
		}
	}
}

// lineBases decodes a line ordinal into base offsets by walking the
// non-target axes as an odometer, last axis fastest.
func (p *Plan[T]) lineBases(dst, src BufferView[T], axis, line int) (sBase, dBase int) {
	sBase = src.Offset
	dBase = dst.Offset

	rem := line

	for j := len(p.shape) - 1; j >= 0; j-- {
		if j == axis {
			continue
		}

		d := p.shape[j]
		idx := rem % d
		rem /= d

		sBase += idx * src.Strides[j]
		dBase += idx * dst.Strides[j]
	}

	return sBase, dBase
}

// copyView copies src into dst line by line along the last axis. It is only
// needed when a plan transforms no axes at all.
func (p *Plan[T]) copyView(dst, src BufferView[T]) {
	last := len(p.shape) - 1
	n := p.shape[last]
	lines := p.total / n

	for line := 0; line < lines; line++ {
		sBase := src.Offset
		dBase := dst.Offset
		rem := line

		for j := len(p.shape) - 2; j >= 0; j-- {
			d := p.shape[j]
			idx := rem % d
			rem /= d

			sBase += idx * src.Strides[j]
			dBase += idx * dst.Strides[j]
		}

		sIdx, dIdx := sBase, dBase
		for i := 0; i < n; i++ {
			dst.Data[dIdx] = src.Data[sIdx]
			sIdx += src.Strides[last]
			dIdx += dst.Strides[last]
		}
	}
}

// applyScale applies the plan's normalization convention once, walking the
// view line by line along the last axis.
func (p *Plan[T]) applyScale(dst BufferView[T]) {
	factor := scaleFactor(p.logicalN, p.dir, p.scale)
	if factor == 1 {
		return
	}

	last := len(p.shape) - 1
	n := p.shape[last]
	stride := dst.Strides[last]
	lines := p.total / n

	for line := 0; line < lines; line++ {
		base := dst.Offset
		rem := line

		for j := len(p.shape) - 2; j >= 0; j-- {
			d := p.shape[j]
			base += (rem % d) * dst.Strides[j]
			rem /= d
		}

		fft.ScaleStridedInPlace(dst.Data, base, stride, n, factor)
	}
}
