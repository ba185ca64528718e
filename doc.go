// Package fftnd provides multidimensional discrete Fourier transforms over
// strided buffers, with mixed-radix decomposition and Bluestein fallback for
// arbitrary lengths.
//
// A transform is described by an immutable [Plan]: shape, direction, element
// kind and scaling convention are fixed when the plan is built, and the plan
// precomputes one radix decomposition and twiddle table per distinct axis
// length. Plans are reusable and safe for concurrent execution against
// independent buffers; all per-execution state lives in a [Scratch].
//
//	plan, err := fftnd.NewPlan[complex128]([]int{64, 48}, fftnd.Forward)
//	if err != nil {
//	    // handle
//	}
//	err = plan.Execute(fftnd.View(dst, 64, 48), fftnd.View(src, 64, 48), nil)
//
// Transforms are unnormalized inside the executor; the plan's [ScaleMode]
// decides the observable convention. The default, [ScaleInverse], applies
// 1/N on inverse plans only, so a forward plan followed by an inverse plan
// reproduces the input. [ScaleUnitary] applies 1/√N in both directions.
//
// Real-input transforms ([PlanReal32], [PlanReal64]) store only the
// non-redundant half spectrum: a real last axis of length n packs into
// ⌊n/2⌋+1 complex bins, with the remaining bins recoverable through
// Hermitian symmetry via FullSpectrum.
package fftnd
