package fftnd

import (
	"math"

	"github.com/cwbudde/algo-fftnd/internal/fftypes"
)

// Complex is a type constraint for complex number types supported by the
// transforms. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type constraint for floating-point types used in real FFT
// operations. The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Direction selects between the forward and inverse transform. It is fixed
// when a plan is built and every execution of that plan follows it.
type Direction int

const (
	// Forward computes X[k] = Σ x[j]·exp(-2πi·jk/N) along every axis.
	Forward Direction = iota

	// Inverse computes the conjugate-kernel transform, scaled according to
	// the plan's ScaleMode.
	Inverse
)

// String returns "forward" or "inverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Kind describes the element kind a plan operates on.
type Kind int

const (
	// KindComplex is a fully complex transform.
	KindComplex Kind = iota

	// KindRealPacked is a real-input transform whose last axis stores only
	// the ⌊n/2⌋+1 non-redundant complex bins (Hermitian symmetry).
	KindRealPacked
)

// String returns "complex" or "real-packed".
func (k Kind) String() string {
	switch k {
	case KindComplex:
		return "complex"
	case KindRealPacked:
		return "real-packed"
	default:
		return "unknown"
	}
}

// ScaleMode fixes the normalization convention for a plan. The convention is
// observable by callers, so it is part of the plan, stated once and applied
// exactly once per execution.
type ScaleMode int

const (
	// ScaleInverse applies 1/N on inverse plans only (default). A forward
	// execution followed by an inverse execution reproduces the input.
	ScaleInverse ScaleMode = iota

	// ScaleUnitary applies 1/√N in both directions, making the transform
	// norm-preserving.
	ScaleUnitary

	// ScaleNone applies no scaling; a forward+inverse round trip yields the
	// input multiplied by N.
	ScaleNone
)

// String returns the convention name.
func (s ScaleMode) String() string {
	switch s {
	case ScaleInverse:
		return "1/n-on-inverse"
	case ScaleUnitary:
		return "unitary"
	case ScaleNone:
		return "none"
	default:
		return "unknown"
	}
}

// scaleFactor returns the multiplier applied once at the end of an execution
// over total elements.
func scaleFactor(total int, dir Direction, mode ScaleMode) float64 {
	switch mode {
	case ScaleInverse:
		if dir == Inverse {
			return 1.0 / float64(total)
		}

		return 1
	case ScaleUnitary:
		return 1.0 / math.Sqrt(float64(total))
	default:
		return 1
	}
}
