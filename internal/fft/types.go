package fft

import "github.com/cwbudde/algo-fftnd/internal/fftypes"

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// Float is a type alias for the float constraint.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float
