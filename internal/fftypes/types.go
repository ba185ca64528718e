package fftypes

// Complex is the type constraint for complex element types supported by the
// transform engine.
type Complex interface {
	complex64 | complex128
}

// Float is the type constraint for real element types used by real-input
// transforms.
type Float interface {
	float32 | float64
}
