package fftypes

// Method identifies how a single axis length is executed.
type Method uint8

const (
	// MethodMixedRadix runs iterative Stockham passes over the radix
	// decomposition, including generic O(r²) butterflies for prime radices.
	MethodMixedRadix Method = iota

	// MethodBluestein reduces the axis to a power-of-two convolution.
	// Selected when the factorization contains a prime too large for a
	// direct butterfly.
	MethodBluestein
)

// String returns a human-readable name for the method.
func (m Method) String() string {
	switch m {
	case MethodMixedRadix:
		return "mixed"
	case MethodBluestein:
		return "bluestein"
	default:
		return "unknown"
	}
}

// ParseMethod is the inverse of String. It reports false for unknown names.
func ParseMethod(s string) (Method, bool) {
	switch s {
	case "mixed":
		return MethodMixedRadix, true
	case "bluestein":
		return MethodBluestein, true
	default:
		return 0, false
	}
}
