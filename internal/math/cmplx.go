package math

import "math"

// FromFloat64 creates a complex number of type T from float64 components.
func FromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

// Conj returns the complex conjugate of val.
func Conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}

// Parts returns the real and imaginary components of val as float64.
func Parts[T Complex](val T) (re, im float64) {
	switch v := any(val).(type) {
	case complex64:
		return float64(real(v)), float64(imag(v))
	case complex128:
		return real(v), imag(v)
	default:
		panic("unsupported complex type")
	}
}

// Abs returns the magnitude of val as float64.
func Abs[T Complex](val T) float64 {
	switch v := any(val).(type) {
	case complex64:
		re, im := float64(real(v)), float64(imag(v))
		return math.Hypot(re, im)
	case complex128:
		return math.Hypot(real(v), imag(v))
	default:
		panic("unsupported complex type")
	}
}
