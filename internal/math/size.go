package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOf2 returns the smallest power of two >= n.
// n must be positive and representable; the result is 1 for n <= 1.
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Product computes the product of dims, reporting ok=false on integer
// overflow or when any dim is non-positive.
func Product(dims []int) (total int, ok bool) {
	total = 1
	for _, d := range dims {
		if d <= 0 {
			return 0, false
		}

		if total > int(^uint(0)>>1)/d {
			return 0, false
		}

		total *= d
	}

	return total, true
}
