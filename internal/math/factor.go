package math

// Factorize decomposes n into an ordered radix sequence whose product is n.
//
// Factors of 4 are extracted first, then 2, 3, 5, 7, then ascending larger
// primes. The ordering maximizes radix-4 butterfly usage and is fully
// deterministic: identical n always yields the identical sequence.
//
// Returns nil for n <= 0. Factorize(1) returns an empty, non-nil slice.
func Factorize(n int) []int {
	if n <= 0 {
		return nil
	}

	factors := make([]int, 0, 8)

	p := 4
	for n > 1 {
		for n%p != 0 {
			switch p {
			case 4:
				p = 2
			case 2:
				p = 3
			default:
				p += 2
			}

			if p > 5 && p*p > n {
				// Remaining n is prime.
				p = n
			}
		}

		factors = append(factors, p)
		n /= p
	}

	return factors
}

// MaxFactor returns the largest radix in a factor sequence, or 0 when empty.
func MaxFactor(factors []int) int {
	maxRadix := 0
	for _, f := range factors {
		if f > maxRadix {
			maxRadix = f
		}
	}

	return maxRadix
}
