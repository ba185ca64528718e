package fft

import (
	imath "github.com/cwbudde/algo-fftnd/internal/math"
)

// The mixed-radix executor runs one decimation-in-frequency Stockham pass per
// radix factor. A pass operates on s interleaved sub-transforms of current
// length n = r*m, reading src and writing dst in full; the autosort indexing
// leaves the final stage output in natural order, so no digit-reversal
// permutation is needed. src and dst must not alias.
//
// Twiddle factors come from the full-length axis table w (n*s entries),
// where the pass needs W_n^(p*v) = w[p*v*s] and the radix roots
// W_r^j = w[j*m*s]. Inverse transforms conjugate every table access.

// stagePass dispatches one radix pass to the matching butterfly kernel.
// radix is scratch for passAny, 2*r entries or more; undersized scratch
// falls back to allocation.
func stagePass[T Complex](dst, src, w, radix []T, n, s, r int, inverse bool) {
	switch r {
	case 2:
		pass2(dst, src, w, n/2, s, inverse)
	case 3:
		pass3(dst, src, w, n/3, s, inverse)
	case 4:
		pass4(dst, src, w, n/4, s, inverse)
	case 5:
		pass5(dst, src, w, n/5, s, inverse)
	default:
		passAny(dst, src, w, radix, n, s, r, inverse)
	}
}

func twiddleAt[T Complex](w []T, idx int, inverse bool) T {
	if inverse {
		return imath.Conj(w[idx])
	}

	return w[idx]
}

func pass2[T Complex](dst, src, w []T, m, s int, inverse bool) {
	for p := 0; p < m; p++ {
		wp := twiddleAt(w, p*s, inverse)

		a0 := s * p
		a1 := s * (p + m)
		d0 := 2 * s * p

		for q := 0; q < s; q++ {
			a := src[a0+q]
			b := src[a1+q]
			dst[d0+q] = a + b
			dst[d0+s+q] = (a - b) * wp
		}
	}
}

func pass3[T Complex](dst, src, w []T, m, s int, inverse bool) {
	// Primitive cube root; its square is its conjugate.
	w3 := twiddleAt(w, s*m, inverse)
	w3c := imath.Conj(w3)

	for p := 0; p < m; p++ {
		tw1 := twiddleAt(w, p*s, inverse)
		tw2 := twiddleAt(w, 2*p*s, inverse)

		a0 := s * p
		a1 := s * (p + m)
		a2 := s * (p + 2*m)
		d0 := 3 * s * p

		for q := 0; q < s; q++ {
			c0 := src[a0+q]
			c1 := src[a1+q]
			c2 := src[a2+q]

			dst[d0+q] = c0 + c1 + c2
			dst[d0+s+q] = (c0 + w3*c1 + w3c*c2) * tw1
			dst[d0+2*s+q] = (c0 + w3c*c1 + w3*c2) * tw2
		}
	}
}

func pass4[T Complex](dst, src, w []T, m, s int, inverse bool) {
	// rot is -i for forward transforms, +i for inverse.
	rot := twiddleAt(w, s*m, inverse)

	for p := 0; p < m; p++ {
		tw1 := twiddleAt(w, p*s, inverse)
		tw2 := twiddleAt(w, 2*p*s, inverse)
		tw3 := twiddleAt(w, 3*p*s, inverse)

		a0 := s * p
		a1 := s * (p + m)
		a2 := s * (p + 2*m)
		a3 := s * (p + 3*m)
		d0 := 4 * s * p

		for q := 0; q < s; q++ {
			c0 := src[a0+q]
			c1 := src[a1+q]
			c2 := src[a2+q]
			c3 := src[a3+q]

			t0 := c0 + c2
			t1 := c0 - c2
			t2 := c1 + c3
			t3 := (c1 - c3) * rot

			dst[d0+q] = t0 + t2
			dst[d0+s+q] = (t1 + t3) * tw1
			dst[d0+2*s+q] = (t0 - t2) * tw2
			dst[d0+3*s+q] = (t1 - t3) * tw3
		}
	}
}

func pass5[T Complex](dst, src, w []T, m, s int, inverse bool) {
	w51 := twiddleAt(w, s*m, inverse)
	w52 := twiddleAt(w, 2*s*m, inverse)
	w53 := imath.Conj(w52)
	w54 := imath.Conj(w51)

	for p := 0; p < m; p++ {
		tw1 := twiddleAt(w, p*s, inverse)
		tw2 := twiddleAt(w, 2*p*s, inverse)
		tw3 := twiddleAt(w, 3*p*s, inverse)
		tw4 := twiddleAt(w, 4*p*s, inverse)

		a0 := s * p
		a1 := s * (p + m)
		a2 := s * (p + 2*m)
		a3 := s * (p + 3*m)
		a4 := s * (p + 4*m)
		d0 := 5 * s * p

		for q := 0; q < s; q++ {
			c0 := src[a0+q]
			c1 := src[a1+q]
			c2 := src[a2+q]
			c3 := src[a3+q]
			c4 := src[a4+q]

			dst[d0+q] = c0 + c1 + c2 + c3 + c4
			dst[d0+s+q] = (c0 + w51*c1 + w52*c2 + w53*c3 + w54*c4) * tw1
			dst[d0+2*s+q] = (c0 + w52*c1 + w54*c2 + w51*c3 + w53*c4) * tw2
			dst[d0+3*s+q] = (c0 + w53*c1 + w51*c2 + w54*c3 + w52*c4) * tw3
			dst[d0+4*s+q] = (c0 + w54*c1 + w53*c2 + w52*c3 + w51*c4) * tw4
		}
	}
}

// passAny handles an arbitrary radix with a direct O(r²) butterfly.
// Used for prime radices up to maxDirectRadix.
func passAny[T Complex](dst, src, w, radix []T, n, s, r int, inverse bool) {
	m := n / r

	var wr, c []T
	if len(radix) >= 2*r {
		wr = radix[:r]
		c = radix[r : 2*r]
	} else {
		wr = make([]T, r)
		c = make([]T, r)
	}

	// Radix roots W_r^j, pulled from the full table.
	for j := 0; j < r; j++ {
		wr[j] = twiddleAt(w, j*s*m, inverse)
	}

	for p := 0; p < m; p++ {
		d0 := r * s * p

		for q := 0; q < s; q++ {
			for u := 0; u < r; u++ {
				c[u] = src[s*(p+u*m)+q]
			}

			for v := 0; v < r; v++ {
				acc := c[0]
				jv := 0

				for u := 1; u < r; u++ {
					jv += v
					if jv >= r {
						jv -= r
					}

					acc += c[u] * wr[jv]
				}

				if v > 0 {
					acc *= twiddleAt(w, p*v*s, inverse)
				}

				dst[d0+v*s+q] = acc
			}
		}
	}
}
