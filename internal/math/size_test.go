package math

import "testing"

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 1024, 1 << 30} {
		if !IsPowerOf2(n) {
			t.Fatalf("IsPowerOf2(%d) = false", n)
		}
	}

	for _, n := range []int{0, -1, 3, 6, 12, 1023} {
		if IsPowerOf2(n) {
			t.Fatalf("IsPowerOf2(%d) = true", n)
		}
	}
}

func TestNextPowerOf2(t *testing.T) {
	t.Parallel()

	cases := [][2]int{{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {17, 32}, {1024, 1024}, {1025, 2048}}
	for _, tc := range cases {
		if got := NextPowerOf2(tc[0]); got != tc[1] {
			t.Fatalf("NextPowerOf2(%d) = %d, want %d", tc[0], got, tc[1])
		}
	}
}

func TestProduct(t *testing.T) {
	t.Parallel()

	if total, ok := Product([]int{4, 6, 8}); !ok || total != 192 {
		t.Fatalf("Product = %d, %v", total, ok)
	}

	if total, ok := Product(nil); !ok || total != 1 {
		t.Fatalf("Product(nil) = %d, %v", total, ok)
	}

	if _, ok := Product([]int{4, 0}); ok {
		t.Fatal("Product accepted a zero dim")
	}

	if _, ok := Product([]int{int(^uint(0) >> 1), 2}); ok {
		t.Fatal("Product accepted an overflowing shape")
	}
}
