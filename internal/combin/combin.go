// Package combin provides exact, overflow-checked integer combinatorics.
package combin

import (
	"math"
	"math/bits"
)

// Binomial returns C(n, k) using exact integer arithmetic.
// C(n, k) is 0 when k < 0, k > n or n < 0. The second result is false if the
// value does not fit in an int.
func Binomial(n, k int) (int, bool) {
	if n < 0 || k < 0 || k > n {
		return 0, true
	}
	k = min(k, n-k)

	// r * (n-k+i) is always divisible by i, so every step stays an exact binomial.
	r := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(r, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		r, _ = bits.Div64(hi, lo, uint64(i))
	}
	if r > math.MaxInt {
		return 0, false
	}
	return int(r), true
}

// Mul returns a*b for non-negative operands, or false on overflow.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// Add returns a+b for non-negative operands, or false on overflow.
func Add(a, b int) (int, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}

// Pow returns base^exp for non-negative operands, or false on overflow.
func Pow(base, exp int) (int, bool) {
	r := 1
	for range exp {
		var ok bool
		if r, ok = Mul(r, base); !ok {
			return 0, false
		}
	}
	return r, true
}
