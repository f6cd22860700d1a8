package symmetry

import (
	"fmt"

	"github.com/born-ml/symtensor/internal/combin"
)

// Binomial returns C(n, k) using exact integer arithmetic.
// C(n, k) is 0 when k < 0, k > n or n < 0. The second result is false if the
// value does not fit in an int.
func Binomial(n, k int) (int, bool) {
	return combin.Binomial(n, k)
}

// Choose is Binomial for callers that have already bounded n, such as
// generated accessors working within a validated storage size.
// It panics if the result overflows.
func Choose(n, k int) int {
	v, ok := combin.Binomial(n, k)
	if !ok {
		panic(fmt.Sprintf("symmetry: C(%d, %d) overflows int", n, k))
	}
	return v
}
