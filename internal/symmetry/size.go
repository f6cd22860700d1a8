package symmetry

import (
	"fmt"

	"github.com/born-ml/symtensor/internal/combin"
)

// SymmetricCount returns C(D+g-1, g), the number of weakly increasing
// length-g sequences over [0, D).
func SymmetricCount(dim, g int) (int, error) {
	return binomialCount(dim+g-1, g)
}

// AntisymmetricCount returns C(D, g), the number of strictly increasing
// length-g sequences over [0, D). It is 0 when g > D.
func AntisymmetricCount(dim, g int) (int, error) {
	return binomialCount(dim, g)
}

// FreeCount returns the number of values of one free axis, which is D.
func FreeCount(dim int) int {
	return dim
}

// GroupCount returns the number of independent value tuples of one group.
func GroupCount(dim int, g Group) (int, error) {
	switch g.Kind {
	case Symmetric:
		return SymmetricCount(dim, g.Size())
	case Antisymmetric:
		return AntisymmetricCount(dim, g.Size())
	default:
		return FreeCount(dim), nil
	}
}

// TotalSize returns the number of algebraically independent components of a
// tensor with the given configuration and dimension. This is the length of
// the compact backing store.
//
// A zero result is valid: it means an antisymmetric block is larger than the
// dimension and every component is identically zero.
func TotalSize(c Configuration, dim int) (int, error) {
	if dim < 1 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	_, size, err := radices(c, dim)
	return size, err
}

// radices returns the per-group counts in discovery order and their product.
func radices(c Configuration, dim int) ([]int, int, error) {
	rs := make([]int, len(c.groups))
	size := 1
	for i, g := range c.groups {
		r, err := GroupCount(dim, g)
		if err != nil {
			return nil, 0, err
		}
		rs[i] = r
		var ok bool
		if size, ok = combin.Mul(size, r); !ok {
			return nil, 0, fmt.Errorf("%w: configuration %s with dimension %d", ErrSizeOverflow, c, dim)
		}
	}
	return rs, size, nil
}

func binomialCount(n, k int) (int, error) {
	v, ok := Binomial(n, k)
	if !ok {
		return 0, fmt.Errorf("%w: C(%d, %d)", ErrSizeOverflow, n, k)
	}
	return v, nil
}
