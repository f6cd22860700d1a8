package symmetry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// forEachTuple calls fn with every tuple of [0,dim)^rank in row-major order.
// The slice is reused between calls.
func forEachTuple(rank, dim int, fn func(tuple []int)) {
	tuple := make([]int, rank)
	for {
		fn(tuple)
		i := rank - 1
		for ; i >= 0; i-- {
			tuple[i]++
			if tuple[i] < dim {
				break
			}
			tuple[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// hasAntisymmetricRepeat reports whether an antisymmetric block of c sees a
// repeated value in tuple.
func hasAntisymmetricRepeat(c Configuration, tuple []int) bool {
	for _, g := range c.groups {
		if g.Kind != Antisymmetric {
			continue
		}
		seen := make(map[int]bool)
		for _, p := range g.Positions {
			if seen[tuple[p]] {
				return true
			}
			seen[tuple[p]] = true
		}
	}
	return false
}

func mustLayout(t *testing.T, c Configuration, dim int) *Layout {
	t.Helper()
	l, err := NewLayout(c, dim)
	require.NoError(t, err, "layout %s dim %d", c, dim)
	return l
}

func mustConfig(t *testing.T, rank int, groups ...Group) Configuration {
	t.Helper()
	c, err := NewConfiguration(rank, groups...)
	require.NoError(t, err)
	return c
}

func caseName(c Configuration, dim int) string {
	return fmt.Sprintf("%s/D=%d", c, dim)
}
