package verify

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symtensor/internal/parallel"
	"github.com/born-ml/symtensor/internal/symmetry"
)

func TestRank_AllPartitions(t *testing.T) {
	// Blocks and free axes interleave arbitrarily for rank >= 3; every
	// partition up to rank 5 is checked exhaustively.
	for rank := 0; rank <= 5; rank++ {
		for dim := 1; dim <= 4; dim++ {
			t.Run(fmt.Sprintf("R=%d/D=%d", rank, dim), func(t *testing.T) {
				reports, err := Rank(context.Background(), rank, dim, DefaultOptions())
				require.NoError(t, err)

				want, err := symmetry.Count(rank)
				require.NoError(t, err)
				assert.Len(t, reports, want)
			})
		}
	}
}

func TestConfiguration_ScenarioA(t *testing.T) {
	c, err := symmetry.NewConfiguration(2, symmetry.Group{Positions: []int{0, 1}, Kind: symmetry.Antisymmetric})
	require.NoError(t, err)

	r, err := Configuration(context.Background(), c, 3, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Report{Config: "{0,1}A", Dim: 3, Size: 3, Tuples: 9, Zeros: 3}, r)
}

func TestConfiguration_ScenarioB(t *testing.T) {
	c, err := symmetry.NewConfiguration(2, symmetry.Group{Positions: []int{0, 1}, Kind: symmetry.Symmetric})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Parallel = parallel.Sequential()
	r, err := Configuration(context.Background(), c, 3, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Size)
	assert.Zero(t, r.Zeros)
}

func TestConfiguration_Degenerate(t *testing.T) {
	c, err := symmetry.NewConfiguration(3, symmetry.Group{Positions: []int{0, 1, 2}, Kind: symmetry.Antisymmetric})
	require.NoError(t, err)

	r, err := Configuration(context.Background(), c, 2, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, r.Size)
	assert.Equal(t, 8, r.Zeros)
}

func TestConfiguration_SpaceTooLarge(t *testing.T) {
	groups := make([]symmetry.Group, 25)
	for i := range groups {
		groups[i] = symmetry.Group{Positions: []int{i}}
	}
	c, err := symmetry.NewConfiguration(25, groups...)
	require.NoError(t, err)

	_, err = Configuration(context.Background(), c, 2, DefaultOptions())
	assert.ErrorIs(t, err, ErrSpaceTooLarge)
}

func TestConfiguration_Cancelled(t *testing.T) {
	configs, err := symmetry.Enumerate(4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Configuration(ctx, configs[0], 3, DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRank_InvalidInput(t *testing.T) {
	_, err := Rank(context.Background(), -1, 3, DefaultOptions())
	assert.ErrorIs(t, err, symmetry.ErrInvalidRank)

	_, err = Rank(context.Background(), 2, 0, DefaultOptions())
	assert.ErrorIs(t, err, symmetry.ErrInvalidDimension)
}

func TestViolation(t *testing.T) {
	v := &Violation{Err: ErrExchange, Config: "{0,1}S", Dim: 3, Tuple: []int{1, 0}, Details: "detail"}
	assert.Equal(t, "exchange rule violated: {0,1}S D=3 tuple [1 0]: detail", v.Error())
	assert.True(t, errors.Is(v, ErrExchange))

	v = &Violation{Err: ErrNotSurjective, Config: "{0}", Dim: 2, Details: "slot 1 of 2"}
	assert.Equal(t, "storage slot never addressed: {0} D=2: slot 1 of 2", v.Error())
}

func TestDecode(t *testing.T) {
	assert.Equal(t, []int{1, 0, 2}, decode(11, 3, 3))
	assert.Equal(t, []int{}, decode(0, 0, 3))
}
