// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package symmetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symtensor/symmetry"
)

func TestFacade_Describe(t *testing.T) {
	configs, err := symmetry.Enumerate(3)
	require.NoError(t, err)

	n, err := symmetry.Count(3)
	require.NoError(t, err)
	assert.Len(t, configs, n)

	d := symmetry.Describe(configs[2]) // {0,1}A {2}
	assert.Equal(t, []symmetry.BlockDescription{{Positions: []int{0, 1}, Kind: symmetry.Antisymmetric}}, d.Blocks)
	assert.Equal(t, []int{2}, d.FreeAxes)
}

func TestFacade_RankAndProgramAgree(t *testing.T) {
	for c := range symmetry.All(3) {
		p := symmetry.RankExpression(c)
		for _, tuple := range [][]int{{0, 1, 2}, {2, 1, 0}, {1, 1, 2}, {2, 2, 2}} {
			want, err := symmetry.Rank(c, 3, tuple...)
			require.NoError(t, err)
			got, err := p.Eval(3, tuple...)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s %v", c, tuple)
		}
	}
}

func TestFacade_Helpers(t *testing.T) {
	assert.Equal(t, symmetry.Slot(4, symmetry.Negative), symmetry.DecodeOffset(-5))
	assert.True(t, symmetry.Zero.IsZero())
	assert.Equal(t, 10, symmetry.Choose(5, 2))

	v, ok := symmetry.Binomial(5, 3)
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	vals := []int{0, 2, 1}
	flip, zero := symmetry.Canonicalize(vals, symmetry.Antisymmetric)
	assert.False(t, zero)
	assert.False(t, flip)
	assert.Equal(t, []int{2, 1, 0}, vals)

	assert.ErrorIs(t, symmetry.CheckIndices(3, 0, 3), symmetry.ErrIndexOutOfRange)
	assert.Panics(t, func() { symmetry.Choose(200, 100) })

	c, err := symmetry.NewConfiguration(2, symmetry.Group{Positions: []int{0, 1}, Kind: symmetry.Symmetric})
	require.NoError(t, err)
	size, err := symmetry.TotalSize(c, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, size)
}
