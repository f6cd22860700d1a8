package symmetry

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// partitionKey identifies the set partition of a configuration, ignoring kinds.
func partitionKey(c Configuration) string {
	var sb strings.Builder
	for _, g := range c.groups {
		fmt.Fprintf(&sb, "%v", g.Positions)
	}
	return sb.String()
}

func TestEnumerate_Counts(t *testing.T) {
	bell := []int{1, 1, 2, 5, 15, 52, 203}
	total := []int{1, 1, 3, 9, 35, 153, 755}

	for rank := 0; rank <= 6; rank++ {
		t.Run(fmt.Sprintf("rank=%d", rank), func(t *testing.T) {
			configs, err := Enumerate(rank)
			require.NoError(t, err)
			assert.Len(t, configs, total[rank])

			count, err := Count(rank)
			require.NoError(t, err)
			assert.Equal(t, total[rank], count)

			// Each partition appears with exactly 2^(blocks) sign assignments.
			perPartition := make(map[string]int)
			blocks := make(map[string]int)
			for _, c := range configs {
				key := partitionKey(c)
				perPartition[key]++
				blocks[key] = c.NumBlocks()
			}
			assert.Len(t, perPartition, bell[rank])
			for key, n := range perPartition {
				assert.Equal(t, 1<<blocks[key], n, "partition %s", key)
			}
		})
	}
}

func TestEnumerate_Order(t *testing.T) {
	configs, err := Enumerate(3)
	require.NoError(t, err)

	got := make([]string, len(configs))
	for i, c := range configs {
		got[i] = c.String()
	}
	assert.Equal(t, []string{
		"{0,1,2}A",
		"{0,1,2}S",
		"{0,1}A {2}",
		"{0,1}S {2}",
		"{0,2}A {1}",
		"{0,2}S {1}",
		"{0} {1,2}A",
		"{0} {1,2}S",
		"{0} {1} {2}",
	}, got)
}

func TestEnumerate_SignCounterOrder(t *testing.T) {
	var got []string
	for c := range All(4) {
		if partitionKey(c) == "[0 1][2 3]" {
			got = append(got, c.String())
		}
	}
	assert.Equal(t, []string{
		"{0,1}A {2,3}A",
		"{0,1}S {2,3}A",
		"{0,1}A {2,3}S",
		"{0,1}S {2,3}S",
	}, got)
}

func TestEnumerate_SmallRanks(t *testing.T) {
	for _, rank := range []int{0, 1} {
		configs, err := Enumerate(rank)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, 0, configs[0].NumBlocks())
		assert.Equal(t, rank, configs[0].NumFree())
	}
}

func TestEnumerate_InvalidRank(t *testing.T) {
	_, err := Enumerate(-1)
	assert.ErrorIs(t, err, ErrInvalidRank)

	_, err = Count(-3)
	assert.ErrorIs(t, err, ErrInvalidRank)

	n := 0
	for range All(-1) {
		n++
	}
	assert.Zero(t, n)
}

func TestEnumerate_Deterministic(t *testing.T) {
	a, err := Enumerate(5)
	require.NoError(t, err)
	b, err := Enumerate(5)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.True(t, a[i].Equal(b[i]), "index %d: %s vs %s", i, a[i], b[i])
		assert.Equal(t, a[i].String(), b[i].String())
	}
}

func TestEnumerate_ValidConfigurations(t *testing.T) {
	for rank := 0; rank <= 6; rank++ {
		for c := range All(rank) {
			_, err := NewConfiguration(rank, c.Groups()...)
			assert.NoError(t, err, "enumerated configuration %s", c)
		}
	}
}

func TestAll_EarlyStop(t *testing.T) {
	n := 0
	for range All(6) {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

func TestCount_LargeRank(t *testing.T) {
	_, err := Count(200)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}
