package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage_Antisymmetric(t *testing.T) {
	c := mustConfig(t, 2, Group{Positions: []int{0, 1}, Kind: Antisymmetric})
	s := NewStorage[float64](mustLayout(t, c, 3))
	require.Equal(t, 3, s.Len())

	require.NoError(t, s.Set(5, 0, 1))
	v, err := s.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	v, err = s.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)

	err = s.Set(1, 2, 2)
	assert.ErrorIs(t, err, ErrZeroSlot)

	v, err = s.At(2, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	require.NoError(t, s.Set(7, 2, 1))
	dense, err := s.Dense()
	require.NoError(t, err)
	assert.Equal(t, []float64{
		0, 5, 0,
		-5, 0, -7,
		0, 7, 0,
	}, dense)
}

func TestStorage_Symmetric(t *testing.T) {
	c := mustConfig(t, 3,
		Group{Positions: []int{0, 2}, Kind: Symmetric},
		Group{Positions: []int{1}},
	)
	s := NewStorage[int32](mustLayout(t, c, 2))
	require.Equal(t, 6, s.Len())

	require.NoError(t, s.Set(9, 0, 1, 1))
	v, err := s.At(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(9), v)

	dense, err := s.Dense()
	require.NoError(t, err)
	require.Len(t, dense, 8)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				assert.Equal(t, dense[(i*2+j)*2+k], dense[(k*2+j)*2+i])
			}
		}
	}
}

func TestStorage_Errors(t *testing.T) {
	c := mustConfig(t, 1, Group{Positions: []int{0}})
	s := NewStorage[complex128](mustLayout(t, c, 2))

	_, err := s.At(0, 0)
	assert.ErrorIs(t, err, ErrTupleLength)

	err = s.Set(1, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Len(t, s.Data(), 2)
	assert.Equal(t, 2, s.Layout().Dim())
}

func TestStorage_DenseOverflow(t *testing.T) {
	// 4^40 overflows int while the compact store holds C(43,40) elements.
	positions := make([]int, 40)
	for i := range positions {
		positions[i] = i
	}
	c := mustConfig(t, 40, Group{Positions: positions, Kind: Symmetric})
	s := NewStorage[float32](mustLayout(t, c, 4))
	require.Equal(t, 12341, s.Len())

	_, err := s.Dense()
	assert.ErrorIs(t, err, ErrSizeOverflow)
}
