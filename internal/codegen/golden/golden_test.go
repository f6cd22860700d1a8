package golden

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symtensor/internal/codegen"
	"github.com/born-ml/symtensor/internal/symmetry"
)

// tensor adapts a generated type to slice-based indices.
type tensor struct {
	len func() int
	at  func(i []int) (float64, error)
	set func(v float64, i []int) error
}

type entry struct {
	name   string
	size   func(dim int) int
	offset func(dim int, i []int) int
	alloc  func(dim int) tensor
}

type rank0 interface {
	Len() int
	At() (float64, error)
	Set(v float64) error
}

type rank1 interface {
	Len() int
	At(i0 int) (float64, error)
	Set(v float64, i0 int) error
}

type rank2 interface {
	Len() int
	At(i0, i1 int) (float64, error)
	Set(v float64, i0, i1 int) error
}

type rank3 interface {
	Len() int
	At(i0, i1, i2 int) (float64, error)
	Set(v float64, i0, i1, i2 int) error
}

type rank4 interface {
	Len() int
	At(i0, i1, i2, i3 int) (float64, error)
	Set(v float64, i0, i1, i2, i3 int) error
}

func wrap0(t rank0) tensor {
	return tensor{
		len: t.Len,
		at:  func([]int) (float64, error) { return t.At() },
		set: func(v float64, _ []int) error { return t.Set(v) },
	}
}

func wrap1(t rank1) tensor {
	return tensor{
		len: t.Len,
		at:  func(i []int) (float64, error) { return t.At(i[0]) },
		set: func(v float64, i []int) error { return t.Set(v, i[0]) },
	}
}

func wrap2(t rank2) tensor {
	return tensor{
		len: t.Len,
		at:  func(i []int) (float64, error) { return t.At(i[0], i[1]) },
		set: func(v float64, i []int) error { return t.Set(v, i[0], i[1]) },
	}
}

func wrap3(t rank3) tensor {
	return tensor{
		len: t.Len,
		at:  func(i []int) (float64, error) { return t.At(i[0], i[1], i[2]) },
		set: func(v float64, i []int) error { return t.Set(v, i[0], i[1], i[2]) },
	}
}

func wrap4(t rank4) tensor {
	return tensor{
		len: t.Len,
		at:  func(i []int) (float64, error) { return t.At(i[0], i[1], i[2], i[3]) },
		set: func(v float64, i []int) error { return t.Set(v, i[0], i[1], i[2], i[3]) },
	}
}

// generated lists the checked-in types per rank in enumeration order.
var generated = [][]entry{
	{
		{"Tensor0", Tensor0Size, func(d int, i []int) int { return Tensor0Offset(d) }, func(d int) tensor { return wrap0(NewTensor0[float64](d)) }},
	},
	{
		{"Tensor1F0", Tensor1F0Size, func(d int, i []int) int { return Tensor1F0Offset(d, i[0]) }, func(d int) tensor { return wrap1(NewTensor1F0[float64](d)) }},
	},
	{
		{"Tensor2A01", Tensor2A01Size, func(d int, i []int) int { return Tensor2A01Offset(d, i[0], i[1]) }, func(d int) tensor { return wrap2(NewTensor2A01[float64](d)) }},
		{"Tensor2S01", Tensor2S01Size, func(d int, i []int) int { return Tensor2S01Offset(d, i[0], i[1]) }, func(d int) tensor { return wrap2(NewTensor2S01[float64](d)) }},
		{"Tensor2F0F1", Tensor2F0F1Size, func(d int, i []int) int { return Tensor2F0F1Offset(d, i[0], i[1]) }, func(d int) tensor { return wrap2(NewTensor2F0F1[float64](d)) }},
	},
	{
		{"Tensor3A012", Tensor3A012Size, func(d int, i []int) int { return Tensor3A012Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3A012[float64](d)) }},
		{"Tensor3S012", Tensor3S012Size, func(d int, i []int) int { return Tensor3S012Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3S012[float64](d)) }},
		{"Tensor3A01F2", Tensor3A01F2Size, func(d int, i []int) int { return Tensor3A01F2Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3A01F2[float64](d)) }},
		{"Tensor3S01F2", Tensor3S01F2Size, func(d int, i []int) int { return Tensor3S01F2Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3S01F2[float64](d)) }},
		{"Tensor3A02F1", Tensor3A02F1Size, func(d int, i []int) int { return Tensor3A02F1Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3A02F1[float64](d)) }},
		{"Tensor3S02F1", Tensor3S02F1Size, func(d int, i []int) int { return Tensor3S02F1Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3S02F1[float64](d)) }},
		{"Tensor3F0A12", Tensor3F0A12Size, func(d int, i []int) int { return Tensor3F0A12Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3F0A12[float64](d)) }},
		{"Tensor3F0S12", Tensor3F0S12Size, func(d int, i []int) int { return Tensor3F0S12Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3F0S12[float64](d)) }},
		{"Tensor3F0F1F2", Tensor3F0F1F2Size, func(d int, i []int) int { return Tensor3F0F1F2Offset(d, i[0], i[1], i[2]) }, func(d int) tensor { return wrap3(NewTensor3F0F1F2[float64](d)) }},
	},
	{
		{"Tensor4A0123", Tensor4A0123Size, func(d int, i []int) int { return Tensor4A0123Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A0123[float64](d)) }},
		{"Tensor4S0123", Tensor4S0123Size, func(d int, i []int) int { return Tensor4S0123Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S0123[float64](d)) }},
		{"Tensor4A012F3", Tensor4A012F3Size, func(d int, i []int) int { return Tensor4A012F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A012F3[float64](d)) }},
		{"Tensor4S012F3", Tensor4S012F3Size, func(d int, i []int) int { return Tensor4S012F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S012F3[float64](d)) }},
		{"Tensor4A013F2", Tensor4A013F2Size, func(d int, i []int) int { return Tensor4A013F2Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A013F2[float64](d)) }},
		{"Tensor4S013F2", Tensor4S013F2Size, func(d int, i []int) int { return Tensor4S013F2Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S013F2[float64](d)) }},
		{"Tensor4A01A23", Tensor4A01A23Size, func(d int, i []int) int { return Tensor4A01A23Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A01A23[float64](d)) }},
		{"Tensor4S01A23", Tensor4S01A23Size, func(d int, i []int) int { return Tensor4S01A23Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S01A23[float64](d)) }},
		{"Tensor4A01S23", Tensor4A01S23Size, func(d int, i []int) int { return Tensor4A01S23Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A01S23[float64](d)) }},
		{"Tensor4S01S23", Tensor4S01S23Size, func(d int, i []int) int { return Tensor4S01S23Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S01S23[float64](d)) }},
		{"Tensor4A01F2F3", Tensor4A01F2F3Size, func(d int, i []int) int { return Tensor4A01F2F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A01F2F3[float64](d)) }},
		{"Tensor4S01F2F3", Tensor4S01F2F3Size, func(d int, i []int) int { return Tensor4S01F2F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S01F2F3[float64](d)) }},
		{"Tensor4A023F1", Tensor4A023F1Size, func(d int, i []int) int { return Tensor4A023F1Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A023F1[float64](d)) }},
		{"Tensor4S023F1", Tensor4S023F1Size, func(d int, i []int) int { return Tensor4S023F1Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S023F1[float64](d)) }},
		{"Tensor4A02A13", Tensor4A02A13Size, func(d int, i []int) int { return Tensor4A02A13Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A02A13[float64](d)) }},
		{"Tensor4S02A13", Tensor4S02A13Size, func(d int, i []int) int { return Tensor4S02A13Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S02A13[float64](d)) }},
		{"Tensor4A02S13", Tensor4A02S13Size, func(d int, i []int) int { return Tensor4A02S13Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A02S13[float64](d)) }},
		{"Tensor4S02S13", Tensor4S02S13Size, func(d int, i []int) int { return Tensor4S02S13Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S02S13[float64](d)) }},
		{"Tensor4A02F1F3", Tensor4A02F1F3Size, func(d int, i []int) int { return Tensor4A02F1F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A02F1F3[float64](d)) }},
		{"Tensor4S02F1F3", Tensor4S02F1F3Size, func(d int, i []int) int { return Tensor4S02F1F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S02F1F3[float64](d)) }},
		{"Tensor4A03A12", Tensor4A03A12Size, func(d int, i []int) int { return Tensor4A03A12Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A03A12[float64](d)) }},
		{"Tensor4S03A12", Tensor4S03A12Size, func(d int, i []int) int { return Tensor4S03A12Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S03A12[float64](d)) }},
		{"Tensor4A03S12", Tensor4A03S12Size, func(d int, i []int) int { return Tensor4A03S12Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A03S12[float64](d)) }},
		{"Tensor4S03S12", Tensor4S03S12Size, func(d int, i []int) int { return Tensor4S03S12Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S03S12[float64](d)) }},
		{"Tensor4F0A123", Tensor4F0A123Size, func(d int, i []int) int { return Tensor4F0A123Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0A123[float64](d)) }},
		{"Tensor4F0S123", Tensor4F0S123Size, func(d int, i []int) int { return Tensor4F0S123Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0S123[float64](d)) }},
		{"Tensor4F0A12F3", Tensor4F0A12F3Size, func(d int, i []int) int { return Tensor4F0A12F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0A12F3[float64](d)) }},
		{"Tensor4F0S12F3", Tensor4F0S12F3Size, func(d int, i []int) int { return Tensor4F0S12F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0S12F3[float64](d)) }},
		{"Tensor4A03F1F2", Tensor4A03F1F2Size, func(d int, i []int) int { return Tensor4A03F1F2Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4A03F1F2[float64](d)) }},
		{"Tensor4S03F1F2", Tensor4S03F1F2Size, func(d int, i []int) int { return Tensor4S03F1F2Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4S03F1F2[float64](d)) }},
		{"Tensor4F0A13F2", Tensor4F0A13F2Size, func(d int, i []int) int { return Tensor4F0A13F2Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0A13F2[float64](d)) }},
		{"Tensor4F0S13F2", Tensor4F0S13F2Size, func(d int, i []int) int { return Tensor4F0S13F2Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0S13F2[float64](d)) }},
		{"Tensor4F0F1A23", Tensor4F0F1A23Size, func(d int, i []int) int { return Tensor4F0F1A23Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0F1A23[float64](d)) }},
		{"Tensor4F0F1S23", Tensor4F0F1S23Size, func(d int, i []int) int { return Tensor4F0F1S23Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0F1S23[float64](d)) }},
		{"Tensor4F0F1F2F3", Tensor4F0F1F2F3Size, func(d int, i []int) int { return Tensor4F0F1F2F3Offset(d, i[0], i[1], i[2], i[3]) }, func(d int) tensor { return wrap4(NewTensor4F0F1F2F3[float64](d)) }},
	},
}

// forEachTuple calls fn for every tuple in [0, dim)^rank in row-major order.
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

func TestGenerated_Names(t *testing.T) {
	for rank, entries := range generated {
		configs, err := symmetry.Enumerate(rank)
		require.NoError(t, err)
		require.Len(t, entries, len(configs), "rank %d", rank)
		for i, c := range configs {
			assert.Equal(t, codegen.TypeName(c), entries[i].name, "rank %d configuration %s", rank, c)
		}
	}
}

func TestGenerated_MatchesLayout(t *testing.T) {
	for rank, entries := range generated {
		configs, err := symmetry.Enumerate(rank)
		require.NoError(t, err)
		require.Len(t, entries, len(configs))

		for i, c := range configs {
			e := entries[i]
			t.Run(e.name, func(t *testing.T) {
				for dim := 1; dim <= 3; dim++ {
					l, err := symmetry.NewLayout(c, dim)
					require.NoError(t, err)
					assert.Equal(t, l.Size(), e.size(dim), "dim %d", dim)

					tn := e.alloc(dim)
					require.Equal(t, l.Size(), tn.len(), "dim %d", dim)

					forEachTuple(rank, dim, func(tuple []int) {
						at := fmt.Sprintf("dim %d tuple %v", dim, tuple)
						want, err := l.Rank(tuple...)
						require.NoError(t, err, at)

						off := e.offset(dim, tuple)
						assert.Equal(t, want.Encode(), off, at)

						err = tn.set(7, tuple)
						got, atErr := tn.at(tuple)
						require.NoError(t, atErr, at)
						if off == 0 {
							assert.ErrorIs(t, err, symmetry.ErrZeroSlot, at)
							assert.Zero(t, got, at)
							return
						}
						require.NoError(t, err, at)
						assert.Equal(t, 7.0, got, at)
					})
				}
			})
		}
	}
}

func TestGenerated_IndexOutOfRange(t *testing.T) {
	for rank := 1; rank < len(generated); rank++ {
		for _, e := range generated[rank] {
			tn := e.alloc(2)
			tuple := make([]int, rank)
			tuple[rank-1] = 2

			_, err := tn.at(tuple)
			assert.ErrorIs(t, err, symmetry.ErrIndexOutOfRange, e.name)
			err = tn.set(1, tuple)
			assert.ErrorIs(t, err, symmetry.ErrIndexOutOfRange, e.name)

			tuple[rank-1] = -1
			_, err = tn.at(tuple)
			assert.ErrorIs(t, err, symmetry.ErrIndexOutOfRange, e.name)
		}
	}
}
