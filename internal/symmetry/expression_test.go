package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symtensor/internal/expr"
)

func TestSizeExpression_Strings(t *testing.T) {
	tests := []struct {
		name   string
		rank   int
		groups []Group
		want   string
	}{
		{"scalar", 0, nil, "1"},
		{"free axes", 3, []Group{{Positions: []int{0}}, {Positions: []int{1}}, {Positions: []int{2}}}, "D * D * D"},
		{"antisymmetric pair and free", 3, []Group{
			{Positions: []int{0, 1}, Kind: Antisymmetric},
			{Positions: []int{2}},
		}, "C(D, 2) * D"},
		{"symmetric triple", 3, []Group{{Positions: []int{0, 1, 2}, Kind: Symmetric}}, "C(D + 2, 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustConfig(t, tt.rank, tt.groups...)
			assert.Equal(t, tt.want, SizeExpression(c).String())
		})
	}
}

func TestSizeExpression_MatchesTotalSize(t *testing.T) {
	for rank := 0; rank <= 5; rank++ {
		for c := range All(rank) {
			size := SizeExpression(c)
			for dim := 1; dim <= 5; dim++ {
				want, err := TotalSize(c, dim)
				require.NoError(t, err)
				got, err := size.Eval(expr.MapEnv{Symbols: map[string]int{DimSymbol: dim}})
				require.NoError(t, err)
				assert.Equal(t, want, got, caseName(c, dim))
			}
		}
	}
}

func TestRankExpression_String(t *testing.T) {
	c := mustConfig(t, 3,
		Group{Positions: []int{0, 1}, Kind: Antisymmetric},
		Group{Positions: []int{2}},
	)
	p := RankExpression(c)
	require.Len(t, p.Steps, 1)
	assert.Equal(t, Canonicalization{Group: 0, Kind: Antisymmetric, Positions: []int{0, 1}}, p.Steps[0])
	assert.Equal(t, "(C(b0[0], 2) + C(b0[1], 1)) * D + i2", p.Index.String())

	sym := mustConfig(t, 2, Group{Positions: []int{0, 1}, Kind: Symmetric})
	assert.Equal(t, "C(b0[0] + 1, 2) + C(b0[1], 1)", RankExpression(sym).Index.String())
}

func TestRankExpression_MatchesLayout(t *testing.T) {
	for rank := 0; rank <= 4; rank++ {
		for c := range All(rank) {
			p := RankExpression(c)
			for dim := 1; dim <= 3; dim++ {
				l := mustLayout(t, c, dim)
				forEachTuple(rank, dim, func(tuple []int) {
					want, err := l.Rank(tuple...)
					require.NoError(t, err)
					got, err := p.Eval(dim, tuple...)
					require.NoError(t, err)
					assert.Equal(t, want, got, "%s: tuple %v", caseName(c, dim), tuple)
				})
			}
		}
	}
}

func TestRankProgram_EvalErrors(t *testing.T) {
	p := RankExpression(mustConfig(t, 1, Group{Positions: []int{0}}))

	_, err := p.Eval(0, 0)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	_, err = p.Eval(2)
	assert.ErrorIs(t, err, ErrTupleLength)

	_, err = p.Eval(2, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}
