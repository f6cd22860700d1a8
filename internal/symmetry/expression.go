package symmetry

import (
	"fmt"
	"slices"

	"github.com/born-ml/symtensor/internal/expr"
)

// DimSymbol is the name of the dimension variable in generated expressions.
const DimSymbol = "D"

// SizeExpression returns TotalSize as an expression over the symbol D:
// the product of C(D+g-1, g) per symmetric block, C(D, g) per antisymmetric
// block and D per free axis.
func SizeExpression(c Configuration) expr.Node {
	d := expr.Sym(DimSymbol)
	factors := make([]expr.Node, 0, len(c.groups)+1)
	free := 0
	for _, g := range c.groups {
		if g.Kind == Free {
			free++
			continue
		}
		factors = append(factors, radixExpression(g))
	}
	factors = append(factors, expr.Pow(d, free))
	return expr.Mul(factors...)
}

func radixExpression(g Group) expr.Node {
	d := expr.Sym(DimSymbol)
	switch g.Kind {
	case Symmetric:
		return expr.Choose(expr.Add(d, expr.Int(g.Size()-1)), g.Size())
	case Antisymmetric:
		return expr.Choose(d, g.Size())
	default:
		return d
	}
}

// Canonicalization is one data-dependent step of a RankProgram: the values at
// Positions are sorted by Canonicalize before the index expression is
// evaluated. Sorted values are referenced as bound axes of Group.
type Canonicalization struct {
	Group     int
	Kind      Kind
	Positions []int
}

// RankProgram is the symbolic form of Layout.Rank. The Steps canonicalize
// every block; Index then composes block ranks (over bound axes) and free
// axes in Horner form. The final offset is Index with the accumulated
// antisymmetric orientation, or Zero if a step detected a repeated value.
type RankProgram struct {
	Config Configuration
	Steps  []Canonicalization
	Index  expr.Node
}

// RankExpression builds the symbolic rank program of a configuration.
func RankExpression(c Configuration) RankProgram {
	p := RankProgram{Config: c}
	index := expr.Int(0)
	for i, g := range c.groups {
		var local expr.Node
		if g.Kind == Free {
			local = expr.Axis{Position: g.Positions[0], Group: i}
		} else {
			p.Steps = append(p.Steps, Canonicalization{Group: i, Kind: g.Kind, Positions: slices.Clone(g.Positions)})
			local = blockRankExpression(i, g)
		}
		index = expr.Add(expr.Mul(index, radixExpression(g)), local)
	}
	p.Index = index
	return p
}

// blockRankExpression is the combinatorial number system rank of a sorted block.
func blockRankExpression(group int, g Group) expr.Node {
	n := g.Size()
	terms := make([]expr.Node, n)
	for k := range n {
		var v expr.Node = expr.Axis{Position: g.Positions[0], Group: group, Order: k, Bound: true}
		if g.Kind == Symmetric {
			v = expr.Add(v, expr.Int(n-1-k))
		}
		terms[k] = expr.Choose(v, n-k)
	}
	return expr.Add(terms...)
}

// Eval runs the program on a concrete dimension and tuple. It agrees with
// Layout.Rank for every valid input.
func (p RankProgram) Eval(dim int, tuple ...int) (Offset, error) {
	if dim < 1 {
		return Zero, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	if len(tuple) != p.Config.rank {
		return Zero, fmt.Errorf("%w: got %d values for rank %d", ErrTupleLength, len(tuple), p.Config.rank)
	}
	if err := CheckIndices(dim, tuple...); err != nil {
		return Zero, err
	}

	env := &programEnv{dim: dim, tuple: tuple, sorted: make(map[int][]int, len(p.Steps))}
	odd := false
	for _, step := range p.Steps {
		if step.Kind == Antisymmetric && len(step.Positions) > dim {
			return Zero, nil
		}
		vals := make([]int, len(step.Positions))
		for j, pos := range step.Positions {
			vals[j] = tuple[pos]
		}
		flip, zero := Canonicalize(vals, step.Kind)
		if zero {
			return Zero, nil
		}
		if flip {
			odd = !odd
		}
		env.sorted[step.Group] = vals
	}

	index, err := p.Index.Eval(env)
	if err != nil {
		return Zero, err
	}
	if odd {
		return Slot(index, Negative), nil
	}
	return Slot(index, Positive), nil
}

type programEnv struct {
	dim    int
	tuple  []int
	sorted map[int][]int
}

func (e *programEnv) Symbol(name string) (int, bool) {
	if name == DimSymbol {
		return e.dim, true
	}
	return 0, false
}

func (e *programEnv) Axis(a expr.Axis) (int, bool) {
	if !a.Bound {
		if a.Position < 0 || a.Position >= len(e.tuple) {
			return 0, false
		}
		return e.tuple[a.Position], true
	}
	vals, ok := e.sorted[a.Group]
	if !ok || a.Order < 0 || a.Order >= len(vals) {
		return 0, false
	}
	return vals[a.Order], true
}
