// Package expr is a small symbolic integer arithmetic tree used to describe
// storage sizes and offset formulas independently of concrete dimensions.
//
// Nodes are immutable values. The builder functions (Add, Mul, Pow, Choose)
// fold constants and drop neutral elements; the node types can also be
// constructed directly when an unsimplified tree is wanted.
package expr

import (
	"errors"
	"fmt"

	"github.com/born-ml/symtensor/internal/combin"
)

// Common errors.
var (
	ErrUnbound  = errors.New("expr: unbound variable")
	ErrOverflow = errors.New("expr: integer overflow")
	ErrNegative = errors.New("expr: negative operand")
)

// Node is one vertex of an expression tree.
type Node interface {
	// Eval evaluates the node under env.
	Eval(env Env) (int, error)
	// String renders the node with DefaultStyle.
	String() string
}

// Env supplies values for symbols and index axes.
type Env interface {
	Symbol(name string) (int, bool)
	Axis(a Axis) (int, bool)
}

// Const is an integer literal.
type Const struct {
	Value int
}

// Symbol is a named free variable, such as the dimension D.
type Symbol struct {
	Name string
}

// Axis is an index variable. A free axis (Bound false) stands for the raw
// value at Position. A bound axis stands for the Order-th value of the
// canonicalized (sorted) block Group; Position is then the block's first
// member and only informative.
type Axis struct {
	Position int
	Group    int
	Order    int
	Bound    bool
}

// Sum adds its terms.
type Sum struct {
	Terms []Node
}

// Product multiplies its factors.
type Product struct {
	Factors []Node
}

// Power raises Base to a constant exponent.
type Power struct {
	Base Node
	Exp  int
}

// Binomial is the binomial coefficient C(N, K) with a constant K.
type Binomial struct {
	N Node
	K int
}

// Eval returns the literal.
func (c Const) Eval(Env) (int, error) { return c.Value, nil }

// Eval looks the symbol up in env.
func (s Symbol) Eval(env Env) (int, error) {
	if env != nil {
		if v, ok := env.Symbol(s.Name); ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnbound, s.Name)
}

// Eval looks the axis up in env.
func (a Axis) Eval(env Env) (int, error) {
	if env != nil {
		if v, ok := env.Axis(a); ok {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnbound, a)
}

// Eval adds the evaluated terms.
func (s Sum) Eval(env Env) (int, error) {
	total := 0
	for _, t := range s.Terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("%w: %d in %s", ErrNegative, v, s)
		}
		var ok bool
		if total, ok = combin.Add(total, v); !ok {
			return 0, fmt.Errorf("%w: %s", ErrOverflow, s)
		}
	}
	return total, nil
}

// Eval multiplies the evaluated factors.
func (p Product) Eval(env Env) (int, error) {
	total := 1
	for _, f := range p.Factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("%w: %d in %s", ErrNegative, v, p)
		}
		var ok bool
		if total, ok = combin.Mul(total, v); !ok {
			return 0, fmt.Errorf("%w: %s", ErrOverflow, p)
		}
	}
	return total, nil
}

// Eval raises the evaluated base to Exp.
func (p Power) Eval(env Env) (int, error) {
	b, err := p.Base.Eval(env)
	if err != nil {
		return 0, err
	}
	if b < 0 || p.Exp < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegative, p)
	}
	v, ok := combin.Pow(b, p.Exp)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, p)
	}
	return v, nil
}

// Eval computes C(N, K) exactly.
func (b Binomial) Eval(env Env) (int, error) {
	n, err := b.N.Eval(env)
	if err != nil {
		return 0, err
	}
	v, ok := combin.Binomial(n, b.K)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, b)
	}
	return v, nil
}

func (c Const) String() string    { return Format(c, DefaultStyle) }
func (s Symbol) String() string   { return Format(s, DefaultStyle) }
func (a Axis) String() string     { return Format(a, DefaultStyle) }
func (s Sum) String() string      { return Format(s, DefaultStyle) }
func (p Product) String() string  { return Format(p, DefaultStyle) }
func (p Power) String() string    { return Format(p, DefaultStyle) }
func (b Binomial) String() string { return Format(b, DefaultStyle) }

// MapEnv is an Env backed by maps.
type MapEnv struct {
	Symbols map[string]int
	Axes    map[Axis]int
}

// Symbol implements Env.
func (m MapEnv) Symbol(name string) (int, bool) {
	v, ok := m.Symbols[name]
	return v, ok
}

// Axis implements Env.
func (m MapEnv) Axis(a Axis) (int, bool) {
	v, ok := m.Axes[a]
	return v, ok
}
