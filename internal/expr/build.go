package expr

import "github.com/born-ml/symtensor/internal/combin"

// Int returns a constant node.
func Int(v int) Node {
	return Const{Value: v}
}

// Sym returns a symbol node.
func Sym(name string) Node {
	return Symbol{Name: name}
}

// Add returns the sum of the nodes with nested sums flattened, constants
// folded into a single trailing term and zero terms dropped.
func Add(nodes ...Node) Node {
	var terms []Node
	constant := 0
	for _, n := range nodes {
		switch v := n.(type) {
		case Const:
			if c, ok := combin.Add(constant, v.Value); ok && v.Value >= 0 {
				constant = c
			} else {
				terms = append(terms, v)
			}
		case Sum:
			terms = append(terms, v.Terms...)
		default:
			terms = append(terms, n)
		}
	}
	if constant != 0 {
		terms = append(terms, Const{Value: constant})
	}
	switch len(terms) {
	case 0:
		return Const{Value: 0}
	case 1:
		return terms[0]
	default:
		return Sum{Terms: terms}
	}
}

// Mul returns the product of the nodes with nested products flattened,
// constants folded into a single leading factor and unit factors dropped.
// A zero constant factor collapses the product to zero.
func Mul(nodes ...Node) Node {
	var factors []Node
	constant := 1
	for _, n := range nodes {
		switch v := n.(type) {
		case Const:
			if v.Value == 0 {
				return Const{Value: 0}
			}
			if c, ok := combin.Mul(constant, v.Value); ok && v.Value > 0 {
				constant = c
			} else {
				factors = append(factors, v)
			}
		case Product:
			factors = append(factors, v.Factors...)
		default:
			factors = append(factors, n)
		}
	}
	if constant != 1 {
		factors = append([]Node{Const{Value: constant}}, factors...)
	}
	switch len(factors) {
	case 0:
		return Const{Value: 1}
	case 1:
		return factors[0]
	default:
		return Product{Factors: factors}
	}
}

// Pow returns base^exp, folding constant bases and trivial exponents.
func Pow(base Node, exp int) Node {
	switch exp {
	case 0:
		return Const{Value: 1}
	case 1:
		return base
	}
	if c, ok := base.(Const); ok && c.Value >= 0 {
		if v, ok := combin.Pow(c.Value, exp); ok {
			return Const{Value: v}
		}
	}
	return Power{Base: base, Exp: exp}
}

// Choose returns C(n, k), folding constant arguments and trivial k.
func Choose(n Node, k int) Node {
	switch {
	case k < 0:
		return Const{Value: 0}
	case k == 0:
		return Const{Value: 1}
	}
	if c, ok := n.(Const); ok {
		if v, ok := combin.Binomial(c.Value, k); ok {
			return Const{Value: v}
		}
	}
	return Binomial{N: n, K: k}
}
