package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// Style controls how Format renders symbols, axes and functions.
type Style struct {
	// Symbol renders a symbol; nil prints the name.
	Symbol func(name string) string
	// Axis renders an index variable.
	Axis func(a Axis) string
	// Binomial is the name of the two-argument binomial function.
	Binomial string
	// Power is the name of the two-argument power function. If empty, powers
	// are expanded into repeated multiplication.
	Power string
}

// DefaultStyle renders free axes as i<position>, bound axes as
// b<group>[<order>] and binomials as C(n, k).
var DefaultStyle = Style{
	Axis: func(a Axis) string {
		if a.Bound {
			return fmt.Sprintf("b%d[%d]", a.Group, a.Order)
		}
		return "i" + strconv.Itoa(a.Position)
	},
	Binomial: "C",
}

// Operator precedence levels.
const (
	precSum = iota + 1
	precProduct
	precAtom
)

// Format renders n as an infix expression.
func Format(n Node, s Style) string {
	var sb strings.Builder
	format(&sb, n, s, 0)
	return sb.String()
}

func format(sb *strings.Builder, n Node, s Style, outer int) {
	switch v := n.(type) {
	case Const:
		if v.Value < 0 && outer > precSum {
			fmt.Fprintf(sb, "(%d)", v.Value)
			return
		}
		sb.WriteString(strconv.Itoa(v.Value))
	case Symbol:
		if s.Symbol != nil {
			sb.WriteString(s.Symbol(v.Name))
			return
		}
		sb.WriteString(v.Name)
	case Axis:
		if s.Axis == nil {
			sb.WriteString(DefaultStyle.Axis(v))
			return
		}
		sb.WriteString(s.Axis(v))
	case Sum:
		openParen(sb, outer > precSum)
		for i, t := range v.Terms {
			if i > 0 {
				sb.WriteString(" + ")
			}
			format(sb, t, s, precSum)
		}
		closeParen(sb, outer > precSum)
	case Product:
		openParen(sb, outer > precProduct)
		for i, f := range v.Factors {
			if i > 0 {
				sb.WriteString(" * ")
			}
			format(sb, f, s, precProduct)
		}
		closeParen(sb, outer > precProduct)
	case Power:
		if s.Power != "" {
			fmt.Fprintf(sb, "%s(", s.Power)
			format(sb, v.Base, s, 0)
			fmt.Fprintf(sb, ", %d)", v.Exp)
			return
		}
		if v.Exp <= 0 {
			sb.WriteString("1")
			return
		}
		openParen(sb, outer > precProduct)
		for i := range v.Exp {
			if i > 0 {
				sb.WriteString(" * ")
			}
			format(sb, v.Base, s, precProduct)
		}
		closeParen(sb, outer > precProduct)
	case Binomial:
		name := s.Binomial
		if name == "" {
			name = "C"
		}
		fmt.Fprintf(sb, "%s(", name)
		format(sb, v.N, s, 0)
		fmt.Fprintf(sb, ", %d)", v.K)
	default:
		fmt.Fprintf(sb, "%v", n)
	}
}

func openParen(sb *strings.Builder, paren bool) {
	if paren {
		sb.WriteByte('(')
	}
}

func closeParen(sb *strings.Builder, paren bool) {
	if paren {
		sb.WriteByte(')')
	}
}
