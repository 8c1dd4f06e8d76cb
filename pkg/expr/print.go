package expr

import (
	"strconv"
	"strings"
)

// FormatNumber renders a float the way literals are displayed: shortest
// exact decimal, no exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String methods

func (n *Number) String() string {
	return FormatNumber(n.Val)
}

func (v *Variable) String() string {
	return string(v.Name)
}

// Negation attaches directly to atoms, products and powers.
func (n *Neg) String() string {
	switch n.X.(type) {
	case *Number, *Variable, *Mul, *Pow:
		return "-" + n.X.String()
	default:
		return "-(" + n.X.String() + ")"
	}
}

// Each term after the first is joined with " - " when its own rendering
// starts with a minus sign, " + " otherwise.
func (a *Add) String() string {
	if len(a.Terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(a.Terms[0].String())
	for _, t := range a.Terms[1:] {
		s := t.String()
		if rest, ok := strings.CutPrefix(s, "-"); ok {
			sb.WriteString(" - ")
			sb.WriteString(rest)
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (m *Mul) String() string {
	parts := make([]string, 0, len(m.Factors)+1)
	if m.Coeff != 1 || len(m.Factors) == 0 {
		parts = append(parts, FormatNumber(m.Coeff))
	}
	for _, f := range m.Factors {
		if _, ok := f.(*Add); ok {
			parts = append(parts, "("+f.String()+")")
		} else {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, "*")
}

func (p *Pow) String() string {
	base := p.Base.String()
	if !atomicBase(p.Base) {
		base = "(" + base + ")"
	}
	exp := p.Exp.String()
	if compound(p.Exp) {
		exp = "(" + exp + ")"
	}
	return base + "^" + exp
}

func (e *Equation) String() string {
	return e.LHS.String() + " = " + e.RHS.String()
}

// atomicBase reports whether a power base can be printed without parentheses.
func atomicBase(x Expr) bool {
	switch b := x.(type) {
	case *Number:
		return b.Val >= 0
	case *Variable:
		return true
	default:
		return false
	}
}

// compound reports whether an exponent is a sum or a product.
func compound(x Expr) bool {
	switch x.(type) {
	case *Add, *Mul:
		return true
	default:
		return false
	}
}

// LaTeX methods

func (n *Number) LaTeX() string {
	return FormatNumber(n.Val)
}

func (v *Variable) LaTeX() string {
	return string(v.Name)
}

func (n *Neg) LaTeX() string {
	switch n.X.(type) {
	case *Number, *Variable, *Mul, *Pow:
		return "-" + n.X.LaTeX()
	default:
		return `-\left(` + n.X.LaTeX() + `\right)`
	}
}

func (a *Add) LaTeX() string {
	if len(a.Terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(a.Terms[0].LaTeX())
	for _, t := range a.Terms[1:] {
		s := t.LaTeX()
		if rest, ok := strings.CutPrefix(s, "-"); ok {
			sb.WriteString(" - ")
			sb.WriteString(rest)
		} else {
			sb.WriteString(" + ")
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (m *Mul) LaTeX() string {
	parts := make([]string, 0, len(m.Factors)+1)
	if m.Coeff != 1 || len(m.Factors) == 0 {
		parts = append(parts, FormatNumber(m.Coeff))
	}
	for _, f := range m.Factors {
		if _, ok := f.(*Add); ok {
			parts = append(parts, `\left(`+f.LaTeX()+`\right)`)
		} else {
			parts = append(parts, f.LaTeX())
		}
	}
	return strings.Join(parts, ` \cdot `)
}

func (p *Pow) LaTeX() string {
	base := p.Base.LaTeX()
	if !atomicBase(p.Base) {
		base = `\left(` + base + `\right)`
	}
	return "{" + base + "}^{" + p.Exp.LaTeX() + "}"
}

func (e *Equation) LaTeX() string {
	return e.LHS.LaTeX() + " = " + e.RHS.LaTeX()
}
