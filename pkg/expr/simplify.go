package expr

import "math"

// Simplify constant-folds an expression tree and collapses degenerate
// containers. It does not cancel like symbolic terms: x + -x stays a sum of
// two terms until polynomial extraction groups them by exponent.
//
// Simplify panics if it meets a negated Equation.
func Simplify(node Expr) Expr {
	switch n := node.(type) {
	case *Number, *Variable:
		return node

	case *Neg:
		return simplifyNeg(n)

	case *Add:
		return simplifyAdd(n)

	case *Mul:
		return simplifyMul(n)

	case *Pow:
		base := Simplify(n.Base)
		exp := Simplify(n.Exp)

		be, bok := base.(*Number)
		ee, eok := exp.(*Number)

		// k^m folds with no domain check: NaN and Inf pass through.
		if bok && eok {
			return &Number{Val: math.Pow(be.Val, ee.Val)}
		}
		// x^1 = x
		if eok && ee.Val == 1 {
			return base
		}
		return &Pow{Base: base, Exp: exp}

	case *Equation:
		return &Equation{LHS: Simplify(n.LHS), RHS: Simplify(n.RHS)}

	default:
		panic(unknownNode("Simplify", node))
	}
}

func simplifyNeg(n *Neg) Expr {
	switch x := n.X.(type) {
	case *Number:
		return &Number{Val: -x.Val}

	case *Variable:
		return &Neg{X: x}

	// -(-x) = x
	case *Neg:
		return Simplify(x.X)

	// -(a + b) = -a + -b
	case *Add:
		terms := make([]Expr, len(x.Terms))
		for i, t := range x.Terms {
			terms[i] = &Neg{X: t}
		}
		return Simplify(&Add{Terms: terms})

	case *Equation:
		panic("expr: Simplify: negated equation")

	default:
		inner := Simplify(n.X)
		switch inner.(type) {
		case *Number, *Neg, *Add:
			// The child simplified into a shape one of the rules above handles.
			return simplifyNeg(&Neg{X: inner})
		}
		return &Neg{X: inner}
	}
}

func simplifyAdd(a *Add) Expr {
	var terms []Expr
	for _, t := range a.Terms {
		t = Simplify(t)
		if inner, ok := t.(*Add); ok {
			terms = append(terms, inner.Terms...)
		} else {
			terms = append(terms, t)
		}
	}

	sum := 0.0
	other := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if c, ok := t.(*Number); ok {
			sum += c.Val
		} else {
			other = append(other, t)
		}
	}
	if sum != 0 {
		other = append(other, &Number{Val: sum})
	}

	switch len(other) {
	case 0:
		return &Number{Val: 0}
	case 1:
		return other[0]
	default:
		return &Add{Terms: other}
	}
}

func simplifyMul(m *Mul) Expr {
	// Factors are never evaluated for their own sake, so a zero product
	// can skip them entirely.
	if m.Coeff == 0 {
		return &Number{Val: 0}
	}

	coeff := m.Coeff
	var vars, other []Expr
	// Signs and nested products reach here from inside sums, which Flatten
	// does not enter: -x*2 and 2*(3*x) both end with a plain coefficient.
	var collect func(f Expr)
	collect = func(f Expr) {
		switch f := f.(type) {
		case *Number:
			coeff *= f.Val
		case *Variable:
			vars = append(vars, f)
		case *Neg:
			coeff = -coeff
			collect(f.X)
		case *Mul:
			coeff *= f.Coeff
			for _, g := range f.Factors {
				collect(g)
			}
		default:
			other = append(other, f)
		}
	}
	for _, f := range m.Factors {
		collect(Simplify(f))
	}
	if coeff == 0 {
		return &Number{Val: 0}
	}

	factors := append(vars, other...)
	switch {
	case len(factors) == 0:
		return &Number{Val: coeff}
	case coeff != 1:
		return &Mul{Coeff: coeff, Factors: factors}
	case len(factors) == 1:
		return factors[0]
	default:
		// A unit coefficient keeps every factor.
		return &Mul{Coeff: 1, Factors: factors}
	}
}
