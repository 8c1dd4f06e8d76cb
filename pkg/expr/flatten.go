package expr

// Flatten normalizes nested products so that every Mul carries one scalar
// coefficient and a flat list of non-numeric factors.
//
// Numeric factors, wherever they sit in the list, fold into the coefficient.
// Sums are returned as-is: splicing nested Add terms is left to Simplify.
// Number, Variable and Neg are leaves for this pass.
func Flatten(node Expr) Expr {
	switch n := node.(type) {
	case *Number, *Variable, *Neg, *Add:
		return node

	case *Mul:
		coeff := n.Coeff
		flat := make([]Expr, 0, len(n.Factors))
		for _, f := range n.Factors {
			switch f := Flatten(f).(type) {
			case *Number:
				coeff *= f.Val
			case *Mul:
				coeff *= f.Coeff
				flat = append(flat, f.Factors...)
			default:
				flat = append(flat, f)
			}
		}

		if len(flat) == 0 {
			return &Number{Val: coeff}
		}
		return &Mul{Coeff: coeff, Factors: flat}

	case *Pow:
		return &Pow{Base: Flatten(n.Base), Exp: Flatten(n.Exp)}

	case *Equation:
		return &Equation{LHS: Flatten(n.LHS), RHS: Flatten(n.RHS)}

	default:
		panic(unknownNode("Flatten", node))
	}
}
