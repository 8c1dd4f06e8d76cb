package expr

// Equal reports whether two trees are structurally identical.
// Numbers compare with ==, so 0 and -0 are equal.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Val == y.Val
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *Neg:
		y, ok := b.(*Neg)
		return ok && Equal(x.X, y.X)
	case *Add:
		y, ok := b.(*Add)
		return ok && equalAll(x.Terms, y.Terms)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && x.Coeff == y.Coeff && equalAll(x.Factors, y.Factors)
	case *Pow:
		y, ok := b.(*Pow)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exp, y.Exp)
	case *Equation:
		y, ok := b.(*Equation)
		return ok && Equal(x.LHS, y.LHS) && Equal(x.RHS, y.RHS)
	default:
		panic(unknownNode("Equal", a))
	}
}

func equalAll(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Variables returns the distinct variable names in a tree, in first-seen order.
func Variables(node Expr) []rune {
	var names []rune
	seen := map[rune]bool{}
	var walk func(Expr)
	walk = func(node Expr) {
		switch n := node.(type) {
		case *Number:
		case *Variable:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case *Neg:
			walk(n.X)
		case *Add:
			for _, t := range n.Terms {
				walk(t)
			}
		case *Mul:
			for _, f := range n.Factors {
				walk(f)
			}
		case *Pow:
			walk(n.Base)
			walk(n.Exp)
		case *Equation:
			walk(n.LHS)
			walk(n.RHS)
		default:
			panic(unknownNode("Variables", node))
		}
	}
	walk(node)
	return names
}
