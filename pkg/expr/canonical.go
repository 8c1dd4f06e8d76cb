package expr

// MoveToLeft rewrites L = R as (L + -R) = 0.
//
// The result carries fresh Neg and Add nesting; run Flatten and Simplify
// again before extracting coefficients. MoveToLeft panics if node is not an
// *Equation.
func MoveToLeft(node Expr) Expr {
	eq, ok := node.(*Equation)
	if !ok {
		panic("expr: MoveToLeft on non-equation " + typeName(node))
	}
	return &Equation{
		LHS: &Add{Terms: []Expr{eq.LHS, &Neg{X: eq.RHS}}},
		RHS: &Number{Val: 0},
	}
}

// Normalize runs the full rewrite pipeline on an equation and returns the
// simplified tree and the canonical (right side zero) tree.
func Normalize(eq Expr) (simplified, canonical Expr) {
	simplified = Simplify(Flatten(eq))
	canonical = MoveToLeft(simplified)
	canonical = Simplify(Flatten(canonical))
	canonical = Simplify(Flatten(canonical))
	return simplified, canonical
}
