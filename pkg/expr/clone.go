package expr

func (n *Number) Clone() Expr {
	return &Number{Val: n.Val}
}

func (v *Variable) Clone() Expr {
	return &Variable{Name: v.Name}
}

func (n *Neg) Clone() Expr {
	return &Neg{X: n.X.Clone()}
}

func (a *Add) Clone() Expr {
	return &Add{Terms: cloneAll(a.Terms)}
}

func (m *Mul) Clone() Expr {
	return &Mul{
		Coeff:   m.Coeff,
		Factors: cloneAll(m.Factors),
	}
}

func (p *Pow) Clone() Expr {
	return &Pow{
		Base: p.Base.Clone(),
		Exp:  p.Exp.Clone(),
	}
}

func (e *Equation) Clone() Expr {
	return &Equation{
		LHS: e.LHS.Clone(),
		RHS: e.RHS.Clone(),
	}
}

func cloneAll(list []Expr) []Expr {
	out := make([]Expr, len(list))
	for i, x := range list {
		out[i] = x.Clone()
	}
	return out
}
