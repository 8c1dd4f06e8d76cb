package expr

func (n *Number) NodeCount() int { return 1 }
func (v *Variable) NodeCount() int { return 1 }
func (n *Neg) NodeCount() int { return 1 + n.X.NodeCount() }
func (a *Add) NodeCount() int { return 1 + countAll(a.Terms) }
func (m *Mul) NodeCount() int { return 1 + countAll(m.Factors) }
func (p *Pow) NodeCount() int {
	return 1 + p.Base.NodeCount() + p.Exp.NodeCount()
}
func (e *Equation) NodeCount() int {
	return 1 + e.LHS.NodeCount() + e.RHS.NodeCount()
}

func (n *Number) Depth() int { return 1 }
func (v *Variable) Depth() int { return 1 }
func (n *Neg) Depth() int { return 1 + n.X.Depth() }
func (a *Add) Depth() int { return 1 + maxDepth(a.Terms...) }
func (m *Mul) Depth() int { return 1 + maxDepth(m.Factors...) }
func (p *Pow) Depth() int { return 1 + maxDepth(p.Base, p.Exp) }
func (e *Equation) Depth() int { return 1 + maxDepth(e.LHS, e.RHS) }

func countAll(list []Expr) int {
	total := 0
	for _, x := range list {
		total += x.NodeCount()
	}
	return total
}

func maxDepth(list ...Expr) int {
	d := 0
	for _, x := range list {
		if xd := x.Depth(); xd > d {
			d = xd
		}
	}
	return d
}
