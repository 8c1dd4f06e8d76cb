package expr

import "math"

// EvalF64 for Number returns the literal.
func (n *Number) EvalF64(x float64) (float64, bool) {
	return n.Val, true
}

// EvalF64 for Variable returns x.
func (v *Variable) EvalF64(x float64) (float64, bool) {
	return x, true
}

func (n *Neg) EvalF64(x float64) (float64, bool) {
	v, ok := n.X.EvalF64(x)
	if !ok {
		return 0, false
	}
	return -v, true
}

func (a *Add) EvalF64(x float64) (float64, bool) {
	sum := 0.0
	for _, t := range a.Terms {
		v, ok := t.EvalF64(x)
		if !ok {
			return 0, false
		}
		sum += v
	}
	return finite(sum)
}

func (m *Mul) EvalF64(x float64) (float64, bool) {
	prod := m.Coeff
	for _, f := range m.Factors {
		v, ok := f.EvalF64(x)
		if !ok {
			return 0, false
		}
		prod *= v
	}
	return finite(prod)
}

func (p *Pow) EvalF64(x float64) (float64, bool) {
	base, ok := p.Base.EvalF64(x)
	if !ok {
		return 0, false
	}
	exp, ok := p.Exp.EvalF64(x)
	if !ok {
		return 0, false
	}
	return finite(math.Pow(base, exp))
}

// EvalF64 for Equation returns the residual LHS - RHS, which is zero at a root.
func (e *Equation) EvalF64(x float64) (float64, bool) {
	l, ok := e.LHS.EvalF64(x)
	if !ok {
		return 0, false
	}
	r, ok := e.RHS.EvalF64(x)
	if !ok {
		return 0, false
	}
	return finite(l - r)
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
