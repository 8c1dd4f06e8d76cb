// Package poly maps a canonical equation tree to its coefficient table.
package poly

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/wildfunctions/computor/pkg/expr"
)

// ErrNotPolynomial is returned when a term has a shape the extractor does not
// recognize, such as x*x (a product of variables rather than a power).
var ErrNotPolynomial = errors.New("not a polynomial")

// Term is one (exponent, coefficient) pair.
type Term struct {
	Exp   uint    `json:"exponent"`
	Coeff float64 `json:"coefficient"`
}

// Polynomial is a coefficient table with unique exponents, highest first.
type Polynomial []Term

// Degree returns the highest exponent, or -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	if len(p) == 0 {
		return -1
	}
	return int(p[0].Exp)
}

// Coeff returns the coefficient of x^exp, zero if absent.
func (p Polynomial) Coeff(exp uint) float64 {
	for _, t := range p {
		if t.Exp == exp {
			return t.Coeff
		}
	}
	return 0
}

func (p Polynomial) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = fmt.Sprintf("(%d, %s)", t.Exp, expr.FormatNumber(t.Coeff))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Extract reads the coefficient table off a canonical equation, that is
// Add(terms) = 0 or a single term = 0. Duplicate exponents
// are summed, exponents whose coefficients cancel to zero are dropped, and
// the result is sorted by exponent, highest first.
func Extract(node expr.Expr) (Polynomial, error) {
	eq, ok := node.(*expr.Equation)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an equation", ErrNotPolynomial, node)
	}
	if _, ok := eq.RHS.(*expr.Number); !ok {
		return nil, fmt.Errorf("%w: right side %s is not a number", ErrNotPolynomial, eq.RHS)
	}

	switch lhs := eq.LHS.(type) {
	case *expr.Add:
		terms := make([]Term, 0, len(lhs.Terms))
		for _, item := range lhs.Terms {
			t, err := classify(item)
			if err != nil {
				return nil, err
			}
			terms = append(terms, t)
		}
		return group(terms), nil

	// A bare variable keeps a zero coefficient: the equation is linear with
	// no constant and the solver only looks at the exponent.
	case *expr.Variable:
		return Polynomial{{Exp: 1, Coeff: 0}}, nil

	// Everything cancelled: c = 0 with no variable left.
	case *expr.Number:
		if lhs.Val == 0 {
			return Polynomial{}, nil
		}
		return Polynomial{{Exp: 0, Coeff: lhs.Val}}, nil

	case *expr.Neg:
		if _, ok := lhs.X.(*expr.Variable); ok {
			return Polynomial{{Exp: 1, Coeff: 0}}, nil
		}
	}

	// Any other single term: a*x, a*x^n, x^n, -x^n.
	t, err := classify(eq.LHS)
	if err != nil {
		return nil, err
	}
	return group([]Term{t}), nil
}

// classify maps one term of a canonical sum to its (exponent, coefficient).
func classify(item expr.Expr) (Term, error) {
	switch t := item.(type) {
	case *expr.Number:
		return Term{Exp: 0, Coeff: t.Val}, nil

	case *expr.Variable:
		return Term{Exp: 1, Coeff: 1}, nil

	case *expr.Neg:
		switch x := t.X.(type) {
		case *expr.Variable:
			return Term{Exp: 1, Coeff: -1}, nil
		case *expr.Mul:
			if len(x.Factors) == 1 {
				if exp, ok := monomial(x.Factors[0]); ok {
					return Term{Exp: exp, Coeff: -x.Coeff}, nil
				}
			}
		case *expr.Pow:
			if exp, ok := varPower(x); ok {
				return Term{Exp: exp, Coeff: -1}, nil
			}
		}

	case *expr.Mul:
		if len(t.Factors) == 1 {
			if exp, ok := monomial(t.Factors[0]); ok {
				return Term{Exp: exp, Coeff: t.Coeff}, nil
			}
		}

	case *expr.Pow:
		if exp, ok := varPower(t); ok {
			return Term{Exp: exp, Coeff: 1}, nil
		}
		// (-x)^n is read as -(x^n).
		if neg, ok := t.Base.(*expr.Neg); ok {
			if _, ok := neg.X.(*expr.Variable); ok {
				if exp, ok := exponent(t.Exp); ok {
					return Term{Exp: exp, Coeff: -1}, nil
				}
			}
		}
	}
	return Term{}, notPolynomial(item)
}

// monomial accepts x or x^n as the single factor of a product.
func monomial(f expr.Expr) (uint, bool) {
	switch f := f.(type) {
	case *expr.Variable:
		return 1, true
	case *expr.Pow:
		return varPower(f)
	default:
		return 0, false
	}
}

// varPower accepts x^n for a literal n.
func varPower(p *expr.Pow) (uint, bool) {
	if _, ok := p.Base.(*expr.Variable); !ok {
		return 0, false
	}
	return exponent(p.Exp)
}

// exponent accepts non-negative integer literals.
func exponent(e expr.Expr) (uint, bool) {
	n, ok := e.(*expr.Number)
	if !ok || n.Val < 0 || n.Val != math.Trunc(n.Val) || n.Val > math.MaxUint32 {
		return 0, false
	}
	return uint(n.Val), true
}

func group(terms []Term) Polynomial {
	sums := map[uint]float64{}
	for _, t := range terms {
		sums[t.Exp] += t.Coeff
	}

	p := make(Polynomial, 0, len(sums))
	for exp, c := range sums {
		if c != 0 {
			p = append(p, Term{Exp: exp, Coeff: c})
		}
	}
	sort.Slice(p, func(i, j int) bool { return p[i].Exp > p[j].Exp })
	return p
}

func notPolynomial(term expr.Expr) error {
	return fmt.Errorf("%w: unsupported term %s", ErrNotPolynomial, term)
}
