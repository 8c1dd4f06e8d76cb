// Package solver computes closed-form roots of polynomials of degree two or less.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/wildfunctions/computor/pkg/poly"
)

// ErrCannotSolve is returned for coefficient tables of unsupported shape,
// including any polynomial of degree three or more.
var ErrCannotSolve = errors.New("cannot solve")

// Kind classifies a solution set.
type Kind int

const (
	KindReal       Kind = iota // one or more real roots
	KindComplex                // no real roots, two complex conjugates
	KindAllReals               // every real number is a solution
	KindNoSolution             // a nonzero constant equals zero
)

var kindNames = map[Kind]string{
	KindReal:       "real",
	KindComplex:    "complex",
	KindAllReals:   "all-reals",
	KindNoSolution: "none",
}

func (k Kind) String() string { return kindNames[k] }

// Root is one solution. The value is (Num + ImNum*i) / Den; ImNum is zero
// for a real root.
type Root struct {
	Value complex128
	Num   float64
	ImNum float64
	Den   float64
}

// Real reports whether the root has no imaginary part.
func (r Root) Real() bool { return imag(r.Value) == 0 }

// Solution is the result of solving one polynomial.
type Solution struct {
	Kind         Kind
	Degree       int
	Discriminant *float64 // set for quadratics only
	Roots        []Root
}

// Solve dispatches on the shape of p, which must be sorted by exponent,
// highest first, as poly.Extract returns it.
func Solve(p poly.Polynomial) (Solution, error) {
	switch shape(p) {
	case "":
		return Solution{Kind: KindAllReals, Degree: 0}, nil
	case "0":
		return Solution{Kind: KindNoSolution, Degree: 0}, nil
	case "1":
		return Solution{Kind: KindReal, Degree: 1, Roots: []Root{{Value: 0, Num: 0, Den: 1}}}, nil
	case "1,0":
		b, c := p[0].Coeff, p[1].Coeff
		return Solution{Kind: KindReal, Degree: 1, Roots: []Root{divide(-c, b)}}, nil
	case "2":
		return Quadratic(p[0].Coeff, 0, 0), nil
	case "2,1":
		return Quadratic(p[0].Coeff, p[1].Coeff, 0), nil
	case "2,0":
		return Quadratic(p[0].Coeff, 0, p[1].Coeff), nil
	case "2,1,0":
		return Quadratic(p[0].Coeff, p[1].Coeff, p[2].Coeff), nil
	default:
		return Solution{}, fmt.Errorf("%w: %s has degree %d", ErrCannotSolve, p, p.Degree())
	}
}

// shape renders the exponent sequence, e.g. "2,1,0".
func shape(p poly.Polynomial) string {
	s := ""
	for i, t := range p {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprint(t.Exp)
	}
	return s
}

// Quadratic solves a*x^2 + b*x + c = 0 for a != 0.
func Quadratic(a, b, c float64) Solution {
	d := b*b - 4*a*c
	sol := Solution{Degree: 2, Discriminant: &d}

	switch {
	case d > 0:
		sq := math.Sqrt(d)
		sol.Kind = KindReal
		sol.Roots = []Root{divide(-b-sq, 2*a), divide(-b+sq, 2*a)}
	case d == 0:
		sol.Kind = KindReal
		sol.Roots = []Root{divide(-b, 2*a)}
	default:
		sq := math.Sqrt(-d)
		re := noNegZero(-b / (2 * a))
		sol.Kind = KindComplex
		sol.Roots = []Root{
			{Value: complex(re, -sq/(2*a)), Num: noNegZero(-b), ImNum: -sq, Den: 2 * a},
			{Value: complex(re, sq/(2*a)), Num: noNegZero(-b), ImNum: sq, Den: 2 * a},
		}
	}
	return sol
}

func divide(num, den float64) Root {
	return Root{Value: complex(noNegZero(num/den), 0), Num: num, Den: den}
}

func noNegZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
