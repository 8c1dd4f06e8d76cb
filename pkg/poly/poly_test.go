package poly

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wildfunctions/computor/pkg/expr"
	"github.com/wildfunctions/computor/pkg/parser"
)

var x = expr.Var('x')

func TestExtractTerms(t *testing.T) {
	tests := []struct {
		name string
		term expr.Expr
		want Term
	}{
		{"number", expr.Num(-4), Term{0, -4}},
		{"variable", x, Term{1, 1}},
		{"neg variable", expr.NegOf(x), Term{1, -1}},
		{"neg scaled variable", expr.NegOf(expr.MulOf(3, x)), Term{1, -3}},
		{"neg scaled power", expr.NegOf(expr.MulOf(3, expr.PowOf(x, expr.Num(2)))), Term{2, -3}},
		{"scaled variable", expr.MulOf(2.5, x), Term{1, 2.5}},
		{"scaled power", expr.MulOf(2, expr.PowOf(x, expr.Num(2))), Term{2, 2}},
		{"power", expr.PowOf(x, expr.Num(2)), Term{2, 1}},
		{"power of neg", expr.PowOf(expr.NegOf(x), expr.Num(2)), Term{2, -1}},
		{"neg power", expr.NegOf(expr.PowOf(x, expr.Num(2))), Term{2, -1}},
		{"zeroth power", expr.MulOf(5, expr.PowOf(x, expr.Num(0))), Term{0, 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := classify(tc.term)
			if err != nil {
				t.Fatalf("classify(%s) error: %v", tc.term, err)
			}
			if got != tc.want {
				t.Errorf("classify(%s) = %+v, want %+v", tc.term, got, tc.want)
			}
		})
	}
}

func TestExtractRejects(t *testing.T) {
	tests := []struct {
		name string
		term expr.Expr
	}{
		{"product of variables", expr.MulOf(1, x, x)},
		{"fractional exponent", expr.PowOf(x, expr.Num(0.5))},
		{"negative exponent", expr.PowOf(x, expr.Num(-1))},
		{"symbolic exponent", expr.PowOf(x, x)},
		{"power of sum", expr.PowOf(expr.AddOf(x, expr.Num(1)), expr.Num(2))},
		{"neg of sum", expr.NegOf(expr.AddOf(x, expr.Num(1)))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			eq := expr.Eq(expr.AddOf(tc.term, expr.Num(1)), expr.Num(0))
			if _, err := Extract(eq); !errors.Is(err, ErrNotPolynomial) {
				t.Errorf("Extract(%s) error = %v, want ErrNotPolynomial", eq, err)
			}
		})
	}
}

func TestExtractGroupsAndSorts(t *testing.T) {
	eq := expr.Eq(expr.AddOf(
		expr.Num(1),
		x,
		expr.PowOf(x, expr.Num(2)),
		expr.MulOf(2, x),
		expr.NegOf(expr.PowOf(x, expr.Num(2))),
		expr.MulOf(4, expr.PowOf(x, expr.Num(2))),
	), expr.Num(0))

	got, err := Extract(eq)
	if err != nil {
		t.Fatal(err)
	}
	want := Polynomial{{2, 4}, {1, 3}, {0, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
	if got.Degree() != 2 {
		t.Errorf("Degree() = %d, want 2", got.Degree())
	}
	if got.String() != "[(2, 4), (1, 3), (0, 1)]" {
		t.Errorf("String() = %s", got)
	}
}

func TestExtractDropsCancelledTerms(t *testing.T) {
	eq := expr.Eq(expr.AddOf(x, expr.Num(1), expr.NegOf(x)), expr.Num(0))
	got, err := Extract(eq)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Polynomial{{0, 1}}, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSingleTerm(t *testing.T) {
	tests := []struct {
		name string
		lhs  expr.Expr
		want Polynomial
	}{
		{"variable", x, Polynomial{{1, 0}}},
		{"neg variable", expr.NegOf(x), Polynomial{{1, 0}}},
		{"scaled variable", expr.MulOf(3, x), Polynomial{{1, 3}}},
		{"scaled power", expr.MulOf(3, expr.PowOf(x, expr.Num(2))), Polynomial{{2, 3}}},
		{"power", expr.PowOf(x, expr.Num(2)), Polynomial{{2, 1}}},
		{"zero", expr.Num(0), Polynomial{}},
		{"constant", expr.Num(7), Polynomial{{0, 7}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Extract(expr.Eq(tc.lhs, expr.Num(0)))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Both sides are expanded by hand; the pipeline must agree.
func TestExtractRoundTrip(t *testing.T) {
	tests := []struct {
		input string
		want  Polynomial
	}{
		{"x^2 = 4", Polynomial{{2, 1}, {0, -4}}},
		{"x^2 + 2*x + 1 = 0", Polynomial{{2, 1}, {1, 2}, {0, 1}}},
		{"x^2 + 1 = 0", Polynomial{{2, 1}, {0, 1}}},
		{"2*x + 4 = 0", Polynomial{{1, 2}, {0, 4}}},
		{"x = 0", Polynomial{{1, 0}}},
		{"3*x^2 - x = x^2 + 5", Polynomial{{2, 2}, {1, -1}, {0, -5}}},
		{"2 * x * 3 = 6 - x", Polynomial{{1, 7}, {0, -6}}},
		{"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0", Polynomial{{2, -9.3}, {1, 4}, {0, 4}}},
		{"x - (2 - x^2) = 0", Polynomial{{2, 1}, {1, 1}, {0, -2}}},
		{"x + 1 = x + 1", Polynomial{}},
		{"-x*2 = 4", Polynomial{{1, -2}, {0, -4}}},
		{"2*-x = 4", Polynomial{{1, -2}, {0, -4}}},
		{"-x^2*2 + 8 = 0", Polynomial{{2, -2}, {0, 8}}},
		{"x + 2*(3*x) = 7", Polynomial{{1, 7}, {0, -7}}},
		{"-(2*x)*3 = 6", Polynomial{{1, -6}, {0, -6}}},
		// (-x)^n is read as -(x^n) whatever the parity of n.
		{"(-x)^2 = 4", Polynomial{{2, -1}, {0, -4}}},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			tree, err := parser.Parse(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			_, canonical := expr.Normalize(tree)
			got, err := Extract(canonical)
			if err != nil {
				t.Fatalf("Extract(%s) error: %v", canonical, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Extract(%s) mismatch (-want +got):\n%s", canonical, diff)
			}
		})
	}
}

func TestExtractProductOfVariables(t *testing.T) {
	tree, err := parser.Parse("x*x = 0")
	if err != nil {
		t.Fatal(err)
	}
	_, canonical := expr.Normalize(tree)
	if _, err := Extract(canonical); !errors.Is(err, ErrNotPolynomial) {
		t.Errorf("Extract(%s) error = %v, want ErrNotPolynomial", canonical, err)
	}
}
