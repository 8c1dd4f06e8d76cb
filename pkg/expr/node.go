package expr

// Expr is the interface for all expression tree nodes.
//
// The set of node types is closed: every pass in this package switches over
// *Number, *Variable, *Neg, *Add, *Mul, *Pow and *Equation and panics on
// anything else.
type Expr interface {
	EvalF64(x float64) (float64, bool)
	String() string
	LaTeX() string
	Clone() Expr
	NodeCount() int
	Depth() int
}

// Number is a numeric literal.
type Number struct {
	Val float64
}

// Variable is the single free variable of an equation.
type Variable struct {
	Name rune
}

// Neg is unary negation.
type Neg struct {
	X Expr
}

// Add is a sum of one or more terms.
type Add struct {
	Terms []Expr
}

// Mul is a product: a scalar coefficient times one or more factors.
// After Flatten no factor is a *Number.
type Mul struct {
	Coeff   float64
	Factors []Expr
}

// Pow raises Base to Exp. Flatten and Simplify never distribute across it.
type Pow struct {
	Base, Exp Expr
}

// Equation is a top-level equality. It only ever appears at the root.
type Equation struct {
	LHS, RHS Expr
}

// Num, Var and the other constructors keep test fixtures and the parser terse.

func Num(v float64) *Number { return &Number{Val: v} }

func Var(name rune) *Variable { return &Variable{Name: name} }

func NegOf(x Expr) *Neg { return &Neg{X: x} }

func AddOf(terms ...Expr) *Add { return &Add{Terms: terms} }

func MulOf(coeff float64, factors ...Expr) *Mul { return &Mul{Coeff: coeff, Factors: factors} }

func PowOf(base, exp Expr) *Pow { return &Pow{Base: base, Exp: exp} }

func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }

func unknownNode(fn string, node Expr) string {
	return "expr: " + fn + ": unknown node type " + typeName(node)
}

func typeName(node Expr) string {
	switch node.(type) {
	case nil:
		return "<nil>"
	case *Number:
		return "Number"
	case *Variable:
		return "Variable"
	case *Neg:
		return "Neg"
	case *Add:
		return "Add"
	case *Mul:
		return "Mul"
	case *Pow:
		return "Pow"
	case *Equation:
		return "Equation"
	default:
		return "?"
	}
}
