package parser

import (
	"fmt"

	"github.com/wildfunctions/computor/pkg/expr"
)

// DefaultMaxDepth bounds the nesting of parentheses, signs and powers.
const DefaultMaxDepth = 64

// ParseError reports a syntax error at a 1-based source column.
type ParseError struct {
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, e.Msg)
}

// Options configures a Parser.
type Options struct {
	MaxDepth int // 0 means DefaultMaxDepth
}

// Parser is a recursive-descent parser for single-variable equations:
//
//	equation := sum '=' sum
//	sum      := product { ('+'|'-') product }
//	product  := unary { ('*'|'/'|implicit) unary }
//	unary    := ('-'|'+') unary | power
//	power    := atom [ '^' unary ]
//	atom     := number | letter | '(' sum ')'
//
// An implicit product is a factor directly followed by a letter or '('.
type Parser struct {
	maxDepth int

	tokens   []Token
	pos      int
	depth    int
	variable *Token
}

// New creates a parser.
func New(opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{maxDepth: opts.MaxDepth}
}

// Parse parses input with default options.
func Parse(input string) (expr.Expr, error) {
	return New(Options{}).Parse(input)
}

// Parse parses one equation. The returned tree is always an *expr.Equation
// mentioning at most one variable symbol.
func (p *Parser) Parse(input string) (expr.Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}
	p.tokens, p.pos, p.depth, p.variable = tokens, 0, 0, nil

	lhs, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEquals); err != nil {
		return nil, err
	}
	rhs, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenEOF); err != nil {
		return nil, err
	}
	return expr.Eq(lhs, rhs), nil
}

func (p *Parser) parseSum() (expr.Expr, error) {
	first, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	terms := []expr.Expr{first}

	for {
		tok := p.peek()
		if tok.Type != TokenPlus && tok.Type != TokenMinus {
			break
		}
		p.advance()
		term, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenMinus {
			term = expr.NegOf(term)
		}
		terms = append(terms, term)
	}

	if len(terms) == 1 {
		return first, nil
	}
	return expr.AddOf(terms...), nil
}

func (p *Parser) parseProduct() (expr.Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []expr.Expr{first}

	for {
		tok := p.peek()
		switch tok.Type {
		case TokenStar, TokenSlash:
			p.advance()
		case TokenIdent, TokenLeftParen:
			// implicit product: 2x, x(x + 1)
		default:
			if len(factors) == 1 {
				return first, nil
			}
			return expr.MulOf(1, factors...), nil
		}

		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenSlash {
			f = expr.PowOf(f, expr.Num(-1))
		}
		factors = append(factors, f)
	}
}

func (p *Parser) parseUnary() (expr.Expr, error) {
	tok := p.peek()
	if tok.Type != TokenMinus && tok.Type != TokenPlus {
		return p.parsePower()
	}

	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	p.advance()
	x, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokenMinus {
		return expr.NegOf(x), nil
	}
	return x, nil
}

func (p *Parser) parsePower() (expr.Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.Type != TokenCaret {
		return base, nil
	}

	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	p.advance()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return expr.PowOf(base, exp), nil
}

func (p *Parser) parseAtom() (expr.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case TokenNumber:
		p.advance()
		return expr.Num(tok.Num), nil

	case TokenIdent:
		p.advance()
		name := []rune(tok.Text)[0]
		if p.variable == nil {
			p.variable = &tok
		} else if p.variable.Text != tok.Text {
			return nil, &ParseError{
				Column: tok.Column,
				Msg:    fmt.Sprintf("second variable %q, equation already uses %q", tok.Text, p.variable.Text),
			}
		}
		return expr.Var(name), nil

	case TokenLeftParen:
		if err := p.enter(tok); err != nil {
			return nil, err
		}
		defer p.leave()

		p.advance()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return inner, nil

	default:
		return nil, p.unexpected(tok)
	}
}

func (p *Parser) enter(tok Token) error {
	p.depth++
	if p.depth > p.maxDepth {
		return &ParseError{Column: tok.Column, Msg: fmt.Sprintf("expression nested deeper than %d", p.maxDepth)}
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

func (p *Parser) peek() Token { return p.tokens[p.pos] }

func (p *Parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) expect(tt TokenType) error {
	tok := p.peek()
	if tok.Type != tt {
		return &ParseError{Column: tok.Column, Msg: fmt.Sprintf("expected %s, found %s", tt, describe(tok))}
	}
	p.advance()
	return nil
}

func (p *Parser) unexpected(tok Token) error {
	return &ParseError{Column: tok.Column, Msg: "unexpected " + describe(tok)}
}

func describe(tok Token) string {
	if tok.Type == TokenEOF {
		return tok.Type.String()
	}
	return fmt.Sprintf("%s %q", tok.Type, tok.Text)
}
