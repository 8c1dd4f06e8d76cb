package parser

import (
	"strconv"
	"unicode"
)

// TokenType identifies a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenIdent
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenLeftParen
	TokenRightParen
	TokenEquals
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "end of input",
	TokenNumber:     "number",
	TokenIdent:      "variable",
	TokenPlus:       "'+'",
	TokenMinus:      "'-'",
	TokenStar:       "'*'",
	TokenSlash:      "'/'",
	TokenCaret:      "'^'",
	TokenLeftParen:  "'('",
	TokenRightParen: "')'",
	TokenEquals:     "'='",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "unknown"
}

// Token is a lexical token with its 1-based source column. Identifiers are
// always a single letter.
type Token struct {
	Type   TokenType
	Text   string
	Num    float64
	Column int
}

var punctuation = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'^': TokenCaret,
	'(': TokenLeftParen,
	')': TokenRightParen,
	'=': TokenEquals,
}

// Lex splits input into tokens. The returned slice always ends with TokenEOF.
func Lex(input string) ([]Token, error) {
	src := []rune(input)
	var tokens []Token

	for i := 0; i < len(src); {
		r := src[i]
		col := i + 1

		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(src) && unicode.IsDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' {
				i++
				for i < len(src) && unicode.IsDigit(src[i]) {
					i++
				}
			}
			text := string(src[start:i])
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &ParseError{Column: col, Msg: "invalid number " + strconv.Quote(text)}
			}
			tokens = append(tokens, Token{Type: TokenNumber, Text: text, Num: v, Column: col})

		case unicode.IsLetter(r):
			tokens = append(tokens, Token{Type: TokenIdent, Text: string(r), Column: col})
			i++

		default:
			tt, ok := punctuation[r]
			if !ok {
				return nil, &ParseError{Column: col, Msg: "unexpected character " + strconv.QuoteRune(r)}
			}
			tokens = append(tokens, Token{Type: tt, Text: string(r), Column: col})
			i++
		}
	}

	return append(tokens, Token{Type: TokenEOF, Column: len(src) + 1}), nil
}
