// Package token defines the lexical tokens produced by the scanner and
// consumed by the parser.
package token

import (
	"strconv"
)

// Token is a single lexeme scanned from source text.
//
// Tokens are plain values; they are never mutated after the scanner creates
// them.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any // float64 for [Number], string for [String], else nil
	Line    int
}

// Make returns a token of the given kind.
func Make(kind Kind, lexeme string, literal any, line int) Token {
	return Token{
		Kind:    kind,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

// Synthetic returns an identifier-like token that did not come from source,
// such as the implicit "this" bound into method frames.
func Synthetic(kind Kind, lexeme string) Token {
	return Token{Kind: kind, Lexeme: lexeme}
}

// String returns the token formatted as "KIND lexeme literal".
func (t Token) String() string {
	return t.Kind.String() + " " + t.Lexeme + " " + t.LiteralString()
}

// LiteralString returns the literal value as text, or "nil" when the token
// carries no literal.
func (t Token) LiteralString() string {
	switch v := t.Literal.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return "nil"
	}
}
