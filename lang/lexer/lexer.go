// Package lexer converts source text into a sequence of tokens.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
)

// Lexer scans a single source text.
//
// A Lexer is not safe for concurrent use and should be discarded after
// [Lexer.ScanTokens] returns.
type Lexer struct {
	src      string
	reporter diag.Reporter
	tokens   []token.Token

	start   int // first byte of the lexeme being scanned
	current int // byte under consideration
	line    int
}

// New returns a lexer over src that reports errors to reporter.
// A nil reporter discards errors.
func New(src string, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.Discard
	}

	return &Lexer{src: src, reporter: reporter, line: 1}
}

// ScanTokens scans the entire source. Scanning continues past errors, so the
// result always ends with exactly one [token.EOF] on the final line.
func (l *Lexer) ScanTokens() []token.Token {
	for !l.atEnd() {
		l.start = l.current
		l.scanToken()
	}

	l.tokens = append(l.tokens, token.Make(token.EOF, "", nil, l.line))

	return l.tokens
}

func (l *Lexer) scanToken() {
	c := l.advance()

	switch c {
	case '(':
		l.add(token.LeftParen)
	case ')':
		l.add(token.RightParen)
	case '{':
		l.add(token.LeftBrace)
	case '}':
		l.add(token.RightBrace)
	case ',':
		l.add(token.Comma)
	case '.':
		l.add(token.Dot)
	case '-':
		l.add(token.Minus)
	case '+':
		l.add(token.Plus)
	case ';':
		l.add(token.Semicolon)
	case '*':
		l.add(token.Star)
	case '!':
		l.add(l.pick('=', token.BangEqual, token.Bang))
	case '=':
		l.add(l.pick('=', token.EqualEqual, token.Equal))
	case '<':
		l.add(l.pick('=', token.LessEqual, token.Less))
	case '>':
		l.add(l.pick('=', token.GreaterEqual, token.Greater))
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
		} else {
			l.add(token.Slash)
		}
	case ' ', '\r', '\t':
	case '\n':
		l.line++
	case '"':
		l.string()
	default:
		switch {
		case isDigit(c):
			l.number()
		case isAlpha(c):
			l.identifier()
		default:
			// One report per character, however many bytes encode it.
			_, size := utf8.DecodeRuneInString(l.src[l.start:])
			l.current = l.start + size

			l.reporter.Report(
				diag.AtLine(diag.Lexical, l.line, "Unexpected character."),
			)
		}
	}
}

func (l *Lexer) string() {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}

		l.advance()
	}

	if l.atEnd() {
		l.reporter.Report(
			diag.AtLine(diag.Lexical, l.line, "Unterminated string."),
		)

		return
	}

	l.advance() // closing quote

	l.addLiteral(token.String, l.src[l.start+1:l.current-1])
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()

		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// The lexeme is a well-formed decimal by construction.
	v, _ := strconv.ParseFloat(l.src[l.start:l.current], 64)

	l.addLiteral(token.Number, v)
}

func (l *Lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	l.add(token.Lookup(l.src[l.start:l.current]))
}

func (l *Lexer) add(kind token.Kind) { l.addLiteral(kind, nil) }

func (l *Lexer) addLiteral(kind token.Kind, literal any) {
	l.tokens = append(
		l.tokens,
		token.Make(kind, l.src[l.start:l.current], literal, l.line),
	)
}

func (l *Lexer) pick(next byte, two, one token.Kind) token.Kind {
	if l.match(next) {
		return two
	}

	return one
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.current] != expected {
		return false
	}

	l.current++

	return true
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++

	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}

	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}

	return l.src[l.current+1]
}

func (l *Lexer) atEnd() bool { return l.current >= len(l.src) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
