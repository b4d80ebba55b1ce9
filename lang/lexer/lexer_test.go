package lexer

import (
	"slices"
	"testing"

	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
)

func scan(t *testing.T, src string) ([]token.Token, *diag.Collector) {
	t.Helper()

	c := diag.NewCollector()

	return New(src, c).ScanTokens(), c
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}

	return out
}

func TestScanTokensKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{
			name: "var declaration",
			src:  "var foo = 1;",
			want: []token.Kind{
				token.Var, token.Identifier, token.Equal, token.Number,
				token.Semicolon, token.EOF,
			},
		},
		{
			name: "empty",
			src:  "",
			want: []token.Kind{token.EOF},
		},
		{
			name: "single characters",
			src:  "(){},.-+;*/",
			want: []token.Kind{
				token.LeftParen, token.RightParen, token.LeftBrace,
				token.RightBrace, token.Comma, token.Dot, token.Minus,
				token.Plus, token.Semicolon, token.Star, token.Slash, token.EOF,
			},
		},
		{
			name: "longest match",
			src:  "! != = == < <= > >=",
			want: []token.Kind{
				token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
				token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
				token.EOF,
			},
		},
		{
			name: "keywords",
			src: "and class else false for fun if nil or print return " +
				"super this true var while",
			want: []token.Kind{
				token.And, token.Class, token.Else, token.False, token.For,
				token.Fun, token.If, token.Nil, token.Or, token.Print,
				token.Return, token.Super, token.This, token.True, token.Var,
				token.While, token.EOF,
			},
		},
		{
			name: "keyword prefix is identifier",
			src:  "orchid _var classy",
			want: []token.Kind{
				token.Identifier, token.Identifier, token.Identifier, token.EOF,
			},
		},
		{
			name: "comment",
			src:  "1 // everything here is ignored ;;;\n2",
			want: []token.Kind{token.Number, token.Number, token.EOF},
		},
		{
			name: "trailing dot is not fraction",
			src:  "123.",
			want: []token.Kind{token.Number, token.Dot, token.EOF},
		},
		{
			name: "leading dot is not number",
			src:  ".5",
			want: []token.Kind{token.Dot, token.Number, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, c := scan(t, tt.src)
			if c.HadError() {
				t.Fatalf("unexpected diagnostics: %v", c.Diagnostics())
			}

			if got := kinds(toks); !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanTokensLiterals(t *testing.T) {
	toks, _ := scan(t, `var foo = 1; "hi" 3.25 12`)

	if toks[1].Lexeme != "foo" || toks[1].Literal != nil {
		t.Errorf("identifier = %#v", toks[1])
	}

	if toks[3].Literal != 1.0 {
		t.Errorf("number literal = %#v, want 1", toks[3].Literal)
	}

	if toks[5].Literal != "hi" || toks[5].Lexeme != `"hi"` {
		t.Errorf("string = %#v", toks[5])
	}

	if toks[6].Literal != 3.25 {
		t.Errorf("fraction literal = %#v, want 3.25", toks[6].Literal)
	}

	if toks[7].Literal != 12.0 {
		t.Errorf("integer literal = %#v, want 12", toks[7].Literal)
	}
}

func TestScanTokensLines(t *testing.T) {
	toks, _ := scan(t, "a\nb\n\"multi\nline\"\nc")

	// A string spanning lines takes the line it ends on.
	want := []int{1, 2, 4, 5, 5}
	for i, tok := range toks {
		if tok.Line != want[i] {
			t.Errorf("token %d (%s) line = %d, want %d", i, tok, tok.Line, want[i])
		}
	}
}

func TestScanTokensErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		messages []string
		want     []token.Kind
	}{
		{
			name:     "unexpected character continues",
			src:      "1 @ 2 # 3",
			messages: []string{"Unexpected character.", "Unexpected character."},
			want: []token.Kind{
				token.Number, token.Number, token.Number, token.EOF,
			},
		},
		{
			name:     "multibyte character reported once",
			src:      "a é b € 1",
			messages: []string{"Unexpected character.", "Unexpected character."},
			want: []token.Kind{
				token.Identifier, token.Identifier, token.Number, token.EOF,
			},
		},
		{
			name:     "invalid byte",
			src:      "a \xff b",
			messages: []string{"Unexpected character."},
			want:     []token.Kind{token.Identifier, token.Identifier, token.EOF},
		},
		{
			name:     "unterminated string",
			src:      "print \"abc",
			messages: []string{"Unterminated string."},
			want:     []token.Kind{token.Print, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, c := scan(t, tt.src)

			var msgs []string
			for _, d := range c.Diagnostics() {
				if d.Kind != diag.Lexical {
					t.Errorf("kind = %v, want lexical", d.Kind)
				}

				msgs = append(msgs, d.Message)
			}

			if !slices.Equal(msgs, tt.messages) {
				t.Errorf("messages = %q, want %q", msgs, tt.messages)
			}

			if got := kinds(toks); !slices.Equal(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	toks, _ := scan(t, `var x = 2.5; "s"`)

	want := []string{
		"VAR var nil",
		"IDENTIFIER x nil",
		"EQUAL = nil",
		"NUMBER 2.5 2.5",
		"SEMICOLON ; nil",
		`STRING "s" s`,
		"EOF  nil",
	}

	for i, tok := range toks {
		if got := tok.String(); got != want[i] {
			t.Errorf("token %d = %q, want %q", i, got, want[i])
		}
	}
}
