package token

//go:generate go tool stringer --linecomment --type Kind --output kind_string.go

// Kind identifies the lexical category of a [Token].
type Kind uint8

const (
	// Single-character tokens.
	LeftParen  Kind = iota // LEFT_PAREN
	RightParen             // RIGHT_PAREN
	LeftBrace              // LEFT_BRACE
	RightBrace             // RIGHT_BRACE
	Comma                  // COMMA
	Dot                    // DOT
	Minus                  // MINUS
	Plus                   // PLUS
	Semicolon              // SEMICOLON
	Slash                  // SLASH
	Star                   // STAR

	// One or two character tokens.
	Bang         // BANG
	BangEqual    // BANG_EQUAL
	Equal        // EQUAL
	EqualEqual   // EQUAL_EQUAL
	Greater      // GREATER
	GreaterEqual // GREATER_EQUAL
	Less         // LESS
	LessEqual    // LESS_EQUAL

	// Literals.
	Identifier // IDENTIFIER
	String     // STRING
	Number     // NUMBER

	// Keywords.
	And    // AND
	Class  // CLASS
	Else   // ELSE
	False  // FALSE
	Fun    // FUN
	For    // FOR
	If     // IF
	Nil    // NIL
	Or     // OR
	Print  // PRINT
	Return // RETURN
	Super  // SUPER
	This   // THIS
	True   // TRUE
	Var    // VAR
	While  // WHILE

	EOF // EOF
)

// keywords maps reserved words to their kinds.
var keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Lookup returns the keyword kind for ident, or [Identifier] if ident is not
// reserved.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}

	return Identifier
}

// Keywords returns the reserved words in no particular order.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for w := range keywords {
		words = append(words, w)
	}

	return words
}

// StartsDeclaration reports whether k begins a statement or declaration.
// The parser uses it to find a recovery point after a syntax error.
func (k Kind) StartsDeclaration() bool {
	switch k {
	case Class, Fun, Var, For, If, While, Print, Return:
		return true
	}

	return false
}
