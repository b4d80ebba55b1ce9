package runtime

import (
	"log/slog"

	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
)

// Error is a runtime error raised while executing a program. It aborts the
// current call to [Interpreter.Interpret].
type Error struct {
	Token   token.Token
	Message string
}

// NewError returns a runtime error located at tok.
func NewError(tok token.Token, msg string) *Error {
	return &Error{Token: tok, Message: msg}
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Diagnostic().String() }

// Diagnostic returns the error as a reportable diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	return diag.AtToken(diag.Runtime, e.Token, e.Message)
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Message),
		slog.Int("line", e.Token.Line),
		slog.String("lexeme", e.Token.Lexeme),
	)
}
