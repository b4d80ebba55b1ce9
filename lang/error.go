package lang

import (
	"errors"
	"log/slog"
	"slices"
)

var (
	ErrReadInput     = NewError("failed to read input")
	ErrCompile       = NewError("compile error")
	ErrRuntime       = NewError("runtime error")
	ErrDefine        = NewError("invalid definition")
	ErrInvalidName   = NewError("invalid variable name")
	ErrInvalidResult = NewError("unsupported result type")
)

// Error is an error carrying [slog.Attr] context for the log record that
// eventually reports it.
//
// Errors are immutable. [Error.Wrap] and [Error.With] derive new errors that
// still match their sentinel under [errors.Is], so callers can attach a cause
// or attributes to ErrCompile and test for ErrCompile later.
type Error struct {
	text  string
	cause error
	attrs []slog.Attr
	kind  *Error // sentinel this error derives from, nil for a sentinel
}

// NewError returns a new sentinel error.
func NewError(text string) *Error {
	return &Error{text: text}
}

// WrapError returns the first *Error in the chain of err, or err wrapped in
// an anonymous *Error if there is none.
func WrapError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{cause: err}
}

func (e *Error) Error() string {
	switch {
	case e.cause == nil:
		return e.text
	case e.text == "":
		return e.cause.Error()
	}

	return e.text + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is e or the sentinel e derives from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && e.sentinel() == t.sentinel()
}

func (e *Error) sentinel() *Error {
	if e.kind == nil {
		return e
	}

	return e.kind
}

func (e *Error) derive(cause error, attrs []slog.Attr) *Error {
	return &Error{text: e.text, cause: cause, attrs: attrs, kind: e.sentinel()}
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error { return e.derive(err, e.attrs) }

// With returns a copy of e with attrs appended to its attributes.
func (e *Error) With(attrs ...slog.Attr) *Error {
	return e.derive(e.cause, slices.Concat(e.attrs, attrs))
}

func (e *Error) Attrs() []slog.Attr { return slices.Clip(e.attrs) }

// LogValue groups the message, the cause and the attributes of e.
func (e *Error) LogValue() slog.Value {
	group := make([]slog.Attr, 0, 2+len(e.attrs))

	if e.text != "" {
		group = append(group, slog.String("error", e.text))
	}

	if e.cause != nil {
		group = append(group, slog.Any("cause", e.cause))
	}

	return slog.GroupValue(append(group, e.attrs...)...)
}
