package lang

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"sentinel", ErrDefine, "invalid definition"},
		{"wrapped", ErrDefine.Wrap(errors.New("unexpected token")), "invalid definition: unexpected token"},
		{"anonymous", WrapError(errors.New("unexpected token")), "unexpected token"},
		{"zero", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_With(t *testing.T) {
	first := ErrCompile.With(slog.Int("diagnostics", 1))
	second := first.With(slog.String("file", "a.lox"))

	if len(ErrCompile.Attrs()) != 0 || len(first.Attrs()) != 1 {
		t.Errorf("With mutated its receiver: %v, %v", ErrCompile.Attrs(), first.Attrs())
	}

	if got := second.Attrs(); len(got) != 2 || got[1].Key != "file" {
		t.Errorf("Attrs() = %v", got)
	}

	if wrapped := second.Wrap(errors.New("x")); len(wrapped.Attrs()) != 2 {
		t.Errorf("Wrap dropped attributes: %v", wrapped.Attrs())
	}
}

func TestError_Is(t *testing.T) {
	derived := ErrCompile.With(slog.Int("line", 3))
	wrapped := ErrRuntime.Wrap(errors.New("boom")).With(slog.Int("line", 1))

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"derived matches sentinel", derived, ErrCompile, true},
		{"derived rejects other", derived, ErrRuntime, false},
		{"wrapped matches sentinel", wrapped, ErrRuntime, true},
		{"sentinels differ", ErrCompile, ErrRuntime, false},
		{"sentinel matches derived", ErrCompile, derived, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := NewError("inner")
	outer := NewError("outer").Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap() did not return the cause")
	}

	if !errors.Is(outer, inner) {
		t.Error("errors.Is did not find the cause")
	}
}

func TestWrapError(t *testing.T) {
	plain := errors.New("plain")
	if got := WrapError(plain); got.cause != plain || got.text != "" {
		t.Errorf("WrapError(plain) = %#v", got)
	}

	derived := ErrReadInput.With(slog.String("path", "-"))
	if got := WrapError(derived); got != derived {
		t.Error("WrapError did not return the existing *Error")
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrDefine.Wrap(errors.New("bad")).With(slog.String("name", "x"))

	group := err.LogValue().Group()

	keys := make([]string, len(group))
	for i, a := range group {
		keys[i] = a.Key
	}

	if len(keys) != 3 || keys[0] != "error" || keys[1] != "cause" || keys[2] != "name" {
		t.Errorf("LogValue keys = %v", keys)
	}
}
