package repl

import (
	"slices"
	"strings"
	"testing"

	"github.com/ardnew/lox/log"
)

func TestDetectFunctionCall(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		want   functionCall
	}{
		{"no call", "greeting", 8, functionCall{}},
		{"first arg", "add(", 4, functionCall{"add", 0, true}},
		{"first arg typed", "add(1", 5, functionCall{"add", 0, true}},
		{"second arg", "add(1,", 6, functionCall{"add", 1, true}},
		{"nested closed", "add(f(1, 2), ", 13, functionCall{"add", 1, true}},
		{"nested open", "add(1, f(2", 10, functionCall{"f", 0, true}},
		{"closed", "add(1, 2)", 9, functionCall{}},
		{"grouping", "(1 + 2", 6, functionCall{}},
		{"method", "obj.m(1, ", 9, functionCall{"m", 1, true}},
		{"cursor inside", "add(1, 2)", 5, functionCall{"add", 0, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectFunctionCall(tt.input, tt.cursor); got != tt.want {
				t.Errorf("detectFunctionCall(%q, %d) = %+v, want %+v",
					tt.input, tt.cursor, got, tt.want)
			}
		})
	}
}

func TestSession_Signature(t *testing.T) {
	s := newSession(log.Logger{})

	for _, line := range []string{
		"fun add(a, b) { return a + b; }",
		"class P { init(x, y) {} }",
		"class Q {}",
		"var n = 1",
	} {
		s.eval(t.Context(), line)
	}

	tests := []struct {
		name   string
		params []string
		ok     bool
	}{
		{"add", []string{"a", "b"}, true},
		{"P", []string{"x", "y"}, true},
		{"Q", nil, true},
		{"clock", []string{}, true},
		{"n", nil, false},
		{"missing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := s.signature(tt.name)
			if ok != tt.ok || !slices.Equal(params, tt.params) {
				t.Errorf("signature(%q) = %v, %v, want %v, %v",
					tt.name, params, ok, tt.params, tt.ok)
			}
		})
	}
}

func TestRenderSignatureHint(t *testing.T) {
	hint := renderSignatureHint("add", []string{"a", "b"}, 1)
	for _, want := range []string{"add", "a", "b"} {
		if !strings.Contains(hint, want) {
			t.Errorf("hint %q does not contain %q", hint, want)
		}
	}

	if strings.Contains(hint, "too many") {
		t.Errorf("hint %q reports too many arguments", hint)
	}

	if hint := renderSignatureHint("add", []string{"a"}, 1); !strings.Contains(hint, "too many") {
		t.Errorf("hint %q does not report too many arguments", hint)
	}
}
