package repl

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/ardnew/lox/lang"
	"github.com/ardnew/lox/log"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"1 + 2", "1 + 2;"},
		{"  a  ", "a;"},
		{"print a;", "print a;"},
		{"fun f() { return 1; }", "fun f() { return 1; }"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := normalize(tt.line); got != tt.want {
				t.Errorf("normalize(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestSession_Eval(t *testing.T) {
	s := newSession(log.Logger{})

	steps := []struct {
		line   string
		output string
		errors []string
	}{
		{"var a = 20", "", nil},
		{"a + 1", "21\n", nil},
		{`"s" + "t"`, "st\n", nil},
		{"fun twice(x) { return x * 2; }", "", nil},
		{"twice(a)", "40\n", nil},
		{"print ;", "", []string{"[line 1] Error at ';': Expect expression."}},
		{"-nil", "", []string{"Operand must be a number.\n[line 1]"}},
		{"print a", "20\n", nil},
	}

	for _, step := range steps {
		r := s.eval(t.Context(), step.line)

		if r.output != step.output {
			t.Errorf("eval(%q) output = %q, want %q", step.line, r.output, step.output)
		}

		if strings.Join(r.errors, "|") != strings.Join(step.errors, "|") {
			t.Errorf("eval(%q) errors = %q, want %q", step.line, r.errors, step.errors)
		}
	}
}

func TestSession_Load(t *testing.T) {
	s := newSession(log.Logger{})

	r, err := s.load(t.Context(), strings.NewReader("class P { hi() { return \"hi\"; } }\nprint P().hi();"))
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if r.output != "hi\n" {
		t.Errorf("output = %q", r.output)
	}

	if got := preview(s.lookup("P")); got != "class" {
		t.Errorf("preview(P) = %q", got)
	}

	r, err = s.load(t.Context(), strings.NewReader("var = 1;"))
	if !errors.Is(err, lang.ErrCompile) {
		t.Fatalf("load() error = %v, want ErrCompile", err)
	}

	if len(r.errors) != 1 {
		t.Errorf("errors = %q", r.errors)
	}

	// Diagnostics do not leak into the next run.
	if r := s.eval(t.Context(), "1"); len(r.errors) != 0 || r.output != "1\n" {
		t.Errorf("eval after failed load = %+v", r)
	}
}

func TestSession_Define(t *testing.T) {
	s := newSession(log.Logger{})

	if err := s.define(map[string]string{"w": "2 * 21", "name": `"lox"`}); err != nil {
		t.Fatalf("define() error = %v", err)
	}

	if r := s.eval(t.Context(), "name + w"); len(r.errors) != 1 {
		t.Errorf("mixed add errors = %q", r.errors)
	}

	if r := s.eval(t.Context(), "w"); r.output != "42\n" {
		t.Errorf("w = %q", r.output)
	}

	if err := s.define(map[string]string{"bad name": "1"}); !errors.Is(err, lang.ErrInvalidName) {
		t.Errorf("define() error = %v, want ErrInvalidName", err)
	}
}

func TestPreview(t *testing.T) {
	s := newSession(log.Logger{})

	s.eval(t.Context(), "class A {}")
	s.eval(t.Context(), "class B < A { init(x) {} }")
	s.eval(t.Context(), "fun f(a, b) {}")
	s.eval(t.Context(), `var str = "q"`)
	s.eval(t.Context(), "var n = 1.5")
	s.eval(t.Context(), "var b = B(1)")

	tests := map[string]string{
		"A":       "class",
		"B":       "class < A",
		"f":       "fun(a, b)",
		"str":     `"q"`,
		"n":       "1.5",
		"b":       "B instance",
		"clock":   "native fun/0",
		"missing": "<undefined>",
	}

	for name, want := range tests {
		if got := preview(s.lookup(name)); got != want {
			t.Errorf("preview(%s) = %q, want %q", name, got, want)
		}
	}
}

func TestSession_EvalInterrupted(t *testing.T) {
	s := newSession(log.Logger{})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if r := s.eval(ctx, "while (true) {}"); !slices.Equal(r.errors, []string{"Interrupted."}) {
		t.Errorf("eval under canceled context errors = %q", r.errors)
	}

	ctx, cancel = context.WithCancel(t.Context())
	stop := time.AfterFunc(20*time.Millisecond, cancel)
	t.Cleanup(func() { stop.Stop() })

	r := s.eval(ctx, "var i = 0; while (true) { i = i + 1; }")
	if !slices.Equal(r.errors, []string{"Interrupted."}) {
		t.Errorf("eval of runaway loop errors = %q", r.errors)
	}

	// The session survives the interrupt with the state it had reached.
	if r := s.eval(t.Context(), "i > 0"); r.output != "true\n" || len(r.errors) != 0 {
		t.Errorf("eval after interrupt = %+v", r)
	}
}
