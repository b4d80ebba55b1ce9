package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/lox/lang"
)

func TestTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "script.lox", "var a = 1;\nprint \"hi\";")

	var err error

	stdout, _ := captureOutput(t, func() {
		err = (&Tokens{Source: path}).Run(t.Context())
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"VAR var nil",
		"IDENTIFIER a nil",
		"EQUAL = nil",
		"NUMBER 1 1",
		"SEMICOLON ; nil",
		"PRINT print nil",
		"STRING \"hi\" hi",
		"SEMICOLON ; nil",
		"EOF  nil",
	}

	if got := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n"); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("tokens:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestTokens_LexicalError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "script.lox", "var @ = 1;")

	var err error

	stdout, stderr := captureOutput(t, func() {
		err = (&Tokens{Source: path}).Run(t.Context())
	})

	if !errors.Is(err, lang.ErrCompile) {
		t.Errorf("Run() error = %v, want ErrCompile", err)
	}

	if !strings.Contains(stderr, "[line 1] Error: Unexpected character.") {
		t.Errorf("stderr = %q", stderr)
	}

	if !strings.Contains(stdout, "EOF  nil") {
		t.Errorf("stdout = %q, want scanning to continue to EOF", stdout)
	}
}
