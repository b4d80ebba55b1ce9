package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/ardnew/lox/lang"
)

// captureOutput runs fn with os.Stdout and os.Stderr redirected, and returns
// what was written to each.
func captureOutput(t *testing.T, fn func()) (stdout, stderr string) {
	t.Helper()

	oldOut, oldErr := os.Stdout, os.Stderr

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	errR, errW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	var (
		wg      sync.WaitGroup
		out, eb bytes.Buffer
	)

	wg.Go(func() { io.Copy(&out, outR) })
	wg.Go(func() { io.Copy(&eb, errR) })

	os.Stdout, os.Stderr = outW, errW

	defer func() {
		os.Stdout, os.Stderr = oldOut, oldErr
	}()

	fn()

	outW.Close()
	errW.Close()
	wg.Wait()

	return out.String(), eb.String()
}

func TestRun(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		defines    map[string]string
		wantOut    string
		wantStderr string
		wantErr    error
	}{
		{
			name:    "prints",
			source:  "print 1 + 2;\nprint \"a\" + \"b\";",
			wantOut: "3\nab\n",
		},
		{
			name:    "closure",
			source:  "fun mk() { var n = 0; fun inc() { n = n + 1; return n; } return inc; }\nvar c = mk(); c(); print c();",
			wantOut: "2\n",
		},
		{
			name:    "defines",
			source:  "print x;",
			defines: map[string]string{"x": "40 + 2"},
			wantOut: "42\n",
		},
		{
			name:       "compile error",
			source:     "print \"never\";\nprint ;",
			wantStderr: "[line 2] Error at ';': Expect expression.",
			wantErr:    lang.ErrCompile,
		},
		{
			name:       "runtime error",
			source:     "print 1;\nprint -\"a\";",
			wantOut:    "1\n",
			wantStderr: "Operand must be a number.\n[line 2]",
			wantErr:    lang.ErrRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "script.lox", tt.source)
			ctx := WithDefines(t.Context(), tt.defines)

			var err error

			stdout, stderr := captureOutput(t, func() {
				err = (&Run{Source: path}).Run(ctx)
			})

			switch {
			case tt.wantErr == nil && err != nil:
				t.Fatalf("Run() error = %v", err)
			case tt.wantErr != nil && !errors.Is(err, tt.wantErr):
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}

			if stdout != tt.wantOut {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantOut)
			}

			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_MissingSource(t *testing.T) {
	err := (&Run{Source: "/nonexistent/script.lox"}).Run(t.Context())
	if ExitCode(err) != ExitNoInput {
		t.Errorf("ExitCode(%v) = %d, want %d", err, ExitCode(err), ExitNoInput)
	}
}
