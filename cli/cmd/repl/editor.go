package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/ardnew/lox/lang"
)

const defaultEditor = "vi"

// editCommand implements [tea.ExecCommand]. It opens the scratch buffer in
// the user's editor and runs the saved program on the session interpreter.
// If the program does not compile, the user is offered another edit.
type editCommand struct {
	ctxFunc func() context.Context
	session *session
	buffer  string // program text; updated after every edit
	result  result
	ran     bool
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// SetStdin sets the stdin reader for the command.
func (c *editCommand) SetStdin(r io.Reader) { c.stdin = r }

// SetStdout sets the stdout writer for the command.
func (c *editCommand) SetStdout(w io.Writer) { c.stdout = w }

// SetStderr sets the stderr writer for the command.
func (c *editCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the edit-compile-retry loop. It returns [ErrEditDeclined] if
// the user gives up after a compile error.
func (c *editCommand) Run() error {
	ctx := c.ctxFunc()

	f, err := os.CreateTemp("", "lox-repl-*.lox")
	if err != nil {
		return err
	}

	path := f.Name()
	f.Close()

	defer os.Remove(path)

	for {
		if err := os.WriteFile(path, []byte(c.buffer), 0o600); err != nil {
			return err
		}

		if err := runEditor(ctx, c.stdin, c.stdout, c.stderr, path); err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		c.buffer = string(data)
		if strings.TrimSpace(c.buffer) == "" {
			return nil
		}

		r, err := c.session.load(ctx, strings.NewReader(c.buffer))

		c.session.logger.TraceContext(ctx, "repl edit",
			slog.Int("bytes", len(data)),
			slog.Bool("compiled", !errors.Is(err, lang.ErrCompile)),
		)

		if !errors.Is(err, lang.ErrCompile) {
			c.result, c.ran = r, true

			return nil
		}

		for _, msg := range r.errors {
			fmt.Fprintln(c.stderr, msg)
		}

		fmt.Fprint(c.stdout, "Re-edit? [Y/n] ")

		scanner := bufio.NewScanner(c.stdin)
		if !scanner.Scan() {
			return ErrEditDeclined
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "no":
			return ErrEditDeclined
		}
	}
}

// runEditor runs $EDITOR, or vi, on path and waits for it to exit.
func runEditor(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	path string,
) error {
	args := strings.Fields(os.Getenv("EDITOR"))
	if len(args) == 0 {
		args = []string{defaultEditor}
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	return cmd.Run()
}
