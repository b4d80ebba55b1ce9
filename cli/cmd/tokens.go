package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ardnew/lox/lang"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/lexer"
	"github.com/ardnew/lox/log"
)

// Tokens prints the scanner output of a script, one token per line.
type Tokens struct {
	Source string `arg:"" default:"-" help:"Script file or '-' for stdin." name:"source"`
}

// Run executes the tokens command.
//
// Lexical errors are written to stderr, but every token is still printed,
// including the final EOF.
func (t *Tokens) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := openSource(t.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	text, err := io.ReadAll(file)
	if err != nil {
		return lang.ErrReadInput.With(slog.String("source", t.Source)).Wrap(err)
	}

	logger := log.Default().With(slog.String("source", t.Source))

	reporter := diag.NewCollector(
		diag.WithOutput(os.Stderr),
		diag.WithLogger(logger),
		diag.WithContext(ctx),
	)

	tokens := lexer.New(string(text), reporter).ScanTokens()

	for _, tok := range tokens {
		if _, err := fmt.Fprintln(os.Stdout, tok.String()); err != nil {
			return err
		}
	}

	logger.TraceContext(ctx, "scanned",
		slog.Int("tokens", len(tokens)),
		slog.Int("errors", reporter.Len()),
	)

	if reporter.HadError() {
		return lang.ErrCompile.With(slog.Int("diagnostics", reporter.Len()))
	}

	return nil
}
