package lang

import (
	"context"
	"log/slog"

	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/lexer"
	"github.com/ardnew/lox/lang/parser"
	"github.com/ardnew/lox/lang/token"
)

// Source is a scanned and parsed program.
//
// A Source is immutable once returned and may be executed any number of
// times, by any number of interpreters.
type Source struct {
	Text    string
	Tokens  []token.Token
	Program []ast.Stmt

	diagnostics []diag.Diagnostic
}

// Diagnostics returns the lexical and syntax errors found in the source.
func (s *Source) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(s.diagnostics))
	copy(out, s.diagnostics)

	return out
}

// Err returns an [ErrCompile] error if the source has diagnostics.
func (s *Source) Err() error {
	if len(s.diagnostics) == 0 {
		return nil
	}

	return ErrCompile.With(
		slog.Int("diagnostics", len(s.diagnostics)),
		slog.Int("line", s.diagnostics[0].Line),
	)
}

// Parse scans and parses text. Diagnostics are sent to the configured
// reporter; if any were found, the partial Source is returned together with
// an [ErrCompile] error.
func Parse(ctx context.Context, text string, opts ...Option) (*Source, error) {
	cfg := makeConfig(opts...)

	src := scan(ctx, text, cfg)
	src.replay(cfg.reporter)

	return src, src.Err()
}

// scan runs the lexer and parser over text, collecting diagnostics locally.
func scan(ctx context.Context, text string, cfg config) *Source {
	c := diag.NewCollector(diag.WithLogger(cfg.logger), diag.WithContext(ctx))

	toks := lexer.New(text, c).ScanTokens()

	cfg.logger.TraceContext(
		ctx,
		"scan",
		slog.Int("source_bytes", len(text)),
		slog.Int("tokens", len(toks)),
	)

	stmts := parser.New(toks, c).Parse()

	cfg.logger.TraceContext(
		ctx,
		"parse",
		slog.Int("statements", len(stmts)),
		slog.Int("diagnostics", c.Len()),
	)

	return &Source{
		Text:        text,
		Tokens:      toks,
		Program:     stmts,
		diagnostics: c.Diagnostics(),
	}
}

func (s *Source) replay(r diag.Reporter) {
	if r == nil {
		return
	}

	for _, d := range s.diagnostics {
		r.Report(d)
	}
}
