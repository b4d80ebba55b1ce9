package lang

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/resolver"
	"github.com/ardnew/lox/lang/runtime"
)

// Run parses, resolves and executes text.
//
// Execution does not begin if scanning, parsing or resolution reported any
// error; an [ErrCompile] error is returned instead. A runtime error is
// reported and returned wrapped in [ErrRuntime].
func Run(ctx context.Context, text string, opts ...Option) error {
	src, err := Parse(ctx, text, opts...)
	if err != nil {
		return err
	}

	return Execute(ctx, src, opts...)
}

// Execute resolves and executes a parsed source. A source with diagnostics
// is rejected with [ErrCompile] without being resolved.
func Execute(ctx context.Context, src *Source, opts ...Option) error {
	if err := src.Err(); err != nil {
		return err
	}

	cfg := makeConfig(opts...)
	in := cfg.interpreter()

	for _, name := range cfg.defineNames() {
		if err := Define(in, name, cfg.defines[name]); err != nil {
			return err
		}
	}

	c := diag.NewCollector(diag.WithLogger(cfg.logger), diag.WithContext(ctx))

	resolver.New(in, diag.Tee(c, cfg.reporter)).Resolve(src.Program)

	cfg.logger.TraceContext(
		ctx,
		"resolve",
		slog.Int("statements", len(src.Program)),
		slog.Int("diagnostics", c.Len()),
	)

	if c.HadError() {
		d := c.Diagnostics()

		return ErrCompile.With(
			slog.Int("diagnostics", len(d)),
			slog.Int("line", d[0].Line),
		)
	}

	if e, ok := echoExpr(cfg, src.Program); ok {
		v, err := in.Evaluate(ctx, e)
		if err != nil {
			return wrapRuntime(err)
		}

		_, _ = io.WriteString(cfg.output, v.String()+"\n")

		return nil
	}

	return wrapRuntime(in.Interpret(ctx, src.Program))
}

// echoExpr returns the expression of a program made of one expression
// statement, when echo is enabled.
func echoExpr(cfg config, prog []ast.Stmt) (ast.Expr, bool) {
	if !cfg.echo || len(prog) != 1 {
		return nil, false
	}

	s, ok := prog[0].(*ast.Expression)
	if !ok {
		return nil, false
	}

	return s.Expression, true
}

func wrapRuntime(err error) error {
	var rerr *runtime.Error
	if errors.As(err, &rerr) {
		return ErrRuntime.Wrap(err).With(slog.Int("line", rerr.Token.Line))
	}

	return err
}
