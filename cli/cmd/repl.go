package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/lox/cli/cmd/repl"
	"github.com/ardnew/lox/log"
)

// Repl starts an interactive session.
type Repl struct{}

// Run executes the repl command.
//
// Scripts given with the global --source flag are run first, on the same
// interpreter, so their declarations are visible at the prompt.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	var preload io.Reader

	if sources := OpenSourceFiles(ctx, sourcesFrom(ctx)); sources != nil {
		defer sources.Close()

		log.DebugContext(ctx, "repl preload",
			slog.Int("sources", sources.Len()),
		)

		preload = sources
	}

	return repl.Run(ctx, preload, cacheDirFrom(ctx), definesFrom(ctx), log.Default())
}

// cacheDirFrom returns the runtime cache directory from the kong variables,
// or the empty string when the command was not started by kong.
func cacheDirFrom(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[CacheIdentifier]
}
