package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ardnew/lox/lang"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/log"
)

// Run executes a script.
type Run struct {
	Color bool `default:"true" help:"Colorize diagnostics on a terminal." negatable:""`

	Source string `arg:"" default:"-" help:"Script file or '-' for stdin." name:"source"`
}

// Run executes the run command.
//
// Diagnostics are written to stderr as they are reported. A script that
// fails to compile is not executed.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := openSource(r.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := log.Default().With(slog.String("source", r.Source))

	copts := []diag.CollectorOption{
		diag.WithOutput(os.Stderr),
		diag.WithLogger(logger),
		diag.WithContext(ctx),
	}

	if !r.Color {
		copts = append(copts, diag.WithColor(false))
	}

	reporter := diag.NewCollector(copts...)

	opts := []lang.Option{
		lang.WithReporter(reporter),
		lang.WithOutput(os.Stdout),
		lang.WithDefines(definesFrom(ctx)),
		lang.WithLogger(logger),
	}

	src, err := lang.ParseReader(ctx, file, opts...)
	if err != nil {
		return err
	}

	start := time.Now()
	err = lang.Execute(ctx, src, opts...)

	logger.DebugContext(ctx, "run complete",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("diagnostics", reporter.Len()),
	)

	return err
}
