package diag

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
	"github.com/tevino/abool/v2"

	"github.com/ardnew/lox/log"
)

// Collector is a [Reporter] that records every diagnostic, optionally echoes
// it to a writer, and tracks whether any static or runtime error was seen.
//
// The error flags are safe to read from other goroutines while a program is
// running.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic

	hadError        *abool.AtomicBool
	hadRuntimeError *abool.AtomicBool

	output io.Writer
	color  *color.Color
	logger log.Logger
	ctx    context.Context
}

// CollectorOption configures a [Collector].
type CollectorOption func(*Collector)

// WithOutput echoes each diagnostic to w as it is reported.
func WithOutput(w io.Writer) CollectorOption {
	return func(c *Collector) { c.output = w }
}

// WithColor controls whether echoed diagnostics are colorized.
func WithColor(enable bool) CollectorOption {
	return func(c *Collector) {
		if enable {
			c.color.EnableColor()
		} else {
			c.color.DisableColor()
		}
	}
}

// WithLogger traces each diagnostic to logger.
func WithLogger(logger log.Logger) CollectorOption {
	return func(c *Collector) { c.logger = logger }
}

// WithContext sets the context passed to the logger.
func WithContext(ctx context.Context) CollectorOption {
	return func(c *Collector) { c.ctx = ctx }
}

// NewCollector returns an empty collector.
func NewCollector(opts ...CollectorOption) *Collector {
	c := &Collector{
		hadError:        abool.New(),
		hadRuntimeError: abool.New(),
		color:           color.New(color.FgRed),
		ctx:             context.Background(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Report implements [Reporter].
func (c *Collector) Report(d Diagnostic) {
	if d.Kind.Static() {
		c.hadError.Set()
	} else {
		c.hadRuntimeError.Set()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = append(c.diagnostics, d)

	c.logger.DebugContext(c.ctx, "diagnostic", slog.Any("diagnostic", d))

	if c.output != nil {
		_, _ = c.color.Fprintln(c.output, d.String())
	}
}

// HadError reports whether a lexical, syntax or resolution error was seen.
func (c *Collector) HadError() bool { return c.hadError.IsSet() }

// HadRuntimeError reports whether a runtime error was seen.
func (c *Collector) HadRuntimeError() bool { return c.hadRuntimeError.IsSet() }

// Diagnostics returns a copy of the diagnostics reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)

	return out
}

// Len returns the number of diagnostics reported so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.diagnostics)
}

// Reset clears the recorded diagnostics and both error flags.
// The interactive prompt calls it between lines.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.diagnostics = c.diagnostics[:0]
	c.hadError.UnSet()
	c.hadRuntimeError.UnSet()
}
