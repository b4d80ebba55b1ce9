package runtime

import (
	"io"
	"time"

	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/log"
)

// Option configures an [Interpreter].
type Option func(*Interpreter)

// WithOutput sets the writer that receives print statement output.
// A nil writer discards output.
func WithOutput(w io.Writer) Option {
	return func(in *Interpreter) {
		if w == nil {
			w = io.Discard
		}

		in.output = w
	}
}

// WithReporter sets the reporter that receives runtime errors.
func WithReporter(r diag.Reporter) Option {
	return func(in *Interpreter) {
		if r == nil {
			r = diag.Discard
		}

		in.reporter = r
	}
}

// WithNatives replaces the default native functions with natives.
func WithNatives(natives ...*Native) Option {
	return func(in *Interpreter) { in.natives = natives }
}

// WithClock sets the time source used by the "clock" native.
func WithClock(now func() time.Time) Option {
	return func(in *Interpreter) {
		if now != nil {
			in.now = now
		}
	}
}

// WithLogger sets the logger used to trace execution.
func WithLogger(logger log.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// DefaultNatives returns the native functions defined in every new
// interpreter unless replaced with [WithNatives].
func DefaultNatives() []*Native {
	return []*Native{Clock()}
}
