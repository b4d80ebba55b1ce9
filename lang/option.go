package lang

import (
	"io"
	"maps"
	"slices"

	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/runtime"
	"github.com/ardnew/lox/log"
)

// config holds the settings shared by [Parse], [Execute] and [Run].
type config struct {
	reporter diag.Reporter
	output   io.Writer
	interp   *runtime.Interpreter
	defines  map[string]string
	echo     bool
	logger   log.Logger
}

// Option configures parsing or execution.
type Option func(*config)

// WithReporter sets the reporter that receives every diagnostic.
// If not provided, diagnostics are only available from [Source.Diagnostics]
// and from the returned error.
func WithReporter(r diag.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithOutput sets the writer for print statements of a new interpreter and
// for echoed expression results.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithInterpreter runs programs on in instead of a fresh interpreter, so
// global state persists between calls.
func WithInterpreter(in *runtime.Interpreter) Option {
	return func(c *config) { c.interp = in }
}

// WithDefines pre-defines a global variable for each name, set to the value
// of the corresponding expression. See [Define].
func WithDefines(defs map[string]string) Option {
	return func(c *config) {
		if c.defines == nil {
			c.defines = make(map[string]string, len(defs))
		}

		maps.Copy(c.defines, defs)
	}
}

// WithEcho prints the value of a program consisting of a single expression
// statement instead of discarding it.
func WithEcho(echo bool) Option {
	return func(c *config) { c.echo = echo }
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func makeConfig(opts ...Option) config {
	c := config{output: io.Discard}

	for _, opt := range opts {
		opt(&c)
	}

	if c.output == nil {
		c.output = io.Discard
	}

	return c
}

// interpreter returns the configured interpreter, or a new one writing to
// the configured output.
func (c config) interpreter() *runtime.Interpreter {
	if c.interp != nil {
		return c.interp
	}

	return runtime.New(
		runtime.WithOutput(c.output),
		runtime.WithReporter(c.reporter),
		runtime.WithLogger(c.logger),
	)
}

// defineNames returns the names of the configured defines, sorted.
func (c config) defineNames() []string {
	return slices.Sorted(maps.Keys(c.defines))
}
