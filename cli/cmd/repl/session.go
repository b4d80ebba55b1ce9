package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/lox/lang"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/runtime"
	"github.com/ardnew/lox/log"
)

// session owns the interpreter shared by every line entered at the prompt.
type session struct {
	in     *runtime.Interpreter
	out    *bytes.Buffer
	diag   *diag.Collector
	logger log.Logger
}

// result is the outcome of running one line.
type result struct {
	output string
	errors []string
}

func newSession(logger log.Logger) *session {
	s := &session{
		out:    new(bytes.Buffer),
		diag:   diag.NewCollector(diag.WithLogger(logger)),
		logger: logger,
	}

	s.in = runtime.New(
		runtime.WithOutput(s.out),
		runtime.WithReporter(s.diag),
		runtime.WithLogger(logger),
	)

	return s
}

// define sets each global once, in name order.
func (s *session) define(defs map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		if err := lang.Define(s.in, name, defs[name]); err != nil {
			return err
		}
	}

	return nil
}

// load runs a whole program, such as a file given on the command line.
func (s *session) load(ctx context.Context, r io.Reader) (result, error) {
	src, err := lang.ParseReader(ctx, r, lang.WithReporter(s.diag))
	if err != nil && !errors.Is(err, lang.ErrCompile) {
		return result{}, err
	}

	if err == nil {
		err = lang.Execute(ctx, src,
			lang.WithInterpreter(s.in),
			lang.WithReporter(s.diag),
			lang.WithLogger(s.logger),
		)
	}

	return s.drain(), err
}

// eval runs a single prompt line with echo enabled.
func (s *session) eval(ctx context.Context, line string) result {
	err := lang.Run(ctx, normalize(line),
		lang.WithInterpreter(s.in),
		lang.WithReporter(s.diag),
		lang.WithOutput(s.out),
		lang.WithEcho(true),
		lang.WithLogger(s.logger),
	)

	r := s.drain()

	if errors.Is(err, context.Canceled) {
		r.errors = append(r.errors, "Interrupted.")
	} else if err != nil && len(r.errors) == 0 {
		r.errors = append(r.errors, err.Error())
	}

	s.logger.TraceContext(ctx, "repl eval",
		slog.String("input", line),
		slog.Int("errors", len(r.errors)),
	)

	return r
}

// drain collects and clears the output and diagnostics of the last run.
func (s *session) drain() result {
	var r result

	r.output = s.out.String()
	s.out.Reset()

	for _, d := range s.diag.Diagnostics() {
		r.errors = append(r.errors, d.String())
	}

	s.diag.Reset()

	return r
}

// globals returns the names defined in the global scope.
func (s *session) globals() []string { return s.in.Globals().Names() }

// lookup returns the value of a global, or nil if it is undefined.
func (s *session) lookup(name string) runtime.Value {
	if !slices.Contains(s.globals(), name) {
		return nil
	}

	return s.in.Globals().GetAt(0, name)
}

// normalize terminates a line that does not already end a statement or
// block, so a bare expression can be typed without its semicolon.
func normalize(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasSuffix(line, ";") || strings.HasSuffix(line, "}") {
		return line
	}

	return line + ";"
}
