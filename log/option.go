package log

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultTimeLayout is the timestamp layout of a new [Logger].
	DefaultTimeLayout = time.RFC3339
	// DefaultCaller reports whether a new [Logger] records the call site.
	DefaultCaller = false
	// DefaultPretty reports whether a new [Logger] colorizes its output.
	DefaultPretty = true
)

// Option changes one setting of a [Logger] under construction.
type Option func(*settings)

type settings struct {
	out    io.Writer
	stamp  func(time.Time) string // nil omits timestamps
	level  Level
	format Format
	caller bool
	pretty bool
}

func defaults(w io.Writer) settings {
	if w == nil {
		w = io.Discard
	}

	return settings{
		out:    w,
		stamp:  stamper(DefaultTimeLayout),
		level:  DefaultLevel,
		format: DefaultFormat,
		caller: DefaultCaller,
		pretty: DefaultPretty,
	}
}

func (s settings) with(opts ...Option) settings {
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithDefaults resets every setting to its default, writing to w.
func WithDefaults(w io.Writer) Option {
	return func(s *settings) { *s = defaults(w) }
}

// WithOutput sets the destination of log records. A nil writer discards them.
func WithOutput(w io.Writer) Option {
	if w == nil {
		w = io.Discard
	}

	return func(s *settings) { s.out = w }
}

// WithLevel sets the minimum level of records that are written.
func WithLevel(level Level) Option {
	return func(s *settings) { s.level = level }
}

func WithFormat(format Format) Option {
	return func(s *settings) { s.format = format }
}

// WithTimeLayout sets the timestamp layout. The name of a layout constant
// from package time, such as "RFC3339Nano" or "Kitchen", is matched without
// regard to case or punctuation. Any other string is used as a layout
// verbatim. An empty layout, or "none", omits timestamps.
func WithTimeLayout(layout string) Option {
	stamp := stamper(layout)

	return func(s *settings) { s.stamp = stamp }
}

// WithCaller records the file and line of each log call.
func WithCaller(enable bool) Option {
	return func(s *settings) { s.caller = enable }
}

// WithPretty selects the colorized handlers. Pretty text drops quoting and
// pretty JSON is indented one field per line.
func WithPretty(enable bool) Option {
	return func(s *settings) { s.pretty = enable }
}

// handler builds the [slog.Handler] described by s.
func (s settings) handler() slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   s.caller,
		Level:       slog.Level(s.level),
		ReplaceAttr: s.replace,
	}

	switch s.format {
	case FormatText:
		if s.pretty {
			return newPrettyHandler(s.out, opts, textLayout)
		}

		return slog.NewTextHandler(s.out, opts)

	case FormatJSON:
		if s.pretty {
			return newPrettyHandler(s.out, opts, jsonLayout)
		}

		return slog.NewJSONHandler(s.out, opts)
	}

	return slog.DiscardHandler
}

// replace rewrites the built-in attributes: timestamps use the configured
// layout, levels use [Level.String] in upper case, and the call site is
// shortened to file:line.
func (s settings) replace(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}

	switch a.Key {
	case slog.TimeKey:
		if a.Value.Kind() != slog.KindTime {
			break
		}

		if s.stamp == nil {
			return slog.Attr{}
		}

		return slog.String(a.Key, s.stamp(a.Value.Time()))

	case slog.LevelKey:
		if l, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(a.Key, strings.ToUpper(Level(l).String()))
		}

	case slog.SourceKey:
		if src, ok := a.Value.Any().(*slog.Source); ok && src != nil {
			return slog.String(a.Key,
				fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
		}
	}

	return a
}

var namedLayouts = map[string]string{
	"layout":      time.Layout,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"rfc1123":     time.RFC1123,
	"rfc1123z":    time.RFC1123Z,
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
}

// stamper returns the timestamp formatter for layout, or nil if timestamps
// are disabled.
func stamper(layout string) func(time.Time) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}

		return -1
	}, layout)

	if key == "none" || strings.TrimSpace(layout) == "" {
		return nil
	}

	if named, ok := namedLayouts[key]; ok {
		layout = named
	}

	return func(t time.Time) string { return t.Format(layout) }
}
