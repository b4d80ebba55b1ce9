package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

// layout selects how a prettyHandler lays out a record.
type layout int

const (
	textLayout layout = iota // key=value pairs on one line
	jsonLayout               // one "key": value field per line
)

var (
	keyColor      = color.New(color.FgHiBlack)
	stringColor   = color.New(color.FgCyan)
	numberColor   = color.New(color.FgYellow)
	trueColor     = color.New(color.FgGreen)
	falseColor    = color.New(color.FgRed)
	timeColor     = color.New(color.FgBlue)
	durationColor = color.New(color.FgMagenta)
)

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= slog.LevelError:
		return color.New(color.FgRed, color.Bold)
	case l >= slog.LevelWarn:
		return color.New(color.FgYellow)
	case l >= slog.LevelInfo:
		return color.New(color.FgGreen)
	case l >= slog.LevelDebug:
		return color.New(color.FgBlue)
	}

	return color.New(color.FgHiBlack)
}

// prettyHandler is a colorized [slog.Handler] for terminals. Colors follow
// [color.NoColor], so output to a pipe or file is plain.
type prettyHandler struct {
	opts   slog.HandlerOptions
	layout layout
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	group  string // key prefix of the open groups, each followed by '.'
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	layout layout,
) *prettyHandler {
	return &prettyHandler{opts: *opts, layout: layout, mu: new(sync.Mutex), w: w}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.attrs = flatten(h.attrs[:len(h.attrs):len(h.attrs)], h.group, attrs...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.group += name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		fields = h.builtin(fields, slog.Time(slog.TimeKey, r.Time))
	}

	fields = h.builtin(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = h.builtin(fields, slog.Any(slog.SourceKey, src))
		}
	}

	fields = h.builtin(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = flatten(fields, h.group, a)

		return true
	})

	var buf bytes.Buffer

	switch h.layout {
	case jsonLayout:
		buf.WriteString("{\n")

		for i, a := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			buf.WriteString(keyColor.Sprint(strconv.Quote(a.Key)))
			buf.WriteString(": ")
			buf.WriteString(h.value(a, r.Level))
		}

		buf.WriteString("\n}\n")

	default:
		for i, a := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(keyColor.Sprint(a.Key))
			buf.WriteByte('=')
			buf.WriteString(h.value(a, r.Level))
		}

		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

// builtin appends a record attribute after passing it through ReplaceAttr.
func (h *prettyHandler) builtin(fields []slog.Attr, a slog.Attr) []slog.Attr {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Key == "" {
		return fields
	}

	return append(fields, a)
}

// flatten appends attrs with group members hoisted to dotted keys.
func flatten(fields []slog.Attr, prefix string, attrs ...slog.Attr) []slog.Attr {
	for _, a := range attrs {
		a.Value = a.Value.Resolve()

		if a.Value.Kind() == slog.KindGroup {
			sub := prefix
			if a.Key != "" {
				sub += a.Key + "."
			}

			fields = flatten(fields, sub, a.Value.Group()...)

			continue
		}

		if a.Equal(slog.Attr{}) {
			continue
		}

		a.Key = prefix + a.Key
		fields = append(fields, a)
	}

	return fields
}

// value renders the colorized value of a. Strings are quoted in the JSON
// layout only.
func (h *prettyHandler) value(a slog.Attr, level slog.Level) string {
	v := a.Value

	quote := func(s string) string {
		if h.layout == jsonLayout {
			return strconv.Quote(s)
		}

		return s
	}

	if a.Key == slog.LevelKey {
		return levelColor(level).Sprint(quote(v.String()))
	}

	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return numberColor.Sprint(v.String())

	case slog.KindBool:
		if v.Bool() {
			return trueColor.Sprint("true")
		}

		return falseColor.Sprint("false")

	case slog.KindDuration:
		return durationColor.Sprint(quote(v.Duration().String()))

	case slog.KindTime:
		return timeColor.Sprint(quote(v.Time().String()))

	case slog.KindAny:
		if v.Any() == nil && h.layout == jsonLayout {
			return keyColor.Sprint("null")
		}
	}

	return stringColor.Sprint(quote(v.String()))
}
