package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

// decode parses a single JSON record written by a non-pretty logger.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON record %q: %v", buf.String(), err)
	}

	return rec
}

func TestMake_Defaults(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf)

	if l.Level() != DefaultLevel {
		t.Errorf("Level() = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("Format() = %v, want %v", l.Format(), DefaultFormat)
	}

	if l.opts.caller != DefaultCaller || l.opts.pretty != DefaultPretty {
		t.Errorf("caller = %v, pretty = %v", l.opts.caller, l.opts.pretty)
	}

	l.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("debug record written at default level: %q", buf.String())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	emit := map[string]func(Logger){
		"trace": func(l Logger) { l.Trace("m") },
		"debug": func(l Logger) { l.Debug("m") },
		"info":  func(l Logger) { l.Info("m") },
		"warn":  func(l Logger) { l.Warn("m") },
		"error": func(l Logger) { l.Error("m") },
	}

	tests := []struct {
		call string
		min  Level
		want bool
	}{
		{"trace", LevelTrace, true},
		{"trace", LevelDebug, false},
		{"debug", LevelDebug, true},
		{"debug", LevelInfo, false},
		{"info", LevelInfo, true},
		{"info", LevelWarn, false},
		{"warn", LevelWarn, true},
		{"warn", LevelError, false},
		{"error", LevelError, true},
		{"error", LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.call+"@"+tt.min.String(), func(t *testing.T) {
			var buf bytes.Buffer

			emit[tt.call](Make(&buf, WithLevel(tt.min), WithPretty(false)))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("written = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogger_ContextMethods(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON), WithPretty(false))
	ctx := t.Context()

	for _, call := range []struct {
		fn    func()
		level string
	}{
		{func() { l.TraceContext(ctx, "m") }, "TRACE"},
		{func() { l.DebugContext(ctx, "m") }, "DEBUG"},
		{func() { l.InfoContext(ctx, "m") }, "INFO"},
		{func() { l.WarnContext(ctx, "m") }, "WARN"},
		{func() { l.ErrorContext(ctx, "m") }, "ERROR"},
	} {
		buf.Reset()
		call.fn()

		if got := decode(t, &buf)["level"]; got != call.level {
			t.Errorf("level = %v, want %s", got, call.level)
		}
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatJSON), WithPretty(false))
	l.Info("parse", slog.Int("statements", 7), slog.String("file", "fib.lox"))

	rec := decode(t, &buf)

	if rec["msg"] != "parse" || rec["file"] != "fib.lox" || rec["statements"] != 7.0 {
		t.Errorf("record = %v", rec)
	}

	if _, err := time.Parse(time.RFC3339, rec["time"].(string)); err != nil {
		t.Errorf("time %v is not RFC3339: %v", rec["time"], err)
	}
}

func TestLogger_Text(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText), WithPretty(false), WithTimeLayout("none"))
	l.Warn("define ignored", slog.String("name", "x"))

	const want = `level=WARN msg="define ignored" name=x` + "\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_TimeLayout(t *testing.T) {
	stamp := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		layout string
		want   string
	}{
		{"RFC3339", "2024-03-09T15:04:05Z"},
		{"rfc-3339", "2024-03-09T15:04:05Z"},
		{"Kitchen", "3:04PM"},
		{"DateOnly", "2024-03-09"},
		{"2006/01/02", "2024/03/09"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			if got := stamper(tt.layout)(stamp); got != tt.want {
				t.Errorf("stamper(%q) = %q, want %q", tt.layout, got, tt.want)
			}
		})
	}

	for _, off := range []string{"", "  ", "none", "NONE"} {
		if stamper(off) != nil {
			t.Errorf("stamper(%q) != nil", off)
		}
	}
}

func TestLogger_NoTime(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithTimeLayout(""), WithPretty(false)).Info("m")

	if _, ok := decode(t, &buf)["time"]; ok {
		t.Errorf("time present with empty layout: %s", buf.String())
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithPretty(false)).Info("m")

	src, _ := decode(t, &buf)["source"].(string)
	if !strings.HasPrefix(src, "logger_test.go:") {
		t.Errorf("source = %q, want logger_test.go:<line>", src)
	}

	buf.Reset()
	Make(&buf, WithCaller(false), WithPretty(false)).Info("m")

	if _, ok := decode(t, &buf)["source"]; ok {
		t.Error("source present with caller disabled")
	}
}

func TestLogger_Wrap(t *testing.T) {
	var first, second bytes.Buffer

	base := Make(&first, WithLevel(LevelWarn), WithPretty(false))
	wrapped := base.Wrap(WithOutput(&second), WithLevel(LevelDebug))

	if base.Level() != LevelWarn || wrapped.Level() != LevelDebug {
		t.Errorf("levels = %v, %v", base.Level(), wrapped.Level())
	}

	wrapped.Debug("m")

	if first.Len() != 0 || second.Len() == 0 {
		t.Errorf("first = %q, second = %q", first.String(), second.String())
	}

	if wrapped.opts.pretty {
		t.Error("Wrap did not keep the base settings")
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false)).With(slog.String("mode", "repl"))
	l.Info("line accepted")

	if got := decode(t, &buf)["mode"]; got != "repl" {
		t.Errorf("mode = %v, want repl", got)
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	l.Trace("m")
	l.InfoContext(t.Context(), "m")
	l.Error("m")

	if l.With(slog.Int("n", 1)).Logger != nil {
		t.Error("With on zero Logger produced a logger")
	}

	if l.Level() != DefaultLevel || l.Format() != DefaultFormat {
		t.Errorf("zero Logger level = %v, format = %v", l.Level(), l.Format())
	}

	var buf bytes.Buffer

	l.Wrap(WithOutput(&buf), WithPretty(false)).Info("m")

	if buf.Len() == 0 {
		t.Error("Wrap of zero Logger with an output wrote nothing")
	}
}

func TestLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Go(func() { l.With(slog.Int("id", i)).Info("m") })
	}
	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 100 {
		t.Errorf("got %d records, want 100", n)
	}
}
