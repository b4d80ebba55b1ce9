package log

import (
	"bytes"
	"log/slog"
	"testing"
)

// useDefault installs l as the default logger for the rest of the test.
func useDefault(t *testing.T, l Logger) {
	t.Helper()

	saved := std.Load()
	std.Store(&l)

	t.Cleanup(func() { std.Store(saved) })
}

func TestPackage_Functions(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, Make(&buf, WithLevel(LevelTrace), WithPretty(false)))

	ctx := t.Context()

	tests := []struct {
		name  string
		fn    func()
		level string
	}{
		{"Trace", func() { Trace("m", slog.String("k", "v")) }, "TRACE"},
		{"Debug", func() { Debug("m", slog.String("k", "v")) }, "DEBUG"},
		{"Info", func() { Info("m", slog.String("k", "v")) }, "INFO"},
		{"Warn", func() { Warn("m", slog.String("k", "v")) }, "WARN"},
		{"Error", func() { Error("m", slog.String("k", "v")) }, "ERROR"},
		{"TraceContext", func() { TraceContext(ctx, "m", slog.String("k", "v")) }, "TRACE"},
		{"DebugContext", func() { DebugContext(ctx, "m", slog.String("k", "v")) }, "DEBUG"},
		{"InfoContext", func() { InfoContext(ctx, "m", slog.String("k", "v")) }, "INFO"},
		{"WarnContext", func() { WarnContext(ctx, "m", slog.String("k", "v")) }, "WARN"},
		{"ErrorContext", func() { ErrorContext(ctx, "m", slog.String("k", "v")) }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()

			rec := decode(t, &buf)
			if rec["level"] != tt.level || rec["k"] != "v" {
				t.Errorf("record = %v, want level %s", rec, tt.level)
			}
		})
	}
}

func TestConfig(t *testing.T) {
	var buf bytes.Buffer

	useDefault(t, Make(&buf, WithPretty(false)))

	Config(WithLevel(LevelTrace), WithFormat(FormatText), WithTimeLayout("none"))

	if Default().Level() != LevelTrace {
		t.Errorf("Default().Level() = %v", Default().Level())
	}

	Trace("scan", slog.Int("tokens", 3))
	With(slog.String("phase", "parse")).Info("done")

	const want = "level=TRACE msg=scan tokens=3\nlevel=INFO msg=done phase=parse\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	Config(WithDefaults(nil))

	if Default().Level() != DefaultLevel || Default().Format() != DefaultFormat {
		t.Errorf("WithDefaults left level %v, format %v", Default().Level(), Default().Format())
	}
}
