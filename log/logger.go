package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger writes leveled records through an [slog.Logger]. A Logger is an
// immutable value and may be shared between goroutines. The zero Logger
// discards everything.
type Logger struct {
	*slog.Logger

	opts settings
}

// Make returns a Logger writing to w, configured by opts applied over the
// defaults.
func Make(w io.Writer, opts ...Option) Logger {
	return build(defaults(w).with(opts...))
}

func build(s settings) Logger {
	return Logger{Logger: slog.New(s.handler()), opts: s}
}

// Wrap returns a copy of l with opts applied over its settings. Attributes
// added by [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	s := l.opts
	if l.Logger == nil {
		s = defaults(io.Discard)
	}

	return build(s.with(opts...))
}

// With returns a copy of l that adds attrs to every record.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{Logger: slog.New(l.Handler().WithAttrs(attrs)), opts: l.opts}
}

// Level returns the minimum level l writes.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.opts.level
}

func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.opts.format
}

func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, LevelTrace, msg, attrs)
}

func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, LevelDebug, msg, attrs)
}

func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, LevelInfo, msg, attrs)
}

func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, LevelWarn, msg, attrs)
}

func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.emit(ctx, LevelError, msg, attrs)
}

// Trace logs at [LevelTrace] with the context from [DefaultContextProvider].
// The other unsuffixed methods behave the same at their own level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.emit(DefaultContextProvider(), LevelTrace, msg, attrs)
}

func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.emit(DefaultContextProvider(), LevelDebug, msg, attrs)
}

func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.emit(DefaultContextProvider(), LevelInfo, msg, attrs)
}

func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.emit(DefaultContextProvider(), LevelWarn, msg, attrs)
}

func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.emit(DefaultContextProvider(), LevelError, msg, attrs)
}

// callerDepth skips runtime.Callers, emit, and the exported logging
// function, which must call emit directly.
const callerDepth = 3

func (l Logger) emit(
	ctx context.Context,
	level Level,
	msg string,
	attrs []slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc [1]uintptr
	if l.opts.caller {
		runtime.Callers(callerDepth, pc[:])
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc[0])
	r.AddAttrs(attrs...)

	_ = l.Handler().Handle(ctx, r)
}
