package log

import (
	"iter"
	"log/slog"
	"strconv"
	"strings"
)

// Level is the severity of a log message. It extends [slog.Level] with a
// trace level below debug.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is used when no level, or an unrecognized one, is given.
const DefaultLevel = LevelInfo

var levelNames = [...]struct {
	level Level
	name  string
}{
	{LevelTrace, "trace"},
	{LevelDebug, "debug"},
	{LevelInfo, "info"},
	{LevelWarn, "warn"},
	{LevelError, "error"},
}

// Levels yields the name of each level in increasing severity.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range levelNames {
			if !yield(n.name) {
				return
			}
		}
	}
}

// String returns the lower-case level name. Unnamed levels below debug are
// written as an offset from trace, as in "trace+1".
func (l Level) String() string {
	for _, n := range levelNames {
		if n.level == l {
			return n.name
		}
	}

	if l < LevelDebug {
		return "trace" + offset(int(l-LevelTrace))
	}

	return strings.ToLower(slog.Level(l).String())
}

func offset(n int) string {
	if n < 0 {
		return strconv.Itoa(n)
	}

	return "+" + strconv.Itoa(n)
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseLevel].
func (l *Level) UnmarshalText(text []byte) error {
	*l = ParseLevel(string(text))

	return nil
}

// ParseLevel returns the level named by s, ignoring case. Any name accepted
// by [slog.Level.UnmarshalText] is recognized, as is "trace" with an
// optional offset. Unrecognized names yield [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)

	const trace = "trace"
	if len(s) >= len(trace) && strings.EqualFold(s[:len(trace)], trace) {
		if rest := s[len(trace):]; rest != "" {
			n, err := strconv.Atoi(rest)
			if err != nil {
				return DefaultLevel
			}

			return LevelTrace + Level(n)
		}

		return LevelTrace
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format selects how log records are encoded.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is used when no format, or an unrecognized one, is given.
const DefaultFormat = FormatJSON

var formatNames = [...]string{
	FormatText: "text",
	FormatJSON: "json",
}

// Formats yields the name of each format, the default first.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(DefaultFormat.String()) {
			return
		}

		for f, name := range formatNames {
			if Format(f) != DefaultFormat && !yield(name) {
				return
			}
		}
	}
}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseFormat].
func (f *Format) UnmarshalText(text []byte) error {
	*f = ParseFormat(string(text))

	return nil
}

// ParseFormat returns the format named by s, ignoring case and surrounding
// space, or [DefaultFormat] if s names none.
func ParseFormat(s string) Format {
	s = strings.TrimSpace(s)

	for f, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(f)
		}
	}

	return DefaultFormat
}
