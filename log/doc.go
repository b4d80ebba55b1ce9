// Package log is the structured logger of the lox tools, a thin layer over
// [log/slog].
//
// A [Logger] is built once by [Make] from functional options and never
// changes afterwards; [Logger.Wrap] and [Logger.With] return new loggers.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("Kitchen"))
//
//	logger.Trace("scan", slog.Int("tokens", 42))
//
// Attributes are always typed [slog.Attr] values; the untyped key/value
// form of slog is not offered.
//
// [LevelTrace] sits below [LevelDebug]. The interpreter logs each of its
// phases there with token, statement and diagnostic counts.
//
// Records are encoded as JSON ([FormatJSON], the default) or as logfmt
// style text ([FormatText]). With [WithPretty] the same formats are
// colorized for a terminal using github.com/fatih/color; the colors are
// dropped when color.NoColor is set.
//
// The functions [Trace], [Info], [ErrorContext] and so on write through
// [Default], which [Config] reconfigures. Functions and methods without a
// context argument use [DefaultContextProvider].
package log
