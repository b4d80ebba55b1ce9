// Package diag defines the diagnostics reported by every stage of the
// interpreter pipeline and the sink that receives them.
package diag

import (
	"log/slog"
	"strconv"

	"github.com/ardnew/lox/lang/token"
)

// Kind classifies a diagnostic by the pipeline stage that produced it.
type Kind uint8

const (
	Lexical    Kind = iota // lexical
	Syntax                 // syntax
	Resolution             // resolution
	Runtime                // runtime
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Resolution:
		return "resolution"
	case Runtime:
		return "runtime"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Static reports whether diagnostics of this kind are produced before
// execution begins.
func (k Kind) Static() bool { return k != Runtime }

// Diagnostic is a single error reported by the scanner, parser, resolver or
// interpreter.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string // "", " at end", or " at '<lexeme>'"
	Message string
}

// AtLine returns a diagnostic located only by line number.
func AtLine(kind Kind, line int, msg string) Diagnostic {
	return Diagnostic{Kind: kind, Line: line, Message: msg}
}

// AtToken returns a diagnostic located at tok.
func AtToken(kind Kind, tok token.Token, msg string) Diagnostic {
	where := " at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = " at end"
	}

	return Diagnostic{Kind: kind, Line: tok.Line, Where: where, Message: msg}
}

// String formats the diagnostic the way it is shown to users.
//
//	[line N] Error<where>: <message>   // lexical, syntax, resolution
//	<message>\n[line N]                // runtime
func (d Diagnostic) String() string {
	line := strconv.Itoa(d.Line)

	if d.Kind == Runtime {
		return d.Message + "\n[line " + line + "]"
	}

	return "[line " + line + "] Error" + d.Where + ": " + d.Message
}

// LogValue implements slog.LogValuer.
func (d Diagnostic) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", d.Kind.String()),
		slog.Int("line", d.Line),
		slog.String("message", d.Message),
	}

	if d.Where != "" {
		attrs = append(attrs, slog.String("where", d.Where))
	}

	return slog.GroupValue(attrs...)
}

// Reporter receives diagnostics as they are discovered.
type Reporter interface {
	Report(d Diagnostic)
}

// ReporterFunc adapts an ordinary function to the [Reporter] interface.
type ReporterFunc func(d Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Discard is a [Reporter] that drops every diagnostic.
var Discard Reporter = ReporterFunc(func(Diagnostic) {})

// Tee returns a [Reporter] that forwards each diagnostic to every non-nil
// reporter in rs, in order.
func Tee(rs ...Reporter) Reporter {
	targets := make([]Reporter, 0, len(rs))

	for _, r := range rs {
		if r != nil {
			targets = append(targets, r)
		}
	}

	return ReporterFunc(func(d Diagnostic) {
		for _, r := range targets {
			r.Report(d)
		}
	})
}
