package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/lox/lang"
	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/log"
)

// Output formats of the ast command.
const (
	FormatSexpr = "sexpr"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// AST prints the parse tree of a script.
type AST struct {
	Format string `default:"sexpr" enum:"sexpr,json,yaml" help:"Output format (${enum})." short:"f"`
	Indent int    `default:"2"                            help:"Indent width for JSON and YAML output; 0 for compact." short:"i"`

	Source string `arg:"" default:"-" help:"Script file or '-' for stdin." name:"source"`
}

// Run executes the ast command. A script with syntax errors is reported
// and not printed.
func (a *AST) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	file, err := openSource(a.Source)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := log.Default().With(
		slog.String("source", a.Source),
		slog.String("format", a.Format),
	)

	reporter := diag.NewCollector(
		diag.WithOutput(os.Stderr),
		diag.WithLogger(logger),
		diag.WithContext(ctx),
	)

	src, err := lang.ParseReader(ctx, file,
		lang.WithReporter(reporter),
		lang.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	return a.format(ctx, os.Stdout, src.Program)
}

func (a *AST) format(ctx context.Context, w io.Writer, prog []ast.Stmt) error {
	switch a.Format {
	case FormatJSON:
		return formatJSON(w, prog, a.Indent)
	case FormatYAML:
		return formatYAML(ctx, w, prog, a.Indent)
	default:
		_, err := io.WriteString(w, ast.SprintProgram(prog))

		return err
	}
}

func formatJSON(w io.Writer, prog []ast.Stmt, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(ast.ToNative(prog), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ast.ToNative(prog))
	}

	if err != nil {
		return ErrMarshal.With(slog.String("format", FormatJSON)).Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func formatYAML(ctx context.Context, w io.Writer, prog []ast.Stmt, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ast.ToNative(prog), opts...)
	if err != nil {
		return ErrMarshal.With(slog.String("format", FormatYAML)).Wrap(err)
	}

	_, err = w.Write(data)

	return err
}
