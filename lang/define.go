package lang

import (
	"log/slog"
	"os"
	"reflect"

	"github.com/expr-lang/expr"

	"github.com/ardnew/lox/lang/lexer"
	"github.com/ardnew/lox/lang/runtime"
	"github.com/ardnew/lox/lang/token"
)

// Define evaluates source as an expr-lang expression and binds the result to
// the global variable name in the interpreter.
//
// The expression may call env(key) to read a process environment variable.
// Results must be nil, a boolean, a number or a string.
func Define(in *runtime.Interpreter, name, source string) error {
	if !IsIdentifier(name) {
		return ErrInvalidName.With(slog.String("name", name))
	}

	v, err := Eval(source)
	if err != nil {
		return ErrDefine.Wrap(err).With(slog.String("name", name))
	}

	in.Define(name, v)

	return nil
}

// Eval evaluates source as an expr-lang expression and converts the result
// to a runtime value.
func Eval(source string) (runtime.Value, error) {
	env := exprEnv()

	program, err := expr.Compile(source, expr.Env(env))
	if err != nil {
		return nil, WrapError(err).With(slog.String("source", source))
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return nil, WrapError(err).With(slog.String("source", source))
	}

	return ToValue(out)
}

// exprEnv returns the variables and functions visible to definitions.
func exprEnv() map[string]any {
	return map[string]any{
		"env": os.Getenv,
	}
}

// ToValue converts a Go value produced by an expression into a runtime
// value.
func ToValue(v any) (runtime.Value, error) {
	switch v := v.(type) {
	case nil:
		return runtime.Nil{}, nil
	case bool:
		return runtime.Bool(v), nil
	case int:
		return runtime.Number(v), nil
	case int8:
		return runtime.Number(v), nil
	case int16:
		return runtime.Number(v), nil
	case int32:
		return runtime.Number(v), nil
	case int64:
		return runtime.Number(v), nil
	case uint:
		return runtime.Number(v), nil
	case uint8:
		return runtime.Number(v), nil
	case uint16:
		return runtime.Number(v), nil
	case uint32:
		return runtime.Number(v), nil
	case uint64:
		return runtime.Number(v), nil
	case float32:
		return runtime.Number(v), nil
	case float64:
		return runtime.Number(v), nil
	case string:
		return runtime.String(v), nil
	default:
		return nil, ErrInvalidResult.With(
			slog.String("type", resultTypeName(v)),
		)
	}
}

// IsIdentifier reports whether name scans as a single non-reserved
// identifier.
func IsIdentifier(name string) bool {
	toks := lexer.New(name, nil).ScanTokens()

	return len(toks) == 2 &&
		toks[0].Kind == token.Identifier &&
		toks[0].Lexeme == name
}

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
