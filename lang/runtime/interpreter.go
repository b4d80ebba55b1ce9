// Package runtime executes resolved syntax trees.
//
// An [Interpreter] owns a global [Environment] and a table of local variable
// distances filled in by the resolver through [Interpreter.Resolve]. It may
// run any number of programs in sequence, keeping global state between them.
package runtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
	"github.com/ardnew/lox/log"
)

// Interpreter is a tree-walking evaluator. It is not safe for concurrent use.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[ast.Expr]int

	output   io.Writer
	reporter diag.Reporter
	natives  []*Native
	now      func() time.Time
	logger   log.Logger

	ctx context.Context
}

// completion is the outcome of executing a statement. A return statement
// unwinds to the enclosing call by setting returning.
type completion struct {
	returning bool
	value     Value
}

// New returns an interpreter with a fresh global frame holding the native
// functions.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		locals:   make(map[ast.Expr]int),
		output:   io.Discard,
		reporter: diag.Discard,
		natives:  DefaultNatives(),
		now:      time.Now,
		ctx:      context.Background(),
	}

	for _, opt := range opts {
		opt(in)
	}

	in.globals = NewEnvironment(nil)
	in.env = in.globals

	for _, n := range in.natives {
		in.globals.Define(n.Name, n)
	}

	return in
}

// Resolve records that expr refers to a variable declared depth frames out
// from the frame in which expr is evaluated.
func (in *Interpreter) Resolve(expr ast.Expr, depth int) {
	in.locals[expr] = depth
}

// Define binds a global variable.
func (in *Interpreter) Define(name string, v Value) {
	in.globals.Define(name, v)
}

// Globals returns the global frame.
func (in *Interpreter) Globals() *Environment { return in.globals }

// Interpret executes a resolved program. It stops at the first runtime
// error, which is reported and returned, or when ctx is done.
func (in *Interpreter) Interpret(ctx context.Context, stmts []ast.Stmt) error {
	in.ctx = ctx
	start := time.Now()

	for _, s := range stmts {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := in.execute(s); err != nil {
			return in.fail(err)
		}
	}

	in.logger.TraceContext(
		ctx,
		"interpret",
		slog.Int("statements", len(stmts)),
		slog.Int("locals", len(in.locals)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// Evaluate evaluates a single resolved expression in the global frame.
func (in *Interpreter) Evaluate(ctx context.Context, e ast.Expr) (Value, error) {
	in.ctx = ctx

	v, err := in.evaluate(e)
	if err != nil {
		return nil, in.fail(err)
	}

	return v, nil
}

func (in *Interpreter) fail(err error) error {
	var rerr *Error
	if errors.As(err, &rerr) {
		in.reporter.Report(rerr.Diagnostic())
		in.logger.DebugContext(in.ctx, "runtime error", slog.Any("error", rerr))
	}

	// A failure unwinds every block, so the current frame is the global one.
	in.env = in.globals

	return err
}

func (in *Interpreter) execute(s ast.Stmt) (completion, error) {
	switch s := s.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expression)

		return completion{}, err

	case *ast.Print:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return completion{}, err
		}

		_, _ = io.WriteString(in.output, v.String()+"\n")

		return completion{}, nil

	case *ast.Var:
		var v Value = Nil{}

		if s.Initializer != nil {
			var err error
			if v, err = in.evaluate(s.Initializer); err != nil {
				return completion{}, err
			}
		}

		in.env.Define(s.Name.Lexeme, v)

		return completion{}, nil

	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return completion{}, err
		}

		if Truthy(cond) {
			return in.execute(s.Then)
		}

		if s.Else != nil {
			return in.execute(s.Else)
		}

		return completion{}, nil

	case *ast.While:
		for {
			if err := in.ctx.Err(); err != nil {
				return completion{}, err
			}

			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return completion{}, err
			}

			if !Truthy(cond) {
				return completion{}, nil
			}

			c, err := in.execute(s.Body)
			if err != nil || c.returning {
				return c, err
			}
		}

	case *ast.Function:
		in.env.Define(s.Name.Lexeme, NewFunction(s, in.env, false))

		return completion{}, nil

	case *ast.Return:
		var v Value = Nil{}

		if s.Value != nil {
			var err error
			if v, err = in.evaluate(s.Value); err != nil {
				return completion{}, err
			}
		}

		return completion{returning: true, value: v}, nil

	case *ast.Class:
		return completion{}, in.executeClass(s)

	default:
		panic("runtime: unhandled statement variant")
	}
}

// executeBlock runs stmts in env and restores the current frame on every
// exit path.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (completion, error) {
	prev := in.env
	in.env = env

	defer func() { in.env = prev }()

	for _, s := range stmts {
		c, err := in.execute(s)
		if err != nil || c.returning {
			return c, err
		}
	}

	return completion{}, nil
}

func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class

	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}

		sc, ok := v.(*Class)
		if !ok {
			return NewError(s.Superclass.Name, "Superclass must be a class.")
		}

		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, Nil{})

	closure := in.env
	if superclass != nil {
		closure = NewEnvironment(in.env)
		closure.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, closure, m.Name.Lexeme == "init")
	}

	return in.env.Assign(s.Name, NewClass(s.Name.Lexeme, superclass, methods))
}

func (in *Interpreter) evaluate(e ast.Expr) (Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return FromLiteral(e.Value), nil

	case *ast.Grouping:
		return in.evaluate(e.Expression)

	case *ast.Unary:
		return in.unary(e)

	case *ast.Binary:
		return in.binary(e)

	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}

		if e.Operator.Kind == token.Or {
			if Truthy(left) {
				return left, nil
			}
		} else if !Truthy(left) {
			return left, nil
		}

		return in.evaluate(e.Right)

	case *ast.Variable:
		return in.lookUp(e.Name, e)

	case *ast.Assign:
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		if d, ok := in.locals[e]; ok {
			in.env.AssignAt(d, e.Name, v)
		} else if err := in.globals.Assign(e.Name, v); err != nil {
			return nil, err
		}

		return v, nil

	case *ast.Call:
		return in.call(e)

	case *ast.Get:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}

		inst, ok := obj.(*Instance)
		if !ok {
			return nil, NewError(e.Name, "Only instances have properties.")
		}

		return inst.Get(e.Name)

	case *ast.Set:
		obj, err := in.evaluate(e.Object)
		if err != nil {
			return nil, err
		}

		inst, ok := obj.(*Instance)
		if !ok {
			return nil, NewError(e.Name, "Only instances have fields.")
		}

		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}

		inst.Set(e.Name, v)

		return v, nil

	case *ast.This:
		return in.lookUp(e.Keyword, e)

	case *ast.Super:
		return in.super(e)

	default:
		panic("runtime: unhandled expression variant")
	}
}

// lookUp reads a variable at its resolved distance, or from the global frame
// when the resolver left it unresolved.
func (in *Interpreter) lookUp(name token.Token, e ast.Expr) (Value, error) {
	if d, ok := in.locals[e]; ok {
		return in.env.GetAt(d, name.Lexeme), nil
	}

	return in.globals.Get(name)
}

func (in *Interpreter) unary(e *ast.Unary) (Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Bang:
		return Bool(!Truthy(right)), nil

	case token.Minus:
		n, ok := right.(Number)
		if !ok {
			return nil, NewError(e.Operator, "Operand must be a number.")
		}

		return -n, nil

	default:
		panic("runtime: unhandled unary operator")
	}
}

func (in *Interpreter) binary(e *ast.Binary) (Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.EqualEqual:
		return Bool(Equal(left, right)), nil

	case token.BangEqual:
		return Bool(!Equal(left, right)), nil

	case token.Plus:
		switch l := left.(type) {
		case Number:
			if r, ok := right.(Number); ok {
				return l + r, nil
			}
		case String:
			if r, ok := right.(String); ok {
				return l + r, nil
			}
		}

		return nil, NewError(e.Operator, "Operands must be two numbers or two strings.")
	}

	l, lok := left.(Number)
	r, rok := right.(Number)

	if !lok || !rok {
		return nil, NewError(e.Operator, "Operands must be numbers.")
	}

	switch e.Operator.Kind {
	case token.Minus:
		return l - r, nil
	case token.Star:
		return l * r, nil
	case token.Slash:
		return l / r, nil
	case token.Greater:
		return Bool(l > r), nil
	case token.GreaterEqual:
		return Bool(l >= r), nil
	case token.Less:
		return Bool(l < r), nil
	case token.LessEqual:
		return Bool(l <= r), nil
	default:
		panic("runtime: unhandled binary operator")
	}
}

func (in *Interpreter) call(e *ast.Call) (Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))

	for _, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, NewError(e.Paren, "Can only call functions and classes.")
	}

	if n := fn.Arity(); len(args) != n {
		return nil, NewError(e.Paren, "Expected "+strconv.Itoa(n)+
			" arguments but got "+strconv.Itoa(len(args))+".")
	}

	return fn.Call(in, args)
}

// super looks the method up starting at the superclass captured when the
// enclosing class was declared, and binds it to the current receiver, which
// lives one frame inside the "super" frame.
func (in *Interpreter) super(e *ast.Super) (Value, error) {
	d := in.locals[e]

	superclass, _ := in.env.GetAt(d, "super").(*Class)
	receiver, _ := in.env.GetAt(d-1, "this").(*Instance)

	m := superclass.FindMethod(e.Method.Lexeme)
	if m == nil {
		return nil, NewError(e.Method, "Undefined property '"+e.Method.Lexeme+"'.")
	}

	return m.Bind(receiver), nil
}
