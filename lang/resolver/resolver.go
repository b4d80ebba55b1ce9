// Package resolver performs a static pass over a parsed program that binds
// each local variable reference to the scope declaring it.
//
// For every [ast.Expr] that names a local variable, the resolver tells a
// [Recorder] how many scopes lie between the reference and its declaration.
// References it cannot find in any enclosing local scope are left unrecorded
// and are treated as globals at run time.
package resolver

import (
	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
)

// Recorder receives the scope distance of each resolved local reference.
type Recorder interface {
	Resolve(expr ast.Expr, depth int)
}

// Locals is a [Recorder] that stores distances in a map keyed by node
// identity.
type Locals map[ast.Expr]int

// Resolve implements [Recorder].
func (l Locals) Resolve(expr ast.Expr, depth int) { l[expr] = depth }

type functionKind uint8

const (
	functionNone functionKind = iota
	functionPlain
	functionMethod
	functionInitializer
)

type classKind uint8

const (
	classNone classKind = iota
	classPlain
	classSub
)

// scope maps a declared name to whether its initializer has completed.
type scope map[string]bool

// Resolver walks a program once, reporting static errors and recording local
// distances. Errors never stop the walk.
type Resolver struct {
	recorder Recorder
	reporter diag.Reporter

	scopes          []scope
	currentFunction functionKind
	currentClass    classKind
}

// New returns a resolver that records distances to recorder and reports
// errors to reporter. A nil reporter discards errors.
func New(recorder Recorder, reporter diag.Reporter) *Resolver {
	if reporter == nil {
		reporter = diag.Discard
	}

	return &Resolver{recorder: recorder, reporter: reporter}
}

// Resolve resolves each statement of a program in order.
func (r *Resolver) Resolve(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.stmt(s)
	}
}

func (r *Resolver) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.Block:
		r.begin()
		r.Resolve(s.Statements)
		r.end()

	case *ast.Var:
		r.declare(s.Name)

		if s.Initializer != nil {
			r.expr(s.Initializer)
		}

		r.define(s.Name)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.function(s, functionPlain)

	case *ast.Class:
		r.class(s)

	case *ast.Expression:
		r.expr(s.Expression)

	case *ast.Print:
		r.expr(s.Expression)

	case *ast.If:
		r.expr(s.Condition)
		r.stmt(s.Then)

		if s.Else != nil {
			r.stmt(s.Else)
		}

	case *ast.While:
		r.expr(s.Condition)
		r.stmt(s.Body)

	case *ast.Return:
		if r.currentFunction == functionNone {
			r.error(s.Keyword, "Can't return from top-level code.")
		}

		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.error(s.Keyword, "Can't return a value from an initializer.")
			}

			r.expr(s.Value)
		}

	default:
		panic("resolver: unhandled statement variant")
	}
}

func (r *Resolver) class(c *ast.Class) {
	enclosing := r.currentClass
	r.currentClass = classPlain

	defer func() { r.currentClass = enclosing }()

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.error(c.Superclass.Name, "A class can't inherit from itself.")
		}

		r.currentClass = classSub
		r.expr(c.Superclass)

		r.begin()
		r.top()["super"] = true

		defer r.end()
	}

	r.begin()
	r.top()["this"] = true

	for _, m := range c.Methods {
		kind := functionMethod
		if m.Name.Lexeme == "init" {
			kind = functionInitializer
		}

		r.function(m, kind)
	}

	r.end()
}

func (r *Resolver) function(f *ast.Function, kind functionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.begin()

	for _, p := range f.Params {
		r.declare(p)
		r.define(p)
	}

	r.Resolve(f.Body)
	r.end()

	r.currentFunction = enclosing
}

func (r *Resolver) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Variable:
		if n := len(r.scopes); n > 0 {
			if ready, ok := r.scopes[n-1][e.Name.Lexeme]; ok && !ready {
				r.error(e.Name, "Can't read local variable in its own initializer.")
			}
		}

		r.local(e, e.Name)

	case *ast.Assign:
		r.expr(e.Value)
		r.local(e, e.Name)

	case *ast.Binary:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.Logical:
		r.expr(e.Left)
		r.expr(e.Right)

	case *ast.Unary:
		r.expr(e.Right)

	case *ast.Grouping:
		r.expr(e.Expression)

	case *ast.Literal:

	case *ast.Call:
		r.expr(e.Callee)

		for _, arg := range e.Arguments {
			r.expr(arg)
		}

	case *ast.Get:
		r.expr(e.Object)

	case *ast.Set:
		r.expr(e.Value)
		r.expr(e.Object)

	case *ast.This:
		if r.currentClass == classNone {
			r.error(e.Keyword, "Can't use 'this' outside of a class.")

			return
		}

		r.local(e, e.Keyword)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.error(e.Keyword, "Can't use 'super' outside of a class.")
		case classPlain:
			r.error(e.Keyword, "Can't use 'super' in a class with no superclass.")
		default:
			r.local(e, e.Keyword)
		}

	default:
		panic("resolver: unhandled expression variant")
	}
}

// local records the distance from the innermost scope to the nearest scope
// declaring name. Nothing is recorded when name is global.
func (r *Resolver) local(e ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.recorder.Resolve(e, len(r.scopes)-1-i)

			return
		}
	}
}

func (r *Resolver) begin() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) end() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) top() scope { return r.scopes[len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}

	s := r.top()
	if _, ok := s[name.Lexeme]; ok {
		r.error(name, "Already a variable with this name in this scope.")
	}

	s[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}

	r.top()[name.Lexeme] = true
}

func (r *Resolver) error(tok token.Token, msg string) {
	r.reporter.Report(diag.AtToken(diag.Resolution, tok, msg))
}
