package ast

import (
	"strconv"
	"strings"
)

// Sprint renders node as a parenthesized prefix expression, for example
// "(+ 1 (group 2))" or "(var a 1)". It panics if node is neither an [Expr]
// nor a [Stmt].
func Sprint(node any) string {
	var p printer

	switch n := node.(type) {
	case Stmt:
		p.stmt(n)
	case Expr:
		p.expr(n)
	default:
		panic("ast: Sprint of non-node value")
	}

	return p.String()
}

// SprintProgram renders each statement of a program on its own line.
func SprintProgram(stmts []Stmt) string {
	var sb strings.Builder

	for _, s := range stmts {
		sb.WriteString(Sprint(s))
		sb.WriteByte('\n')
	}

	return sb.String()
}

type printer struct {
	strings.Builder
}

func (p *printer) open(name string) {
	p.WriteByte('(')
	p.WriteString(name)
}

func (p *printer) close() { p.WriteByte(')') }

func (p *printer) word(s string) {
	p.WriteByte(' ')
	p.WriteString(s)
}

func (p *printer) exprs(es ...Expr) {
	for _, e := range es {
		p.WriteByte(' ')
		p.expr(e)
	}
}

func (p *printer) stmts(ss ...Stmt) {
	for _, s := range ss {
		p.WriteByte(' ')
		p.stmt(s)
	}
}

// FormatLiteral returns the source form of a literal value.
func FormatLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		panic("ast: unhandled literal type")
	}
}

func (p *printer) expr(e Expr) {
	switch e := e.(type) {
	case *Literal:
		p.WriteString(FormatLiteral(e.Value))

	case *Grouping:
		p.open("group")
		p.exprs(e.Expression)
		p.close()

	case *Unary:
		p.open(e.Operator.Lexeme)
		p.exprs(e.Right)
		p.close()

	case *Binary:
		p.open(e.Operator.Lexeme)
		p.exprs(e.Left, e.Right)
		p.close()

	case *Logical:
		p.open(e.Operator.Lexeme)
		p.exprs(e.Left, e.Right)
		p.close()

	case *Variable:
		p.WriteString(e.Name.Lexeme)

	case *Assign:
		p.open("=")
		p.word(e.Name.Lexeme)
		p.exprs(e.Value)
		p.close()

	case *Call:
		p.open("call")
		p.exprs(e.Callee)
		p.exprs(e.Arguments...)
		p.close()

	case *Get:
		p.open(".")
		p.exprs(e.Object)
		p.word(e.Name.Lexeme)
		p.close()

	case *Set:
		p.open("=")
		p.WriteByte(' ')
		p.open(".")
		p.exprs(e.Object)
		p.word(e.Name.Lexeme)
		p.close()
		p.exprs(e.Value)
		p.close()

	case *This:
		p.WriteString("this")

	case *Super:
		p.open("super")
		p.word(e.Method.Lexeme)
		p.close()

	default:
		panic("ast: unhandled expression variant")
	}
}

func (p *printer) stmt(s Stmt) {
	switch s := s.(type) {
	case *Expression:
		p.open(";")
		p.exprs(s.Expression)
		p.close()

	case *Print:
		p.open("print")
		p.exprs(s.Expression)
		p.close()

	case *Var:
		p.open("var")
		p.word(s.Name.Lexeme)

		if s.Initializer != nil {
			p.exprs(s.Initializer)
		}

		p.close()

	case *Block:
		p.open("block")
		p.stmts(s.Statements...)
		p.close()

	case *If:
		p.open("if")
		p.exprs(s.Condition)
		p.stmts(s.Then)

		if s.Else != nil {
			p.stmts(s.Else)
		}

		p.close()

	case *While:
		p.open("while")
		p.exprs(s.Condition)
		p.stmts(s.Body)
		p.close()

	case *Function:
		p.function(s)

	case *Return:
		p.open("return")

		if s.Value != nil {
			p.exprs(s.Value)
		}

		p.close()

	case *Class:
		p.open("class")
		p.word(s.Name.Lexeme)

		if s.Superclass != nil {
			p.word("<")
			p.word(s.Superclass.Name.Lexeme)
		}

		for _, m := range s.Methods {
			p.WriteByte(' ')
			p.function(m)
		}

		p.close()

	default:
		panic("ast: unhandled statement variant")
	}
}

func (p *printer) function(f *Function) {
	p.open("fun")
	p.word(f.Name.Lexeme)
	p.WriteString(" (")

	for i, param := range f.Params {
		if i > 0 {
			p.WriteByte(' ')
		}

		p.WriteString(param.Lexeme)
	}

	p.WriteByte(')')
	p.stmts(f.Body...)
	p.close()
}
