// Package ast declares the syntax tree produced by the parser.
//
// Every node is a pointer, and node identity is significant: the resolver
// records scope distances keyed by the exact [Expr] value that references a
// variable. Nodes are never mutated after parsing, so a parsed program may be
// shared by any number of interpreters.
package ast

import "github.com/ardnew/lox/lang/token"

// Expr is an expression node.
type Expr interface {
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// Expressions.
type (
	// Literal is a number, string, boolean or nil constant.
	// Value is float64, string, bool, or nil.
	Literal struct {
		Value any
	}

	// Grouping is a parenthesized expression.
	Grouping struct {
		Expression Expr
	}

	// Unary is a prefix operator applied to one operand.
	Unary struct {
		Operator token.Token
		Right    Expr
	}

	// Binary is an arithmetic, comparison or equality operator.
	Binary struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// Logical is a short-circuiting "and" or "or".
	Logical struct {
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// Variable reads a named variable.
	Variable struct {
		Name token.Token
	}

	// Assign writes a named variable.
	Assign struct {
		Name  token.Token
		Value Expr
	}

	// Call invokes a callee. Paren is the closing parenthesis, used to
	// locate runtime errors.
	Call struct {
		Callee    Expr
		Paren     token.Token
		Arguments []Expr
	}

	// Get reads a property of an instance.
	Get struct {
		Object Expr
		Name   token.Token
	}

	// Set writes a field of an instance.
	Set struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// This refers to the receiver of the enclosing method.
	This struct {
		Keyword token.Token
	}

	// Super looks up a method on the superclass of the enclosing class.
	Super struct {
		Keyword token.Token
		Method  token.Token
	}
)

// Statements.
type (
	// Expression evaluates an expression for its side effects.
	Expression struct {
		Expression Expr
	}

	// Print writes the stringified value of an expression.
	Print struct {
		Expression Expr
	}

	// Var declares a variable. Initializer is nil when absent.
	Var struct {
		Name        token.Token
		Initializer Expr
	}

	// Block executes statements in a new scope.
	Block struct {
		Statements []Stmt
	}

	// If is a conditional. Else is nil when absent.
	If struct {
		Condition Expr
		Then      Stmt
		Else      Stmt
	}

	// While loops while its condition is truthy.
	While struct {
		Condition Expr
		Body      Stmt
	}

	// Function declares a named function or method.
	Function struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// Return exits the enclosing function. Value is nil when absent.
	Return struct {
		Keyword token.Token
		Value   Expr
	}

	// Class declares a class. Superclass is nil when absent.
	Class struct {
		Name       token.Token
		Superclass *Variable
		Methods    []*Function
	}
)

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}
func (*This) exprNode()     {}
func (*Super) exprNode()    {}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
