// Package parser builds a syntax tree from a token sequence by recursive
// descent.
//
// Expression grammar, lowest precedence first:
//
//	assignment → ( call "." )? IDENTIFIER "=" assignment | logic_or
//	logic_or   → logic_and ( "or" logic_and )*
//	logic_and  → equality ( "and" equality )*
//	equality   → comparison ( ( "!=" | "==" ) comparison )*
//	comparison → term ( ( ">" | ">=" | "<" | "<=" ) term )*
//	term       → factor ( ( "-" | "+" ) factor )*
//	factor     → unary ( ( "/" | "*" ) unary )*
//	unary      → ( "!" | "-" ) unary | call
//	call       → primary ( "(" arguments? ")" | "." IDENTIFIER )*
//	primary    → "true" | "false" | "nil" | "this" | NUMBER | STRING
//	           | IDENTIFIER | "(" expression ")" | "super" "." IDENTIFIER
package parser

import (
	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
)

// MaxArgs is the maximum number of parameters or call arguments.
const MaxArgs = 255

// Error is a syntax error. It has already been reported when returned, and
// is consumed by the declaration that triggered recovery.
type Error struct {
	Token   token.Token
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return diag.AtToken(diag.Syntax, e.Token, e.Message).String()
}

// Parser consumes a token sequence ending with [token.EOF].
type Parser struct {
	tokens   []token.Token
	current  int
	reporter diag.Reporter
}

// New returns a parser over tokens that reports errors to reporter.
// A nil reporter discards errors.
func New(tokens []token.Token, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.Discard
	}

	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line := 1
		if n := len(tokens); n > 0 {
			line = tokens[n-1].Line
		}

		tokens = append(tokens, token.Make(token.EOF, "", nil, line))
	}

	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse parses every declaration up to end of input. Declarations that fail
// to parse are reported and omitted, so the result is only meaningful to
// execute when no error was reported.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt

	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	return stmts
}

// ParseExpression parses a single expression followed by end of input.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}

	if !p.atEnd() {
		return nil, p.error(p.peek(), "Expect end of expression.")
	}

	return e, nil
}

func (p *Parser) declaration() ast.Stmt {
	var (
		s   ast.Stmt
		err error
	)

	switch {
	case p.match(token.Class):
		s, err = p.classDeclaration()
	case p.match(token.Fun):
		s, err = p.function("function")
	case p.match(token.Var):
		s, err = p.varDeclaration()
	default:
		s, err = p.statement()
	}

	if err != nil {
		p.synchronize()

		return nil
	}

	return s
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable

	if p.match(token.Less) {
		super, err := p.consume(token.Identifier, "Expect superclass name.")
		if err != nil {
			return nil, err
		}

		superclass = &ast.Variable{Name: super}
	}

	if _, err := p.consume(token.LeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.Function

	for !p.check(token.RightBrace) && !p.atEnd() {
		m, err := p.function("method")
		if err != nil {
			return nil, err
		}

		methods = append(methods, m)
	}

	if _, err := p.consume(token.RightBrace, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}, nil
}

// function parses a function or method declaration after its introducing
// keyword. kind is "function" or "method" and appears in messages.
func (p *Parser) function(kind string) (*ast.Function, error) {
	name, err := p.consume(token.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []token.Token

	if !p.check(token.RightParen) {
		for {
			if len(params) >= MaxArgs {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}

			param, err := p.consume(token.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}

			params = append(params, param)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	if _, err := p.consume(token.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init ast.Expr

	if p.match(token.Equal) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &ast.Var{Name: name, Initializer: init}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}

		return &ast.Block{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars a C-style for loop into a while loop wrapped in the
// blocks that scope its initializer and sequence its increment.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		init ast.Stmt
		err  error
	)

	switch {
	case p.match(token.Semicolon):
	case p.match(token.Var):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}

	if err != nil {
		return nil, err
	}

	var cond ast.Expr

	if !p.check(token.Semicolon) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr ast.Expr

	if !p.check(token.RightParen) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.Block{Statements: []ast.Stmt{
			body,
			&ast.Expression{Expression: incr},
		}}
	}

	if cond == nil {
		cond = &ast.Literal{Value: true}
	}

	body = &ast.While{Condition: cond, Body: body}

	if init != nil {
		body = &ast.Block{Statements: []ast.Stmt{init, body}}
	}

	return body, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var els ast.Stmt

	if p.match(token.Else) {
		if els, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return &ast.If{Condition: cond, Then: then, Else: els}, nil
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}

	return &ast.Print{Expression: value}, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()

	var (
		value ast.Expr
		err   error
	)

	if !p.check(token.Semicolon) {
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}

	return &ast.Return{Keyword: keyword, Value: value}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &ast.While{Condition: cond, Body: body}, nil
}

// block parses declarations up to and including the closing brace.
// A failed inner declaration is recovered inside the block.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt

	for !p.check(token.RightBrace) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}

	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}

	return &ast.Expression{Expression: e}, nil
}
