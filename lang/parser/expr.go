package parser

import (
	"github.com/ardnew/lox/lang/ast"
	"github.com/ardnew/lox/lang/diag"
	"github.com/ardnew/lox/lang/token"
)

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses the left side as an ordinary expression and reinterprets
// it as a target once "=" is seen. An invalid target is reported without
// unwinding, since the parser is not confused about where it is.
func (p *Parser) assignment() (ast.Expr, error) {
	e, err := p.or()
	if err != nil {
		return nil, err
	}

	if !p.match(token.Equal) {
		return e, nil
	}

	equals := p.previous()

	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	switch target := e.(type) {
	case *ast.Variable:
		return &ast.Assign{Name: target.Name, Value: value}, nil
	case *ast.Get:
		return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
	}

	p.error(equals, "Invalid assignment target.")

	return e, nil
}

func (p *Parser) or() (ast.Expr, error) {
	return p.logical(p.and, token.Or)
}

func (p *Parser) and() (ast.Expr, error) {
	return p.logical(p.equality, token.And)
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary parses a left-associative chain of operands joined by any of ops.
func (p *Parser) binary(
	operand func() (ast.Expr, error),
	ops ...token.Kind,
) (ast.Expr, error) {
	e, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op := p.previous()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		e = &ast.Binary{Left: e, Operator: op, Right: right}
	}

	return e, nil
}

func (p *Parser) logical(
	operand func() (ast.Expr, error),
	op token.Kind,
) (ast.Expr, error) {
	e, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(op) {
		operator := p.previous()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		e = &ast.Logical{Left: e, Operator: operator, Right: right}
	}

	return e, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Operator: op, Right: right}, nil
	}

	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LeftParen):
			if e, err = p.finishCall(e); err != nil {
				return nil, err
			}

		case p.match(token.Dot):
			name, err := p.consume(token.Identifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}

			e = &ast.Get{Object: e, Name: name}

		default:
			return e, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr

	if !p.check(token.RightParen) {
		for {
			if len(args) >= MaxArgs {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}

			arg, err := p.expression()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if !p.match(token.Comma) {
				break
			}
		}
	}

	paren, err := p.consume(token.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}, nil
	case p.match(token.True):
		return &ast.Literal{Value: true}, nil
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.Super):
		keyword := p.previous()

		if _, err := p.consume(token.Dot, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}

		method, err := p.consume(token.Identifier, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}

		return &ast.Super{Keyword: keyword, Method: method}, nil
	case p.match(token.LeftParen):
		e, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}

		return &ast.Grouping{Expression: e}, nil
	}

	return nil, p.error(p.peek(), "Expect expression.")
}

// synchronize discards tokens until it reaches a likely statement boundary:
// just past a semicolon, or before a keyword that begins a declaration.
func (p *Parser) synchronize() {
	p.advance()

	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		if p.peek().Kind.StartsDeclaration() {
			return
		}

		p.advance()
	}
}

func (p *Parser) consume(kind token.Kind, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.Token{}, p.error(p.peek(), msg)
}

// error reports a syntax error at tok and returns it for the caller to
// propagate when recovery is needed.
func (p *Parser) error(tok token.Token, msg string) *Error {
	p.reporter.Report(diag.AtToken(diag.Syntax, tok, msg))

	return &Error{Token: tok, Message: msg}
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()

			return true
		}
	}

	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token {
	if p.current == 0 {
		return p.tokens[0]
	}

	return p.tokens[p.current-1]
}
