package ast

// ToNative converts a program into nested maps and slices suitable for
// generic encoders such as encoding/json and YAML marshalers.
//
// Each node becomes a map with a "node" key naming its variant.
func ToNative(stmts []Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = stmtNative(s)
	}

	return out
}

func exprsNative(es []Expr) []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = exprNative(e)
	}

	return out
}

func stmtsNative(ss []Stmt) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = stmtNative(s)
	}

	return out
}

func exprNative(e Expr) any {
	switch e := e.(type) {
	case nil:
		return nil

	case *Literal:
		return map[string]any{"node": "literal", "value": e.Value}

	case *Grouping:
		return map[string]any{
			"node":       "grouping",
			"expression": exprNative(e.Expression),
		}

	case *Unary:
		return map[string]any{
			"node":     "unary",
			"operator": e.Operator.Lexeme,
			"right":    exprNative(e.Right),
		}

	case *Binary:
		return map[string]any{
			"node":     "binary",
			"operator": e.Operator.Lexeme,
			"left":     exprNative(e.Left),
			"right":    exprNative(e.Right),
		}

	case *Logical:
		return map[string]any{
			"node":     "logical",
			"operator": e.Operator.Lexeme,
			"left":     exprNative(e.Left),
			"right":    exprNative(e.Right),
		}

	case *Variable:
		return map[string]any{"node": "variable", "name": e.Name.Lexeme}

	case *Assign:
		return map[string]any{
			"node":  "assign",
			"name":  e.Name.Lexeme,
			"value": exprNative(e.Value),
		}

	case *Call:
		return map[string]any{
			"node":      "call",
			"callee":    exprNative(e.Callee),
			"arguments": exprsNative(e.Arguments),
		}

	case *Get:
		return map[string]any{
			"node":   "get",
			"object": exprNative(e.Object),
			"name":   e.Name.Lexeme,
		}

	case *Set:
		return map[string]any{
			"node":   "set",
			"object": exprNative(e.Object),
			"name":   e.Name.Lexeme,
			"value":  exprNative(e.Value),
		}

	case *This:
		return map[string]any{"node": "this"}

	case *Super:
		return map[string]any{"node": "super", "method": e.Method.Lexeme}

	default:
		panic("ast: unhandled expression variant")
	}
}

func stmtNative(s Stmt) any {
	switch s := s.(type) {
	case nil:
		return nil

	case *Expression:
		return map[string]any{
			"node":       "expression",
			"expression": exprNative(s.Expression),
		}

	case *Print:
		return map[string]any{
			"node":       "print",
			"expression": exprNative(s.Expression),
		}

	case *Var:
		return map[string]any{
			"node":        "var",
			"name":        s.Name.Lexeme,
			"initializer": exprNative(s.Initializer),
		}

	case *Block:
		return map[string]any{
			"node":       "block",
			"statements": stmtsNative(s.Statements),
		}

	case *If:
		return map[string]any{
			"node":      "if",
			"condition": exprNative(s.Condition),
			"then":      stmtNative(s.Then),
			"else":      stmtNative(s.Else),
		}

	case *While:
		return map[string]any{
			"node":      "while",
			"condition": exprNative(s.Condition),
			"body":      stmtNative(s.Body),
		}

	case *Function:
		return functionNative(s)

	case *Return:
		return map[string]any{
			"node":  "return",
			"value": exprNative(s.Value),
		}

	case *Class:
		methods := make([]any, len(s.Methods))
		for i, m := range s.Methods {
			methods[i] = functionNative(m)
		}

		var super any
		if s.Superclass != nil {
			super = s.Superclass.Name.Lexeme
		}

		return map[string]any{
			"node":       "class",
			"name":       s.Name.Lexeme,
			"superclass": super,
			"methods":    methods,
		}

	default:
		panic("ast: unhandled statement variant")
	}
}

func functionNative(f *Function) map[string]any {
	params := make([]any, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Lexeme
	}

	return map[string]any{
		"node":   "function",
		"name":   f.Name.Lexeme,
		"params": params,
		"body":   stmtsNative(f.Body),
	}
}
