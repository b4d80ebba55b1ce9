package repl

import (
	"strconv"
	"strings"

	"github.com/ardnew/lox/lang/runtime"
)

// functionCall describes the call expression enclosing the cursor.
type functionCall struct {
	name     string // callee identifier
	argIndex int    // index of the argument under the cursor
	inCall   bool   // whether the cursor is inside an argument list
}

// detectFunctionCall finds the innermost unclosed "(" before the cursor and
// reports the identifier that precedes it and how many top-level commas lie
// between it and the cursor.
func detectFunctionCall(input string, cursor int) functionCall {
	cursor = min(max(cursor, 0), len(input))

	open, depth := -1, 0

scan:
	for i := cursor - 1; i >= 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i

				break scan
			}

			depth--
		}
	}

	if open < 0 {
		return functionCall{}
	}

	name, _, _ := wordBounds(input[:open], open)
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return functionCall{}
	}

	call := functionCall{name: name, inCall: true}

	depth = 0

	for i := open + 1; i < cursor; i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				call.argIndex++
			}
		}
	}

	return call
}

// signature returns the parameter names of a callable global. A class
// reports the parameters of its initializer. ok is false if name is not a
// callable global.
func (s *session) signature(name string) (params []string, ok bool) {
	switch v := s.lookup(name).(type) {
	case *runtime.Function:
		return v.Params(), true

	case *runtime.Class:
		if init := v.FindMethod("init"); init != nil {
			return init.Params(), true
		}

		return nil, true

	case runtime.Callable:
		params = make([]string, v.Arity())
		for i := range params {
			params[i] = "arg" + strconv.Itoa(i)
		}

		return params, true
	}

	return nil, false
}

// renderSignatureHint renders name(params...) with the parameter at index
// current highlighted.
func renderSignatureHint(name string, params []string, current int) string {
	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(name))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureStyle.Render(", "))
		}

		if i == current {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	if len(params) > 0 && current >= len(params) {
		b.WriteString(errorStyle.Render(" too many arguments"))
	}

	return b.String()
}
