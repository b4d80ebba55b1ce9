package runtime

import (
	"math"
	"strconv"
)

// Value is a runtime value. The set of implementations is closed: [Nil],
// [Bool], [Number], [String], and the pointer types [*Function], [*Native],
// [*Class] and [*Instance].
type Value interface {
	// String returns the text written by a print statement.
	String() string

	value()
}

// Nil is the absence of a value.
type Nil struct{}

// Bool is a boolean value.
type Bool bool

// Number is a double-precision floating point value.
type Number float64

// String is an immutable string value.
type String string

func (Nil) value()    {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}

func (Nil) String() string { return "nil" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String formats integral numbers without a fractional part.
func (n Number) String() string {
	f := float64(n)

	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s String) String() string { return string(s) }

// Truthy reports whether v counts as true in a condition.
// Only nil and false are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal reports whether a and b are the same value.
//
// Values of different variants are never equal. Numbers compare with IEEE
// semantics, so NaN is not equal to itself. Strings compare by content.
// Functions, classes and instances compare by identity.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)

		return ok
	case Bool:
		v, ok := b.(Bool)

		return ok && a == v
	case Number:
		v, ok := b.(Number)

		return ok && float64(a) == float64(v)
	case String:
		v, ok := b.(String)

		return ok && a == v
	default:
		return a == b
	}
}

// FromLiteral converts a literal value held by the syntax tree.
func FromLiteral(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	default:
		panic("runtime: unhandled literal type")
	}
}

// TypeName returns a short description of the variant of v.
func TypeName(v Value) string {
	switch v.(type) {
	case nil, Nil:
		return "nil"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case *Function, *Native:
		return "function"
	case *Class:
		return "class"
	case *Instance:
		return "instance"
	default:
		panic("runtime: unhandled value variant")
	}
}
