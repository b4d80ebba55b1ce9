package runtime

import (
	"maps"
	"slices"

	"github.com/ardnew/lox/lang/token"
)

// Environment is one frame of variable bindings in a chain of lexical
// scopes. A frame stays alive for as long as any closure references it.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

// NewEnvironment returns an empty frame nested inside enclosing, which is
// nil for the global frame.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Enclosing returns the parent frame, or nil for the global frame.
func (e *Environment) Enclosing() *Environment { return e.enclosing }

// Define binds name in this frame, replacing any existing binding.
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get returns the value bound to name in the nearest frame declaring it.
func (e *Environment) Get(name token.Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}

	return nil, undefinedVariable(name)
}

// Assign rebinds name in the nearest frame declaring it.
func (e *Environment) Assign(name token.Token, v Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = v

			return nil
		}
	}

	return undefinedVariable(name)
}

// GetAt returns the value bound to name exactly depth frames out, without
// searching.
func (e *Environment) GetAt(depth int, name string) Value {
	if v, ok := e.ancestor(depth).values[name]; ok {
		return v
	}

	return Nil{}
}

// AssignAt rebinds name exactly depth frames out, without searching.
func (e *Environment) AssignAt(depth int, name token.Token, v Value) {
	e.ancestor(depth).values[name.Lexeme] = v
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for range depth {
		env = env.enclosing
	}

	return env
}

// Names returns the names bound in this frame, sorted.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}

func undefinedVariable(name token.Token) *Error {
	return NewError(name, "Undefined variable '"+name.Lexeme+"'.")
}
