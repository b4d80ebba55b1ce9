package repl

import "github.com/ardnew/lox/lang"

var (
	// ErrOutOfBounds is returned for a history index with no entry.
	ErrOutOfBounds = lang.NewError("no such history entry")
	// ErrEditDeclined is returned when the user abandons an edit.
	ErrEditDeclined = lang.NewError("edit declined")
)
