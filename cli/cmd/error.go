package cmd

import (
	"errors"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lox/lang"
)

// Sentinel command errors. Derived errors match them under errors.Is.
var (
	ErrOpenSource  = lang.NewError("open source")
	ErrNoSource    = lang.NewError("no source")
	ErrMarshal     = lang.NewError("marshal syntax tree")
	ErrWriteConfig = lang.NewError("write configuration file")
	ErrFileExists  = lang.NewError("file exists (use --force to overwrite)")
)

// Exit codes, following the BSD sysexits convention.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 64 // command line usage error
	ExitData     = 65 // script failed to compile
	ExitNoInput  = 66 // script could not be opened
	ExitSoftware = 70 // script raised a runtime error
)

// ExitCode returns the process exit status for an error returned by a
// command.
func ExitCode(err error) int {
	var perr *kong.ParseError

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, lang.ErrCompile):
		return ExitData
	case errors.Is(err, lang.ErrRuntime):
		return ExitSoftware
	case errors.Is(err, ErrOpenSource), errors.Is(err, ErrNoSource):
		return ExitNoInput
	case errors.As(err, &perr):
		return ExitUsage
	}

	return ExitFailure
}

// Reported reports whether the diagnostics behind err were already written
// to the user, so the error itself need not be logged again.
func Reported(err error) bool {
	return errors.Is(err, lang.ErrCompile) || errors.Is(err, lang.ErrRuntime)
}
