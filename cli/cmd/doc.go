// Package cmd implements the lox subcommands: run, repl, tokens, ast and
// init.
//
// Commands receive a [context.Context] bound by kong. Values shared between
// commands, such as the global --define and --source flags and the kong
// context itself, are stored in it with [WithDefines], [WithSources] and
// [WithContext].
//
// A command that fails returns an error; [ExitCode] maps it to the process
// exit status.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
