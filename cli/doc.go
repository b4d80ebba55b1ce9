// Package cli contains the command line interface for lox.
//
// # Usage
//
//	lox [flags] [run] [<source>]     run a script (default command)
//	lox [flags] repl                 start an interactive session
//	lox [flags] tokens [<source>]    print the scanner output
//	lox [flags] ast [<source>]       print the syntax tree
//	lox [flags] init                 write the configuration file
//
// A source of "-", or none at all, reads the script from stdin.
//
// # Global Options
//
//   - -D, --define NAME=EXPR: define a global variable before the script
//     runs. EXPR is evaluated by the expr language; numbers, strings,
//     booleans and nil are accepted.
//   - -s, --source FILE: scripts to run before the REPL prompt appears.
//
// # Configuration
//
// Flag defaults are read from config.yaml and config.json in the user
// configuration directory (for example ~/.config/lox). Keys are flag names,
// with underscores or hyphens:
//
//	log_level: debug
//	define:
//	  answer: "6 * 7"
//
// The init command writes config.yaml from the current flag values.
//
// # Logging Options
//
//   - --log-level: set minimum log level (trace, debug, info, warn, error)
//   - --log-format: set log output format (json, text)
//   - --log-time-layout: set timestamp layout (RFC3339, Kitchen, etc.)
//   - --log-caller: include caller information in log output
//   - --[no-]log-pretty: colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o lox .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: set profile output directory (default ~/.cache/lox/pprof)
//
// # Exit Status
//
// 0 on success, 64 on a usage error, 65 when the script does not compile,
// 66 when the script cannot be opened, 70 on a runtime error and 1 on any
// other failure.
package cli
