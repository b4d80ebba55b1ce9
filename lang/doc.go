// Package lang runs programs written in a small dynamically typed scripting
// language with C-like syntax, first-class functions, closures, and classes
// with single inheritance.
//
// # Pipeline
//
// A program passes through four stages, each in its own package:
//
//   - [github.com/ardnew/lox/lang/lexer] scans text into tokens
//   - [github.com/ardnew/lox/lang/parser] builds a syntax tree
//   - [github.com/ardnew/lox/lang/resolver] binds local variables to scopes
//   - [github.com/ardnew/lox/lang/runtime] walks the tree and executes it
//
// Scanning and parsing continue past errors so that every problem in a
// program is reported at once, but a program never advances to the next
// stage after a stage reports an error. All errors are delivered to a
// [github.com/ardnew/lox/lang/diag.Reporter].
//
// # Example
//
//	class Greeter {
//	  init(name) { this.name = name; }
//	  greet() { print "Hello, " + this.name + "!"; }
//	}
//
//	fun counter() {
//	  var n = 0;
//	  fun next() { n = n + 1; return n; }
//	  return next;
//	}
//
//	Greeter("world").greet();
//	var c = counter();
//	c();
//	print c(); // 2
//
// # Usage
//
//	err := lang.Run(ctx, text,
//		lang.WithOutput(os.Stdout),
//		lang.WithReporter(diag.NewCollector(diag.WithOutput(os.Stderr))),
//	)
//	switch {
//	case errors.Is(err, lang.ErrCompile): // exit 65
//	case errors.Is(err, lang.ErrRuntime): // exit 70
//	}
//
// [ParseReader] caches parsed programs by content, and [WithInterpreter]
// runs successive programs against the same global state, as an interactive
// prompt does.
//
// # Definitions
//
// [Define] binds a global variable to the result of an expr-lang expression,
// so values can be injected from the command line:
//
//	lox --define 'width=80' --define 'home=env("HOME")' run script.lox
package lang
