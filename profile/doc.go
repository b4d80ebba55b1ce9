// Package profile provides optional runtime profiling for the lox
// interpreter.
//
// Profiling is backed by [github.com/pkg/profile] and is only compiled in
// when building with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Profiler.Start] always returns a no-op and [Modes]
// reports no modes.
//
// # Modes
//
// The following modes are supported when built with the tag:
//
//   - allocs:    memory allocation profiling
//   - block:     synchronization blocking
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      live heap allocations
//   - mem:       general memory profiling
//   - mutex:     mutex contention
//   - thread:    thread creation
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.Make(
//		profile.WithMode("cpu"),
//		profile.WithPath(dir),
//	)
//	defer p.Start().Stop()
//
// The lox command exposes the same settings through its --pprof-mode and
// --pprof-dir flags. Profiles of long-running scripts are the usual target:
//
//	lox --pprof-mode cpu run fib.lox
//	go tool pprof -http=: "$XDG_CACHE_HOME/lox/pprof/cpu.pprof"
package profile
