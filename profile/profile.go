package profile

import "slices"

// Tag is the build tag that compiles in profiling support. It also names
// the profile output subdirectory and the CLI flag prefix.
const Tag = "pprof"

// Profiler configures a single profiling session.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option sets a field of a [Profiler].
type Option func(Profiler) Profiler

// Make returns a [Profiler] configured by opts.
func Make(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		p = opt(p)
	}

	return p
}

// Start begins profiling and returns a handle for stopping it.
//
// If the binary was built without the pprof tag, or Mode is empty or not one
// of [Modes], Start returns a no-op. Both Start and Stop are always safely
// callable.
func (p Profiler) Start() interface{ Stop() } {
	if p.Mode == "" || !slices.Contains(Modes(), p.Mode) {
		return ignore{}
	}

	return start(p.Mode, p.Path, p.Quiet)
}

// Enabled reports whether profiling support was compiled in.
func Enabled() bool { return len(Modes()) > 0 }

// WithMode sets the profiling mode.
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet suppresses the profiler's own start and stop messages.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

type ignore struct{}

func (ignore) Stop() {}
