package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lox/log"
	"github.com/ardnew/lox/profile"
)

// pprofConfig holds the profiling flags. Without the pprof build tag the
// only accepted mode is the empty string.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"${pprofModeHelp}"          placeholder:"MODE" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory." type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	help := "Enable profiling (requires a binary built with -tags " + profile.Tag + ")."
	if profile.Enabled() {
		help = "Enable profiling (" + strings.Join(profile.Modes(), ", ") + ")."
	}

	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofModeHelp": help,
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured and returns the function that stops
// it.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	log.DebugContext(ctx, "pprof start",
		slog.String("mode", f.Mode),
		slog.String("dir", f.Dir),
	)

	profiler := profile.Make(
		profile.WithMode(f.Mode),
		profile.WithPath(f.Dir),
		profile.WithQuiet(true),
	).Start()

	return func() {
		log.DebugContext(ctx, "pprof stop",
			slog.String("mode", f.Mode),
			slog.String("dir", f.Dir),
		)
		profiler.Stop()
	}
}
