package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lox/cli/cmd"
	"github.com/ardnew/lox/pkg"
)

// CLI is the top-level command-line interface for lox.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag  `help:"Print version information and exit."`
	Define  map[string]string `help:"Define a global variable from an expression (name=expr)." mapsep:"none" placeholder:"NAME=EXPR" short:"D"`
	Source  []string          `help:"Script file(s) or '-' for stdin to run before the REPL starts." short:"s"`

	Run    cmd.Run    `cmd:"" default:"withargs" help:"Run a script."`
	Repl   cmd.Repl   `cmd:""                    help:"Start an interactive session."`
	Tokens cmd.Tokens `cmd:""                    help:"Print the tokens of a script."`
	AST    cmd.AST    `cmd:"" name:"ast"         help:"Print the syntax tree of a script."`
	Init   cmd.Init   `cmd:""                    help:"Initialize configuration file."`
}

// Run executes the lox CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when kong
// itself terminates, such as after printing help.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	yamlPath := configPath(baseConfig + ".yaml")
	jsonPath := configPath(baseConfig + ".json")

	vars := kong.Vars{
		"version":            pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier: yamlPath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so that the logger is configured before any
	// message kong might emit while parsing.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, jsonPath),
		kong.Configuration(resolve(ctx), yamlPath),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithDefines(ctx, cli.Define)
	ctx = cmd.WithSources(ctx, cli.Source)

	cli.Log.start(ctx)

	// [pprofConfig.start] is a no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run()
}
