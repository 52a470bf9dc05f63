package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/starhost"
	"github.com/reusee/dscope"
)

const usage = `usage: bfstar [flags] [SCRIPT]

runs a Starlark script in which load("name", "name") imports brainfuck modules,
starts a Starlark REPL without SCRIPT, with -load NAME modules bound`

var (
	noImporter = cmds.Switch("-no-importer")
	preload    = cmds.Collect[string]("-load")
)

func main() {
	cmds.GlobalExecutor.Header = usage
	args, err := cmds.Parse(os.Args[1:])
	if err != nil {
		fail(err)
	}
	if len(args) > 1 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dscope.New(
		new(starhost.Module),
		modes.ForProduction(),
	).Call(func(
		host *starhost.Host,
		newSpan logs.NewSpan,
		logger logs.Logger,
	) {
		if !*noImporter {
			host.Registry.Install(nil)
		}

		if len(args) == 0 {
			globals, err := host.Bindings(*preload)
			if err != nil {
				fail(err)
			}
			host.REPL(ctx, globals)
			return
		}

		ctx, _ := newSpan(ctx, "")
		logger.DebugContext(ctx, "exec script", "path", args[0])
		if _, err := host.ExecFile(ctx, args[0], nil); err != nil {
			fail(logs.WrapSpan(ctx, err))
		}
	})
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "bfstar: %v\n", err)
	os.Exit(1)
}
