package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/units"
	"github.com/reusee/dscope"
)

const usage = `usage: bf [flags] FILE

runs the brainfuck program in FILE against standard input and output`

func main() {
	scope := dscope.New(
		new(bfconfigs.Module),
		modes.ForProduction(),
	)
	os.Exit(run(scope, os.Args[1:], os.Stdout, os.Stdin, os.Stderr))
}

func run(scope dscope.Scope, args []string, stdout io.Writer, stdin io.Reader, stderr io.Writer) (code int) {
	cmds.GlobalExecutor.Header = usage
	cmds.GlobalExecutor.Output = stderr
	args, err := cmds.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "bf: %v\n", err)
		return 1
	}
	if len(args) != 1 {
		cmds.GlobalExecutor.PrintUsage()
		return 1
	}
	path := args[0]

	scope.Call(func(
		vmOptions bfconfigs.VMOptions,
		logger logs.Logger,
	) {
		unit, err := units.FromFile(path, vmOptions...)
		if err != nil {
			fmt.Fprintf(stderr, "bf: %v\n", err)
			code = 1
			return
		}
		logger.Debug("translated",
			"path", path,
			"instructions", unit.Program.Count(),
			"depth", unit.Program.Depth(),
		)

		if err := unit.Invoke(context.Background(), stdout, stdin); err != nil {
			fmt.Fprintf(stderr, "bf: %v\n", err)
			code = 1
		}
	})
	return
}
