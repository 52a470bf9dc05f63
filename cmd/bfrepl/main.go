package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/reusee/bf/bfconfigs"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

const usage = `usage: bfrepl [flags]

evaluates brainfuck line by line on a persistent tape, :help for commands`

func main() {
	cmds.GlobalExecutor.Header = usage
	args, err := cmds.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bfrepl: %v\n", err)
		os.Exit(1)
	}
	if len(args) > 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(1)
	}

	dscope.New(
		new(bfconfigs.Module),
		modes.ForProduction(),
	).Call(func(
		vmOptions bfconfigs.VMOptions,
		logger logs.Logger,
	) {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			s := newSession(vmOptions, os.Stdout, os.Stdin)
			interactive(s, logger)
		} else {
			// program input is not available when stdin carries the lines
			s := newSession(vmOptions, os.Stdout, nil)
			if err := batch(s, os.Stdin); err != nil {
				fmt.Fprintf(os.Stderr, "bfrepl: %v\n", err)
				os.Exit(1)
			}
		}
	})
}

func batch(s *session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		err := s.eval(context.Background(), scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

func interactive(s *session, logger logs.Logger) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bfrepl_history")
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if historyFile == "" {
			return
		}
		f, err := os.Create(historyFile)
		if err != nil {
			logger.Warn("save history", "error", err)
			return
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			logger.Warn("save history", "error", err)
		}
	}()

	for {
		input, err := line.Prompt("bf> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			return
		}
		line.AppendHistory(input)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		err = s.eval(ctx, input)
		cancel()
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
