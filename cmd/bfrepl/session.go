package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
)

// session keeps one tape across evaluated lines.
type session struct {
	state   *bfvm.State
	options []bfvm.Option
	output  io.Writer
	input   io.Reader
}

func newSession(options []bfvm.Option, output io.Writer, input io.Reader) *session {
	return &session{
		state:   bfvm.NewState(),
		options: options,
		output:  output,
		input:   input,
	}
}

var errQuit = errors.New("quit")

func (s *session) eval(ctx context.Context, line string) error {
	switch strings.TrimSpace(line) {
	case "":
		return nil
	case ":q", ":quit":
		return errQuit
	case ":reset":
		s.state = bfvm.NewState()
		return nil
	case ":tape":
		s.printTape()
		return nil
	case ":help":
		fmt.Fprintln(s.output, ":tape   show pointer and non-zero cells")
		fmt.Fprintln(s.output, ":reset  clear the tape")
		fmt.Fprintln(s.output, ":quit   exit")
		return nil
	}

	prog, err := bfcode.TranslateReader("repl", strings.NewReader(line))
	if err != nil {
		return err
	}
	return bfvm.New(prog, s.options...).Exec(ctx, s.state, bfvm.IO{
		Output: s.output,
		Input:  s.input,
	})
}

func (s *session) printTape() {
	fmt.Fprintf(s.output, "pointer %d, steps %d\n", s.state.Pointer, s.state.Steps)
	for _, addr := range slices.Sorted(maps.Keys(s.state.Tape)) {
		mark := " "
		if addr == s.state.Pointer {
			mark = "*"
		}
		fmt.Fprintf(s.output, "%s%6d: %d\n", mark, addr, s.state.Tape[addr])
	}
}
