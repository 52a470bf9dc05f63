package bfvm

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/reusee/bf/bfcode"
)

var ErrInvalidCodePoint = errors.New("invalid code point")

// VM binds one program to an engine configuration.
// It holds no execution state and is safe to run concurrently.
type VM struct {
	Program bfcode.Program
	Options Options
}

func New(prog bfcode.Program, opts ...Option) *VM {
	vm := &VM{
		Program: prog,
	}
	for _, opt := range opts {
		opt(&vm.Options)
	}
	return vm
}

// Run executes prog once with a fresh state.
func Run(ctx context.Context, prog bfcode.Program, stdio IO, opts ...Option) error {
	return New(prog, opts...).Run(ctx, stdio)
}

// Run executes the program with a fresh tape and data pointer.
func (v *VM) Run(ctx context.Context, stdio IO) error {
	return v.Exec(ctx, NewState(), stdio)
}

// Exec executes the program against a caller-owned state.
func (v *VM) Exec(ctx context.Context, state *State, stdio IO) (err error) {
	if state.Tape == nil {
		state.Tape = make(Tape)
	}
	p := newPort(stdio)
	defer func() {
		if e := p.flush(); e != nil && err == nil {
			err = e
		}
	}()
	return v.exec(ctx, state, p, v.Program)
}

func (v *VM) exec(ctx context.Context, state *State, p *port, prog bfcode.Program) error {
	for i := range prog {
		inst := &prog[i]
		state.Steps++

		switch inst.Op {

		case bfcode.OpMove:
			state.Pointer += inst.Delta

		case bfcode.OpAdjust:
			state.Tape.Set(
				state.Pointer,
				v.Options.normalize(state.Tape.Get(state.Pointer)+inst.Delta),
			)

		case bfcode.OpOutput:
			value := state.Tape.Get(state.Pointer)
			if value < 0 || value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
				return fmt.Errorf("%w: %d at %d:%d", ErrInvalidCodePoint, value, inst.Pos.Line, inst.Pos.Column)
			}
			if err := p.writeRune(rune(value)); err != nil {
				return err
			}

		case bfcode.OpInput:
			// pending output must be visible before blocking on input
			if err := p.flush(); err != nil {
				return err
			}
			r, eof, err := p.readRune()
			if err != nil {
				return err
			}
			if eof {
				state.Tape.Set(state.Pointer, v.Options.normalize(EOF))
			} else {
				state.Tape.Set(state.Pointer, v.Options.normalize(int(r)))
			}

		case bfcode.OpLoop:
			for state.Tape.Get(state.Pointer) != 0 {
				if err := v.exec(ctx, state, p, inst.Body); err != nil {
					return err
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}

		default:
			return fmt.Errorf("bad instruction: %v", inst.Op)
		}
	}
	return nil
}
