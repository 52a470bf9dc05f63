package units

import (
	"context"
	"io"
	"os"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
)

// Procedure runs the program against caller-supplied streams.
// A nil output or input stands for os.Stdout or os.Stdin.
type Procedure func(ctx context.Context, output io.Writer, input io.Reader) error

func NewProcedure(source string, opts ...bfvm.Option) (Procedure, error) {
	prog, err := bfcode.Translate(source)
	if err != nil {
		return nil, err
	}
	return procedureOf(bfvm.New(prog, opts...)), nil
}

func procedureOf(vm *bfvm.VM) Procedure {
	return func(ctx context.Context, output io.Writer, input io.Reader) error {
		if output == nil {
			output = os.Stdout
		}
		if input == nil {
			input = os.Stdin
		}
		return vm.Run(ctx, bfvm.IO{
			Output: output,
			Input:  input,
		})
	}
}
