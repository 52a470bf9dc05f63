package units

import (
	"context"
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
)

// Function maps an input string to the program's output.
type Function func(input string) (string, error)

// NewFunction translates source once; every call runs with a fresh tape.
func NewFunction(source string, opts ...bfvm.Option) (Function, error) {
	prog, err := bfcode.Translate(source)
	if err != nil {
		return nil, err
	}
	return functionOf(bfvm.New(prog, opts...)), nil
}

func functionOf(vm *bfvm.VM) Function {
	return func(input string) (string, error) {
		var out strings.Builder
		err := vm.Run(context.Background(), bfvm.IO{
			Output: &out,
			Input:  strings.NewReader(input),
		})
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
}
