package units

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/bfvm"
)

// Unit is a translated program ready to be invoked any number of times.
type Unit struct {
	Name    string
	Path    string
	Program bfcode.Program
	// Function is built once together with the unit
	Function Function

	vm *bfvm.VM
}

// Factory builds a unit from a name and its source text.
type Factory func(name string, source string) (*Unit, error)

func New(name string, source string, opts ...bfvm.Option) (*Unit, error) {
	prog, err := bfcode.TranslateReader(name, strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	vm := bfvm.New(prog, opts...)
	return &Unit{
		Name:     name,
		Program:  prog,
		Function: functionOf(vm),
		vm:       vm,
	}, nil
}

// FromFile builds a unit named after the file.
func FromFile(path string, opts ...bfvm.Option) (*Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog, err := bfcode.TranslateReader(path, strings.NewReader(string(content)))
	if err != nil {
		return nil, err
	}
	vm := bfvm.New(prog, opts...)
	return &Unit{
		Name:     SymbolName(path),
		Path:     path,
		Program:  prog,
		Function: functionOf(vm),
		vm:       vm,
	}, nil
}

// NewFactory returns a Factory applying opts to every unit it builds.
func NewFactory(opts ...bfvm.Option) Factory {
	return func(name string, source string) (*Unit, error) {
		return New(name, source, opts...)
	}
}

func (u *Unit) Call(input string) (string, error) {
	return u.Function(input)
}

// Invoke runs the unit against raw streams.
func (u *Unit) Invoke(ctx context.Context, output io.Writer, input io.Reader) error {
	return u.Procedure()(ctx, output, input)
}

func (u *Unit) Procedure() Procedure {
	return procedureOf(u.vm)
}

func (u *Unit) Options() bfvm.Options {
	return u.vm.Options
}

// SymbolName derives a binding name from a source file path.
// "programs/hello.bf" gives "hello".
func SymbolName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
