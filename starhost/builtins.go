package starhost

import (
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

const inlineName = "inline"

// Predeclared returns the builtins every script sees.
//
//	brainfuck(source, name="inline") -> callable unit
//	bf_run(source, input="") -> output
//	bf_format(source) -> canonical source
//	bf_parse(source) -> instruction tree as lists of dicts
//	bf_install() -> True if a new importer was added
//	bf_remove() -> True if an importer was removed
func (h *Host) Predeclared() starlark.StringDict {
	return starlark.StringDict{

		"brainfuck": starlark.NewBuiltin("brainfuck", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var source string
			name := inlineName
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source, "name?", &name); err != nil {
				return nil, err
			}
			unit, err := h.Factory(name, source)
			if err != nil {
				return nil, err
			}
			return UnitValue{
				Unit: unit,
			}, nil
		}),

		"bf_run": starlark.NewBuiltin("bf_run", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var source, input string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source, "input?", &input); err != nil {
				return nil, err
			}
			unit, err := h.Factory(inlineName, source)
			if err != nil {
				return nil, err
			}
			var output strings.Builder
			if err := unit.Invoke(contextOf(thread), &output, strings.NewReader(input)); err != nil {
				return nil, err
			}
			return starlark.String(output.String()), nil
		}),

		"bf_format": starlark.NewBuiltin("bf_format", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var source string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source); err != nil {
				return nil, err
			}
			prog, err := bfcode.Translate(source)
			if err != nil {
				return nil, err
			}
			return starlark.String(bfcode.Format(prog)), nil
		}),

		"bf_parse": starlark.NewBuiltin("bf_parse", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var source string
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "source", &source); err != nil {
				return nil, err
			}
			prog, err := bfcode.Translate(source)
			if err != nil {
				return nil, err
			}
			return toStarlarkValue(prog), nil
		}),

		"bf_install": starlarkutil.MakeFunc("bf_install", func() bool {
			if h.Registry == nil {
				return false
			}
			return h.Registry.Install(nil)
		}),

		"bf_remove": starlarkutil.MakeFunc("bf_remove", func() bool {
			if h.Registry == nil {
				return false
			}
			return h.Registry.Remove()
		}),
	}
}
