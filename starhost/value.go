package starhost

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/units"
	"go.starlark.net/starlark"
)

// UnitValue exposes a brainfuck unit to Starlark as a callable.
// Calling it with an optional input string returns the output string.
type UnitValue struct {
	Unit *units.Unit
}

var _ starlark.Callable = UnitValue{}

var _ starlark.HasAttrs = UnitValue{}

func (u UnitValue) String() string {
	return fmt.Sprintf("<brainfuck %s>", u.Unit.Name)
}

func (u UnitValue) Type() string {
	return "brainfuck"
}

func (u UnitValue) Freeze() {}

func (u UnitValue) Truth() starlark.Bool {
	return starlark.True
}

func (u UnitValue) Hash() (uint32, error) {
	return starlark.String(u.Unit.Name).Hash()
}

func (u UnitValue) Name() string {
	return u.Unit.Name
}

func (u UnitValue) CallInternal(thread *starlark.Thread, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var input string
	if err := starlark.UnpackArgs(u.Name(), args, kwargs, "input?", &input); err != nil {
		return nil, err
	}
	var output strings.Builder
	if err := u.Unit.Invoke(contextOf(thread), &output, strings.NewReader(input)); err != nil {
		return nil, err
	}
	return starlark.String(output.String()), nil
}

var unitAttrNames = []string{
	"instructions",
	"name",
	"path",
	"source",
}

func (u UnitValue) Attr(name string) (starlark.Value, error) {
	switch name {
	case "name":
		return starlark.String(u.Unit.Name), nil
	case "path":
		return starlark.String(u.Unit.Path), nil
	case "instructions":
		return starlark.MakeInt(u.Unit.Program.Count()), nil
	case "source":
		return starlark.String(bfcode.Format(u.Unit.Program)), nil
	}
	return nil, nil
}

func (u UnitValue) AttrNames() []string {
	return unitAttrNames
}

const contextKey = "context"

func contextOf(thread *starlark.Thread) context.Context {
	if ctx, ok := thread.Local(contextKey).(context.Context); ok {
		return ctx
	}
	return context.Background()
}
