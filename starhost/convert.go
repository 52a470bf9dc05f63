package starhost

import (
	"fmt"

	"github.com/reusee/bf/bfcode"
	"github.com/reusee/bf/units"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case *units.Unit:
		return UnitValue{
			Unit: v,
		}

	case bfcode.Program:
		return programValue(v)

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// programValue renders an instruction tree as nested lists of dicts.
func programValue(prog bfcode.Program) starlark.Value {
	elems := make([]starlark.Value, 0, len(prog))
	for _, inst := range prog {
		d := starlark.NewDict(5)
		d.SetKey(starlark.String("op"), starlark.String(inst.Op.String()))
		d.SetKey(starlark.String("line"), starlark.MakeInt(inst.Pos.Line))
		d.SetKey(starlark.String("column"), starlark.MakeInt(inst.Pos.Column))
		switch inst.Op {
		case bfcode.OpMove, bfcode.OpAdjust:
			d.SetKey(starlark.String("delta"), starlark.MakeInt(inst.Delta))
		case bfcode.OpLoop:
			d.SetKey(starlark.String("body"), programValue(inst.Body))
		}
		elems = append(elems, d)
	}
	return starlark.NewList(elems)
}
