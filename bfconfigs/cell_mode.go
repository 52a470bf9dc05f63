package bfconfigs

import (
	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
)

var byteCellsFlag = cmds.Switch("-byte-cells")

func (Module) CellMode(
	loader configs.Loader,
) bfvm.CellMode {
	if *byteCellsFlag {
		return bfvm.CellByte
	}
	mode, err := bfvm.ParseCellMode(configs.First[string](loader, "cell_mode"))
	if err != nil {
		// the schema only admits known modes
		panic(err)
	}
	return mode
}

// VMOptions collects the engine options from configuration.
type VMOptions []bfvm.Option

func (Module) VMOptions(
	cellMode bfvm.CellMode,
) VMOptions {
	return VMOptions{
		bfvm.WithCells(cellMode),
	}
}
