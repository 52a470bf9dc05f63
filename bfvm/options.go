package bfvm

import "fmt"

type CellMode uint8

const (
	// CellUnbounded cells are plain ints, never wrapped
	CellUnbounded CellMode = iota
	// CellByte cells wrap modulo 256
	CellByte
)

func (c CellMode) String() string {
	switch c {
	case CellUnbounded:
		return "unbounded"
	case CellByte:
		return "byte"
	}
	return fmt.Sprintf("CellMode(%d)", c)
}

func ParseCellMode(str string) (CellMode, error) {
	switch str {
	case "", "unbounded":
		return CellUnbounded, nil
	case "byte":
		return CellByte, nil
	}
	return 0, fmt.Errorf("unknown cell mode: %s", str)
}

// EOF is stored into the current cell when input is exhausted.
// Under CellByte it is normalized to 255.
const EOF = -1

type Options struct {
	Cells CellMode
}

type Option func(*Options)

func WithCells(mode CellMode) Option {
	return func(o *Options) {
		o.Cells = mode
	}
}

func (o Options) normalize(value int) int {
	if o.Cells == CellByte {
		value %= 256
		if value < 0 {
			value += 256
		}
	}
	return value
}
