package bfcode

import "strings"

var symbols = map[Op][2]byte{
	OpMove:   {'<', '>'},
	OpAdjust: {'-', '+'},
}

// Format renders p back to source using only the eight commands.
func Format(p Program) string {
	var sb strings.Builder
	format(&sb, p)
	return sb.String()
}

func format(sb *strings.Builder, p Program) {
	for _, inst := range p {
		switch inst.Op {
		case OpMove, OpAdjust:
			if inst.Delta < 0 {
				sb.WriteByte(symbols[inst.Op][0])
			} else {
				sb.WriteByte(symbols[inst.Op][1])
			}
		case OpOutput:
			sb.WriteByte('.')
		case OpInput:
			sb.WriteByte(',')
		case OpLoop:
			sb.WriteByte('[')
			format(sb, inst.Body)
			sb.WriteByte(']')
		}
	}
}
