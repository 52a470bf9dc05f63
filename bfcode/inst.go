package bfcode

type Op uint8

const (
	OpInvalid Op = iota
	OpMove
	OpAdjust
	OpOutput
	OpInput
	OpLoop
)

func (o Op) String() string {
	switch o {
	case OpMove:
		return "move"
	case OpAdjust:
		return "adjust"
	case OpOutput:
		return "output"
	case OpInput:
		return "input"
	case OpLoop:
		return "loop"
	}
	return "invalid"
}

// Instruction is one node of the instruction tree.
// Delta is +1 or -1 for OpMove and OpAdjust, Body is only set for OpLoop.
type Instruction struct {
	Op    Op
	Delta int
	Body  Program
	Pos   Pos
}

// Program is an ordered sequence of instructions, the root of the tree.
type Program []Instruction

// Count returns the number of instructions in the whole tree.
func (p Program) Count() int {
	n := 0
	for _, inst := range p {
		n++
		if inst.Op == OpLoop {
			n += inst.Body.Count()
		}
	}
	return n
}

// Depth returns the maximum loop nesting depth.
func (p Program) Depth() int {
	max := 0
	for _, inst := range p {
		if inst.Op != OpLoop {
			continue
		}
		if d := inst.Body.Depth() + 1; d > max {
			max = d
		}
	}
	return max
}

type Pos struct {
	Offset int
	Line   int
	Column int
}
