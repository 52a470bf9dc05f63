package bfvm

// Tape is sparse memory addressed by any int, every unset cell reads 0.
type Tape map[int]int

func (t Tape) Get(addr int) int {
	return t[addr]
}

func (t Tape) Set(addr int, value int) {
	if value == 0 {
		delete(t, addr)
		return
	}
	t[addr] = value
}

// State is the memory of one execution.
type State struct {
	Tape    Tape
	Pointer int
	// Steps counts executed instructions
	Steps int
}

func NewState() *State {
	return &State{
		Tape: make(Tape),
	}
}

func (s *State) Cell() int {
	return s.Tape.Get(s.Pointer)
}
