package norma

// State is the execution state of one run of a Program.
type State struct {
	Registers *Registers // Register bank.
	Counter   int        // Label of the next instruction.
	Halted    bool       // Set once Counter is not a label of the program.
}

// NewState starts a run of a program from its start label.
// A nil register bank starts with every register at zero.
func NewState(prog *Program, regs *Registers) (st *State) {
	if regs == nil {
		regs = NewRegisters()
	}

	st = &State{
		Registers: regs,
		Counter:   prog.Start(),
	}
	st.Halted = !prog.Has(st.Counter)

	return
}

// Step executes the instruction at the state's counter.
// It returns true once the machine has halted.
func (prog *Program) Step(st *State) (halted bool) {
	if st.Halted {
		return true
	}

	inst, ok := prog.Fetch(st.Counter)
	if !ok {
		st.Halted = true
		return true
	}

	regs := st.Registers
	switch inst := inst.(type) {
	case Increment:
		regs.Increment(inst.Reg)
		st.Counter = inst.Next
	case Decrement:
		regs.Decrement(inst.Reg)
		st.Counter = inst.Next
	case BranchIfZero:
		if regs.IsZero(inst.Reg) {
			st.Counter = inst.IfZero
		} else {
			st.Counter = inst.IfNonZero
		}
	}

	st.Halted = !prog.Has(st.Counter)

	return st.Halted
}
