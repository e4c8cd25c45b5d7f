package norma

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Program is an immutable table of instructions keyed by label.
type Program struct {
	code  map[int]Instruction
	start int
}

// MakeProgram builds a Program from a label to instruction table.
// The table is copied. The start label is the lowest label present.
func MakeProgram(code map[int]Instruction) (prog *Program, err error) {
	if len(code) == 0 {
		err = ErrEmptyProgram
		return
	}

	prog = &Program{
		code: make(map[int]Instruction, len(code)),
	}

	first := true
	for label, inst := range code {
		if inst == nil {
			prog = nil
			err = fmt.Errorf("%w: %v", ErrInstructionInvalid, label)
			return
		}
		prog.code[label] = inst
		if first || label < prog.start {
			prog.start = label
			first = false
		}
	}

	return
}

// Start returns the label execution begins at.
func (prog *Program) Start() int {
	return prog.start
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.code)
}

// Fetch returns the instruction at a label.
func (prog *Program) Fetch(label int) (inst Instruction, ok bool) {
	inst, ok = prog.code[label]
	return
}

// Has reports if a label is in the program.
func (prog *Program) Has(label int) bool {
	_, ok := prog.code[label]
	return ok
}

// Labels iterates over the program labels in ascending order.
func (prog *Program) Labels() iter.Seq[int] {
	return slices.Values(slices.Sorted(maps.Keys(prog.code)))
}

// All iterates over the program in ascending label order.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(label int, inst Instruction) bool) {
		for label := range prog.Labels() {
			if !yield(label, prog.code[label]) {
				return
			}
		}
	}
}

// String returns the program as source text.
func (prog *Program) String() string {
	var sb strings.Builder
	for label, inst := range prog.All() {
		fmt.Fprintf(&sb, "%d: %v\n", label, inst)
	}
	return sb.String()
}
