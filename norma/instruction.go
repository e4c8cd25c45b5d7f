package norma

import (
	"fmt"
)

// Instruction is one of Increment, Decrement or BranchIfZero.
type Instruction interface {
	// Register returns the register the instruction operates on.
	Register() string
	// Targets returns every label the instruction may jump to.
	Targets() []int
	// String returns the instruction in program source form.
	String() string

	isInstruction()
}

// Increment adds one to a register, then jumps to Next.
type Increment struct {
	Reg  string
	Next int
}

func (inst Increment) Register() string { return inst.Reg }
func (inst Increment) Targets() []int   { return []int{inst.Next} }
func (Increment) isInstruction()        {}

func (inst Increment) String() string {
	return fmt.Sprintf("faca add %v va_para %d", inst.Reg, inst.Next)
}

// Decrement subtracts one from a non-zero register, then jumps to Next.
type Decrement struct {
	Reg  string
	Next int
}

func (inst Decrement) Register() string { return inst.Reg }
func (inst Decrement) Targets() []int   { return []int{inst.Next} }
func (Decrement) isInstruction()        {}

func (inst Decrement) String() string {
	return fmt.Sprintf("faca sub %v va_para %d", inst.Reg, inst.Next)
}

// BranchIfZero jumps to IfZero when the register is zero, and to IfNonZero otherwise.
type BranchIfZero struct {
	Reg       string
	IfZero    int
	IfNonZero int
}

func (inst BranchIfZero) Register() string { return inst.Reg }
func (inst BranchIfZero) Targets() []int   { return []int{inst.IfZero, inst.IfNonZero} }
func (BranchIfZero) isInstruction()        {}

func (inst BranchIfZero) String() string {
	return fmt.Sprintf("se zero %v entao va_para %d senao va_para %d", inst.Reg, inst.IfZero, inst.IfNonZero)
}
