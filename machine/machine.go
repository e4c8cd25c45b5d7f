// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package machine runs Norma programs and traces their execution.
package machine

import (
	"iter"
	"log/slog"

	"github.com/ezrec/norma/internal"
	"github.com/ezrec/norma/norma"
)

// Machine runs a Norma program. Program + execution state.
type Machine struct {
	Verbose      bool           // If set, logs every executed instruction.
	Logger       *slog.Logger   // Diagnostics sink, nil for none.
	Program      *norma.Program // Program being run; shared, never modified.
	*norma.State                // Execution state owned by this machine.
	Steps        int            // Instructions executed since the last reset.

	warned map[string]bool
}

// NewMachine creates a machine for a program with every register at zero.
func NewMachine(prog *norma.Program) (m *Machine) {
	m = &Machine{
		Program: prog,
	}
	m.State = norma.NewState(prog, nil)

	return
}

// Init resets the registers and applies textual initial values.
// Rejected entries are logged and returned.
func (m *Machine) Init(values map[string]string) (diags []error) {
	diags = m.Registers.Init(values)
	if m.Logger != nil {
		for _, diag := range diags {
			m.Logger.Warn("register init", "error", diag)
		}
	}

	return
}

// Reset moves the counter back to the program's start label.
// Register values are kept.
func (m *Machine) Reset() {
	m.State = norma.NewState(m.Program, m.Registers)
	m.Steps = 0
}

// Instruction returns the instruction at the current counter.
func (m *Machine) Instruction() (inst norma.Instruction, ok bool) {
	return m.Program.Fetch(m.Counter)
}

// Tick executes a single instruction.
func (m *Machine) Tick() (done bool) {
	if m.Halted {
		return true
	}

	inst, ok := m.Instruction()
	if ok {
		m.checkRegister(inst.Register())
		if m.Verbose && m.Logger != nil {
			m.Logger.Debug("tick", "label", m.Counter, "instruction", inst.String(), "registers", m.Registers.String())
		}
	}

	done = m.Program.Step(m.State)
	m.Steps++

	return
}

// checkRegister warns once per run about a register outside the bank.
func (m *Machine) checkRegister(reg string) {
	if norma.IsRegister(reg) || m.warned[reg] {
		return
	}
	if m.warned == nil {
		m.warned = make(map[string]bool)
	}
	m.warned[reg] = true
	if m.Logger != nil {
		m.Logger.Warn("implicit register", "register", reg, "label", m.Counter)
	}
}

// Snapshot captures the current state.
func (m *Machine) Snapshot(phase Phase) (snap Snapshot) {
	snap = Snapshot{
		Phase:     phase,
		Steps:     m.Steps,
		Counter:   m.Counter,
		Registers: m.Registers.Values(norma.DisplayNames...),
	}

	switch phase {
	case PHASE_STEP:
		snap.Instruction, _ = m.Instruction()
	case PHASE_END:
		snap.Bank = m.Registers.Clone()
	}

	return
}

// Trace starts a run from the program's start label and returns its
// snapshots: the entry state, the state before every instruction, and
// the state once halted. The sequence never ends if the program does not
// halt. A trace can only be ranged over once; the consumer may stop at
// any point.
func (m *Machine) Trace() iter.Seq[Snapshot] {
	entry := func(yield func(Snapshot) bool) {
		m.Reset()
		clear(m.warned)
		yield(m.Snapshot(PHASE_ENTRY))
	}

	steps := func(yield func(Snapshot) bool) {
		for !m.Halted {
			if !yield(m.Snapshot(PHASE_STEP)) {
				return
			}
			m.Tick()
		}
	}

	end := func(yield func(Snapshot) bool) {
		yield(m.Snapshot(PHASE_END))
	}

	return internal.IterOnce(internal.IterSeqConcat(entry, steps, end))
}
