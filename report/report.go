// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report renders machine snapshots for people.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/norma/machine"
	"github.com/ezrec/norma/norma"
	"github.com/ezrec/norma/translate"
)

var f = translate.From

const RULE_WIDTH = 70 // Width of the separator rule.

// Describe returns the trace form of an instruction.
func Describe(inst norma.Instruction) string {
	switch inst := inst.(type) {
	case norma.Increment:
		return fmt.Sprintf("FACA ADD (%v) VA_PARA %d", inst.Reg, inst.Next)
	case norma.Decrement:
		return fmt.Sprintf("FACA SUB (%v) VA_PARA %d", inst.Reg, inst.Next)
	case norma.BranchIfZero:
		return fmt.Sprintf("SE ZERO (%v) ENTAO VA_PARA %d SENAO VA_PARA %d", inst.Reg, inst.IfZero, inst.IfNonZero)
	}
	return ""
}

// Tuple formats register values as '(1, 2, 3)'.
func Tuple(values []uint64) string {
	parts := make([]string, len(values))
	for n, value := range values {
		parts[n] = fmt.Sprintf("%d", value)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Writer prints a run trace, one line per snapshot.
type Writer struct {
	Out   io.Writer // Destination of the trace.
	Quiet bool      // If set, no snapshot is printed; only the final report.
}

// Rule prints a separator line.
func (w *Writer) Rule() (err error) {
	_, err = fmt.Fprintln(w.Out, strings.Repeat("-", RULE_WIDTH))
	return
}

// Line returns the trace line for a snapshot.
func Line(snap machine.Snapshot) string {
	var counter string
	var desc string

	switch snap.Phase {
	case machine.PHASE_ENTRY:
		counter = fmt.Sprintf("%d", snap.Counter)
		desc = f("M (data entry)")
	case machine.PHASE_END:
		counter = f("END")
		desc = f("HALT (jump to missing line %d)", snap.Counter)
	default:
		counter = fmt.Sprintf("%d", snap.Counter)
		desc = Describe(snap.Instruction)
	}

	return fmt.Sprintf("%-18v | %v %-5v | %v %v",
		Tuple(snap.Registers), f("Line:"), counter, f("Instruction:"), desc)
}

// Snapshot prints a snapshot, framing the run with separator rules.
func (w *Writer) Snapshot(snap machine.Snapshot) (err error) {
	if w.Quiet {
		return
	}

	if snap.Phase != machine.PHASE_STEP {
		err = w.Rule()
		if err != nil {
			return
		}
	}

	_, err = fmt.Fprintln(w.Out, Line(snap))
	return
}

// Table renders a register bank as a table.
func Table(bank *norma.Registers) string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{f("Register"), f("Value")})
	for name, value := range bank.All() {
		tw.AppendRow(table.Row{name, value})
	}
	return tw.Render()
}

// Final prints the end of run report.
func (w *Writer) Final(bank *norma.Registers) (err error) {
	_, err = fmt.Fprintf(w.Out, "\n%v\n\n%v\n%v\n",
		f("Execution finished."), f("Final register state"), Table(bank))
	if err != nil {
		return
	}
	return w.Rule()
}
