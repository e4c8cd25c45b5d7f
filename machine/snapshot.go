package machine

import (
	"github.com/ezrec/norma/norma"
)

// Phase identifies where in a run a snapshot was taken.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_ENTRY = Phase(iota) // entry
	PHASE_STEP                // step
	PHASE_END                 // end
)

// Snapshot is the observable state of a run at one point in time.
type Snapshot struct {
	Phase       Phase             // Entry, before an instruction, or end of run.
	Steps       int               // Instructions executed so far.
	Counter     int               // Program counter; the halting label at PHASE_END.
	Registers   []uint64          // Values of norma.DisplayNames.
	Instruction norma.Instruction // Instruction about to execute, PHASE_STEP only.
	Bank        *norma.Registers  // Complete final register bank, PHASE_END only.
}
