package machine

import (
	"context"
	"iter"
	"time"
)

// Paced delays between snapshots for human-readable tracing.
// The entry snapshot is held for twice the delay. A zero delay does not
// wait at all. The sequence ends when the context is cancelled.
func Paced(ctx context.Context, seq iter.Seq[Snapshot], delay time.Duration) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for snap := range seq {
			if ctx.Err() != nil {
				return
			}
			if !yield(snap) {
				return
			}

			wait := delay
			switch snap.Phase {
			case PHASE_ENTRY:
				wait *= 2
			case PHASE_END:
				wait = 0
			}
			if wait <= 0 {
				continue
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}
}

// Limit ends a trace after a number of executed instructions.
// A limit of zero or less does not limit the trace.
func Limit(seq iter.Seq[Snapshot], steps int) iter.Seq[Snapshot] {
	if steps <= 0 {
		return seq
	}

	return func(yield func(Snapshot) bool) {
		for snap := range seq {
			if snap.Phase == PHASE_STEP && snap.Steps >= steps {
				return
			}
			if !yield(snap) {
				return
			}
		}
	}
}
