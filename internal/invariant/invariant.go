// Package invariant holds the core's single assertion helper. Violations
// here are soundness bugs in the proof procedure itself, not malformed
// input, so they panic rather than returning an error -- there is nothing a
// caller could usefully recover into.
package invariant

import "fmt"

// Assert panics with msg (formatted with args) if cond is false. Call it at
// points where spec-level invariants must hold for the rest of the
// procedure to be sound, e.g. "a clause pulled from the priority queue was
// not actually queued" or "demodulation rewrote a clause into itself".
func Assert(cond bool, msg string, args ...any) {
	if !cond {
		panic("invariant violated: " + fmt.Sprintf(msg, args...))
	}
}
