// Package id mints clause identities: a monotone logical counter that gates
// every soundness-relevant ordering decision, paired with a K-sortable
// external id used only for human-facing correlation (progress lines, proof
// dumps, log messages).
package id

import "github.com/segmentio/ksuid"

// ClauseID is deliberately not a bare integer. CreationDate is the only
// field the proof procedure itself may compare or branch on (LimitedRW,
// §8 invariant 6 ordering). External is never compared for soundness; it
// exists so two runs of the same problem don't produce colliding
// human-facing references when clauses are logged out of order.
type ClauseID struct {
	CreationDate uint64
	External     ksuid.KSUID
}

// Source mints ClauseIDs in increasing CreationDate order. Not safe for
// concurrent use; the proof procedure is single-threaded (see spec's
// concurrency model) and the source is only ever touched from the main
// saturation loop.
type Source struct {
	next uint64
}

func NewSource() *Source {
	return &Source{next: 1}
}

func (s *Source) Next() ClauseID {
	cd := s.next
	s.next++
	return ClauseID{CreationDate: cd, External: ksuid.New()}
}

// String renders the human-facing half only; CreationDate is available via
// the struct field for callers that need the soundness-relevant ordering.
func (c ClauseID) String() string {
	return c.External.String()
}

// Less orders by CreationDate alone -- the only field the procedure may use
// to decide precedence between two clauses.
func (c ClauseID) Less(other ClauseID) bool {
	return c.CreationDate < other.CreationDate
}

func (c ClauseID) IsZero() bool {
	return c.CreationDate == 0
}
