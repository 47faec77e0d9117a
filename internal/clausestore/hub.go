package clausestore

import "saturate/internal/clause"

// Capability is one global index the Hub keeps coherent with set
// membership: a predicate deciding which clauses it cares about, and
// Track/Untrack calls the Hub fans every insert/remove out to. Keeping
// index maintenance behind this single interface is what lets
// RewriteFromIndex, the paramodulation indices and the watchlist index all
// stay consistent through one call site instead of four ad hoc ones.
type Capability interface {
	Name() string
	Predicate(c *clause.Clause) bool
	Track(c *clause.Clause)
	Untrack(c *clause.Clause)
}

// Hub dispatches clause insertions and removals to every registered
// capability whose predicate the clause satisfies.
type Hub struct {
	capabilities []Capability
}

func NewHub() *Hub { return &Hub{} }

func (h *Hub) Register(c Capability) {
	h.capabilities = append(h.capabilities, c)
}

// Track fans c out to every matching capability and reports whether at
// least one capability tracked it, so the caller can set the
// GlobalIndexed flag accordingly.
func (h *Hub) Track(c *clause.Clause) bool {
	tracked := false
	for _, cap := range h.capabilities {
		if cap.Predicate(c) {
			cap.Track(c)
			tracked = true
		}
	}
	return tracked
}

// Untrack fans c out to every capability unconditionally; Untrack on a
// capability that never tracked c is required to be a no-op.
func (h *Hub) Untrack(c *clause.Clause) {
	for _, cap := range h.capabilities {
		cap.Untrack(c)
	}
}

func (h *Hub) Capability(name string) Capability {
	for _, cap := range h.capabilities {
		if cap.Name() == name {
			return cap
		}
	}
	return nil
}
