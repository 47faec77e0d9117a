package clausestore

import (
	"saturate/internal/clause"
	"saturate/internal/order"
	"saturate/internal/term"
)

// Store is the engine's processed clause set: four partitions plus the Hub
// that keeps the global indices coherent with them (§4.A).
type Store struct {
	Bank  *term.Bank
	Order *order.Ordering

	PositiveRules     *Set
	PositiveEquations *Set
	NegativeUnits     *Set
	NonUnits          *Set

	Hub *Hub

	Rewrite      *RewriteCapability
	ParamodFrom  *ParamodFromCapability
	ParamodInto  *ParamodIntoCapability
	NegPartner   *NegPartnerCapability
}

func NewStore(bank *term.Bank, ord *order.Ordering) *Store {
	st := &Store{
		Bank:              bank,
		Order:             ord,
		PositiveRules:     NewSet(),
		PositiveEquations: NewSet(),
		NegativeUnits:     NewSet(),
		NonUnits:          NewSet(),
		Hub:               NewHub(),
		Rewrite:           NewRewriteCapability(ord),
		ParamodFrom:       NewParamodFromCapability(ord),
		ParamodInto:       NewParamodIntoCapability(),
		NegPartner:        NewNegPartnerCapability(),
	}
	st.Hub.Register(st.Rewrite)
	st.Hub.Register(st.ParamodFrom)
	st.Hub.Register(st.ParamodInto)
	st.Hub.Register(st.NegPartner)
	return st
}

// RegisterCapability adds an extra Hub capability after construction (the
// watchlist subsystem registers its own capability this way, so
// clausestore has no compile-time dependency on the watchlist package).
func (st *Store) RegisterCapability(c Capability) {
	st.Hub.Register(c)
}

func (st *Store) partitionFor(c *clause.Clause) *Set {
	switch {
	case c.IsPositiveUnit():
		if c.Flags.Has(clause.Oriented) {
			return st.PositiveRules
		}
		return st.PositiveEquations
	case c.IsNegativeUnit():
		return st.NegativeUnits
	default:
		return st.NonUnits
	}
}

func (st *Store) Partitions() []*Set {
	return []*Set{st.PositiveRules, st.PositiveEquations, st.NegativeUnits, st.NonUnits}
}

// classify sets the Oriented flag on positive unit clauses whose equation
// the term ordering can direct, ahead of partition selection.
func (st *Store) classify(c *clause.Clause) {
	if !c.IsPositiveUnit() {
		return
	}
	lit := c.Literals[0]
	if st.Order.Orient(lit.Left, lit.Right) != order.Incomparable {
		c.Flags = c.Flags.Set(clause.Oriented)
	} else {
		c.Flags = c.Flags.Clear(clause.Oriented)
	}
}

// Insert moves a clause into its processed partition and tells the Hub to
// track it in every applicable global index, in one call -- the §9 index
// coherence guarantee.
func (st *Store) Insert(c *clause.Clause) {
	st.classify(c)
	c.Flags = c.Flags.Set(clause.Processed)
	part := st.partitionFor(c)
	part.Insert(c)
	if st.Hub.Track(c) {
		c.Flags = c.Flags.Set(clause.GlobalIndexed)
	}
}

// Remove evicts a clause from its partition and every global index.
//
// This deliberately does not release the clause's literal terms back to
// the bank (see internal/term.Bank.Release). Backward simplification
// evicts a clause and replaces it with a new one that often reuses a
// literal side's term pointer verbatim when that side didn't change
// (rewriteClauseWith, EliminateBackwardContextualSR's kept literals) --
// the replacement never re-acquires that pointer through Bank.Var/App, so
// releasing on eviction would drop a term the replacement clause still
// holds, letting Bank.MaybeGC reclaim a node a live clause still points
// to and breaking hash-consing for it (a future structurally-equal App
// call would intern a distinct node instead of finding the "same" one).
// See DESIGN.md's internal/term entry.
func (st *Store) Remove(c *clause.Clause) {
	part := st.partitionFor(c)
	part.Remove(c)
	st.Hub.Untrack(c)
	c.Flags = c.Flags.Clear(clause.Processed).Clear(clause.GlobalIndexed)
}

// RemoveSubsumed implements remove_subsumed: evicts every processed clause
// actually subsumed by by (feature-vector-filtered before the real check),
// returning the evicted clauses themselves. This is the one place that
// walks the four partitions testing clause.Subsumes against a candidate
// set -- simplify.Backward's backward-subsumption step calls this directly
// rather than re-running the same filter-and-check loop itself, so there is
// a single implementation of processed-set subsumption eviction.
func (st *Store) RemoveSubsumed(by *clause.Clause) []*clause.Clause {
	var victims []*clause.Clause
	for _, part := range st.Partitions() {
		for _, cand := range part.CandidatesSubsumedBy(by) {
			if cand.ID == by.ID {
				continue
			}
			if clause.Subsumes(by, cand) {
				st.Remove(cand)
				cand.Flags = cand.Flags.Set(clause.Dead)
				victims = append(victims, cand)
			}
		}
	}
	return victims
}

// AllProcessed returns every processed clause across all four partitions.
func (st *Store) AllProcessed() []*clause.Clause {
	var out []*clause.Clause
	for _, part := range st.Partitions() {
		out = append(out, part.All()...)
	}
	return out
}

func (st *Store) Len() int {
	n := 0
	for _, part := range st.Partitions() {
		n += part.Len()
	}
	return n
}
