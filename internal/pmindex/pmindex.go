// Package pmindex implements the global, symbol-keyed term indices the
// clause store's Hub dispatches into: a rewrite-rule index for
// demodulation lookups and a paramodulation-partner index for generating
// inferences. Both are built on the same top-symbol bucketing scheme,
// since both questions ("which rules could rewrite this subterm", "which
// literals could paramodulate into/from this subterm") start the same
// way: narrow by the subterm's functor/arity before trying real
// unification or matching.
package pmindex

import (
	"strconv"

	"saturate/internal/clause"
	"saturate/internal/term"
)

func symbolKey(t *term.Term) string {
	if t.IsVar() {
		return "$var"
	}
	return t.Functor + "/" + strconv.Itoa(t.Arity())
}

// Side identifies which side of an equational literal a term occurrence
// came from.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

// Occurrence is one indexed (clause, literal, side) triple.
type Occurrence struct {
	Clause     *clause.Clause
	LiteralIdx int
	Side       Side
}

// TermIndex buckets clause occurrences by the top symbol of an indexed
// term, the common shape both RewriteFromIndex and the paramodulation
// partner indices need.
type TermIndex struct {
	buckets map[string][]Occurrence
}

func NewTermIndex() *TermIndex {
	return &TermIndex{buckets: make(map[string][]Occurrence)}
}

func (ix *TermIndex) insert(key string, occ Occurrence) {
	ix.buckets[key] = append(ix.buckets[key], occ)
}

// IndexTerm records an occurrence keyed by t's own top symbol (used for
// the rewrite index, where the indexed term is always a rule's whole LHS,
// and for the "paramodulate from" index, where the indexed term is a
// maximal side of a positive literal).
func (ix *TermIndex) IndexTerm(t *term.Term, c *clause.Clause, literalIdx int, side Side) {
	if t.IsVar() {
		return
	}
	ix.insert(symbolKey(t), Occurrence{Clause: c, LiteralIdx: literalIdx, Side: side})
}

// IndexAllSubterms records an occurrence for every non-variable subterm of
// t (used for the "paramodulate into" index, which must find candidate
// rewrite sites anywhere inside a literal, not just at the top).
func (ix *TermIndex) IndexAllSubterms(t *term.Term, c *clause.Clause, literalIdx int, side Side) {
	if t.IsVar() {
		return
	}
	ix.insert(symbolKey(t), Occurrence{Clause: c, LiteralIdx: literalIdx, Side: side})
	for _, arg := range t.Args {
		ix.IndexAllSubterms(arg, c, literalIdx, side)
	}
}

// Candidates returns every occurrence whose indexed term shares t's top
// symbol -- the narrowing step before a real unify/match call.
func (ix *TermIndex) Candidates(t *term.Term) []Occurrence {
	if t.IsVar() {
		return nil
	}
	return ix.buckets[symbolKey(t)]
}

// Remove drops every occurrence belonging to clause c. O(index size); fine
// for the clause counts this engine targets, and simpler than threading a
// reverse index through every insert.
func (ix *TermIndex) Remove(c *clause.Clause) {
	for key, occs := range ix.buckets {
		filtered := occs[:0]
		for _, o := range occs {
			if o.Clause.ID != c.ID {
				filtered = append(filtered, o)
			}
		}
		if len(filtered) == 0 {
			delete(ix.buckets, key)
		} else {
			ix.buckets[key] = filtered
		}
	}
}

func (ix *TermIndex) Len() int {
	n := 0
	for _, occs := range ix.buckets {
		n += len(occs)
	}
	return n
}
