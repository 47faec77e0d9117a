// Package fvindex implements feature-vector subsumption indexing: a cheap,
// necessary-but-not-sufficient pre-filter that prunes the set of clauses an
// expensive subsumption check needs to try, by comparing small integer
// feature vectors before ever looking at literals.
package fvindex

import (
	"saturate/internal/clause"
)

// Features is a clause's feature vector. Every feature here is monotone in
// the sense subsumption needs: if clause A (possibly) subsumes clause B,
// every feature of A must be <= the corresponding feature of B. That
// monotonicity is what makes the vector usable as a subsumption filter
// instead of just a clustering key.
type Features struct {
	NumLiterals    int
	NumPositive    int
	NumNegative    int
	MaxLiteralSize int
	TotalSize      int
}

// Compute builds a clause's feature vector.
func Compute(c *clause.Clause) Features {
	f := Features{NumLiterals: len(c.Literals)}
	for _, l := range c.Literals {
		if l.Positive {
			f.NumPositive++
		} else {
			f.NumNegative++
		}
		w := l.Weight()
		f.TotalSize += w
		if w > f.MaxLiteralSize {
			f.MaxLiteralSize = w
		}
	}
	return f
}

// CouldSubsume is the necessary condition: if a's features don't all
// dominate b's, a cannot subsume b and the caller should skip the real
// subsumption check entirely.
func CouldSubsume(a, b Features) bool {
	return a.NumLiterals <= b.NumLiterals &&
		a.NumPositive <= b.NumPositive &&
		a.NumNegative <= b.NumNegative &&
		a.MaxLiteralSize <= b.MaxLiteralSize &&
		a.TotalSize <= b.TotalSize
}

type entry struct {
	clause   *clause.Clause
	features Features
}

// Index holds every clause in one processed partition along with its
// precomputed feature vector, so RemoveSubsumed / forward subsumption
// checks only run the real (expensive) subsumption test against
// candidates CouldSubsume didn't already rule out.
type Index struct {
	entries map[uint64]*entry
}

func NewIndex() *Index {
	return &Index{entries: make(map[uint64]*entry)}
}

func (idx *Index) Insert(c *clause.Clause) {
	idx.entries[c.ID.CreationDate] = &entry{clause: c, features: Compute(c)}
}

func (idx *Index) Remove(c *clause.Clause) {
	delete(idx.entries, c.ID.CreationDate)
}

func (idx *Index) Len() int { return len(idx.entries) }

// CandidatesToSubsume returns every indexed clause whose features allow it
// to subsume query (i.e. query is the potential subsumee).
func (idx *Index) CandidatesToSubsume(query *clause.Clause) []*clause.Clause {
	qf := Compute(query)
	var out []*clause.Clause
	for _, e := range idx.entries {
		if e.clause.ID == query.ID {
			continue
		}
		if CouldSubsume(e.features, qf) {
			out = append(out, e.clause)
		}
	}
	return out
}

// CandidatesSubsumedBy returns every indexed clause query could possibly
// subsume (query is the potential subsumer).
func (idx *Index) CandidatesSubsumedBy(query *clause.Clause) []*clause.Clause {
	qf := Compute(query)
	var out []*clause.Clause
	for _, e := range idx.entries {
		if e.clause.ID == query.ID {
			continue
		}
		if CouldSubsume(qf, e.features) {
			out = append(out, e.clause)
		}
	}
	return out
}

func (idx *Index) All() []*clause.Clause {
	out := make([]*clause.Clause, 0, len(idx.entries))
	for _, e := range idx.entries {
		out = append(out, e.clause)
	}
	return out
}
