// Package clausestore implements the processed clause set: four
// partitions (oriented rules, unorientable positive equations, negative
// units, non-units), each backed by a feature-vector subsumption index,
// plus a Hub that keeps every global index (rewrite, paramodulation,
// watchlist) coherent with partition membership through a single dispatch
// point.
package clausestore

import (
	"saturate/internal/clause"
	"saturate/internal/fvindex"
)

// Set is one processed partition: an insertion-ordered clause collection
// plus its feature-vector subsumption index.
type Set struct {
	order   []uint64
	clauses map[uint64]*clause.Clause
	fv      *fvindex.Index
}

func NewSet() *Set {
	return &Set{
		clauses: make(map[uint64]*clause.Clause),
		fv:      fvindex.NewIndex(),
	}
}

func (s *Set) Insert(c *clause.Clause) {
	key := c.ID.CreationDate
	if _, exists := s.clauses[key]; exists {
		return
	}
	s.clauses[key] = c
	s.order = append(s.order, key)
	s.fv.Insert(c)
}

func (s *Set) Remove(c *clause.Clause) {
	key := c.ID.CreationDate
	if _, exists := s.clauses[key]; !exists {
		return
	}
	delete(s.clauses, key)
	s.fv.Remove(c)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set) Len() int { return len(s.clauses) }

// All returns every clause in insertion order.
func (s *Set) All() []*clause.Clause {
	out := make([]*clause.Clause, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.clauses[k])
	}
	return out
}

// CandidatesSubsumedBy narrows to clauses the feature-vector index says
// query could possibly subsume.
func (s *Set) CandidatesSubsumedBy(query *clause.Clause) []*clause.Clause {
	return s.fv.CandidatesSubsumedBy(query)
}

// CandidatesToSubsume narrows to clauses the feature-vector index says
// could possibly subsume query.
func (s *Set) CandidatesToSubsume(query *clause.Clause) []*clause.Clause {
	return s.fv.CandidatesToSubsume(query)
}
