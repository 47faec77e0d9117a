package infer

import (
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/term"
)

// EqualityResolution implements the generating ER rule: for a negative
// literal s != t, if s and t unify under substitution sigma, the clause
// with that literal removed and sigma applied to the rest is a sound
// consequence (C | s != t  =>  sigma(C), when sigma = mgu(s,t)).
//
// Unlike the forward simplifier's EqualityResolutionVarLit (which only
// catches the already-identical case), this runs real unification and so
// can fire even when s and t are merely unifiable, not syntactically
// equal.
func EqualityResolution(bank *term.Bank, src *id.Source, c *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for i, l := range c.Literals {
		if l.Positive {
			continue
		}
		sub, ok := term.Unify(nil, l.Left, l.Right)
		if !ok {
			continue
		}
		rest := make([]*clause.Literal, 0, len(c.Literals)-1)
		for j, other := range c.Literals {
			if j == i {
				continue
			}
			rest = append(rest, clause.NewEquation(sub.Apply(bank, other.Left), sub.Apply(bank, other.Right), other.Positive))
		}
		out = append(out, clause.New(src.Next(), rest, clause.DerivationEdge{
			Rule:    clause.DerivEqualityResolution,
			Parents: []id.ClauseID{c.ID},
		}))
	}
	return out
}
