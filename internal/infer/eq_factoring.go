package infer

import (
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/term"
)

// EqualityFactoring implements the generating EF rule: given two positive
// literals s=t and u=v in the same clause, if s and u unify under sigma,
// the clause
//
//	sigma(C | t != v | u = v)
//
// (dropping s=t, keeping u=v, and adding its negation of the two right-hand
// sides) is a sound consequence -- the rule that lets superposition stay
// refutationally complete without needing a separate factoring rule for
// plain equality atoms.
func EqualityFactoring(bank *term.Bank, src *id.Source, c *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for i, li := range c.Literals {
		if !li.Positive {
			continue
		}
		for j, lj := range c.Literals {
			if i == j || !lj.Positive {
				continue
			}
			sub, ok := term.Unify(nil, li.Left, lj.Left)
			if !ok {
				continue
			}
			rest := make([]*clause.Literal, 0, len(c.Literals))
			for k, other := range c.Literals {
				if k == i {
					continue
				}
				if k == j {
					rest = append(rest, clause.NewEquation(sub.Apply(bank, lj.Left), sub.Apply(bank, lj.Right), true))
					continue
				}
				rest = append(rest, clause.NewEquation(sub.Apply(bank, other.Left), sub.Apply(bank, other.Right), other.Positive))
			}
			rest = append(rest, clause.NewEquation(sub.Apply(bank, li.Right), sub.Apply(bank, lj.Right), false))
			out = append(out, clause.New(src.Next(), rest, clause.DerivationEdge{
				Rule:    clause.DerivEqualityFactoring,
				Parents: []id.ClauseID{c.ID},
			}))
		}
	}
	return out
}
