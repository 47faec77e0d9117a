// Package infer implements the generating inference rules: equality
// resolution, equality factoring, and ordered paramodulation, plus
// GenerateAll, which dispatches every rule for a given clause against the
// clause store's paramodulation indices. All three rules close equality
// reasoning over the uniform "everything is an equation" literal
// representation internal/clause uses.
package infer

import (
	"saturate/internal/clause"
	"saturate/internal/term"
)

// renameApart returns a copy of c with every variable replaced by a fresh
// one from bank, so that unifying it against another clause can never
// accidentally capture a variable the two clauses happen to share.
func renameApart(bank *term.Bank, c *clause.Clause) *clause.Clause {
	sub := make(term.Subst)
	for _, v := range c.DistinctVars() {
		sub[v] = bank.FreshVariable()
	}
	lits := make([]*clause.Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = clause.NewEquation(sub.Apply(bank, l.Left), sub.Apply(bank, l.Right), l.Positive)
	}
	return clause.New(c.ID, lits, c.Derivation)
}
