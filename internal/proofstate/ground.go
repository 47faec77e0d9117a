package proofstate

import (
	"strings"

	"saturate/internal/clause"
	"saturate/internal/satcheck"
	"saturate/internal/term"
)

// groundInstantiate builds the pseudo-ground abstraction SATCheck (4.E/§6)
// hands to the external checker: every distinct variable in a clause
// collapses to the same nullary placeholder symbol, so two clauses that
// are syntactic variants up to variable renaming print to the same ground
// atom. This is an over-approximation, not a faithful Herbrand
// instantiation (a real one would need a ground term per variable binding,
// which the core never computes) -- true to spec.md's own wording,
// "ground/pseudo-ground instantiate", and sufficient for the UNSAT witness
// the loop actually needs: if even this coarse abstraction is
// unsatisfiable, the original clause set is too.
func groundInstantiate(clauses []*clause.Clause) []satcheck.GroundClause {
	out := make([]satcheck.GroundClause, 0, len(clauses))
	for _, c := range clauses {
		lits := make([]satcheck.GroundLiteral, 0, len(c.Literals))
		for _, l := range c.Literals {
			lits = append(lits, satcheck.GroundLiteral{
				Atom:     groundAtomKey(l),
				Positive: l.Positive,
			})
		}
		out = append(out, satcheck.GroundClause{Literals: lits})
	}
	return out
}

func groundAtomKey(l *clause.Literal) string {
	return printPseudoGround(l.Left) + "=" + printPseudoGround(l.Right)
}

func printPseudoGround(t *term.Term) string {
	if t.IsVar() {
		return "*"
	}
	if len(t.Args) == 0 {
		return t.Functor
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = printPseudoGround(a)
	}
	return t.Functor + "(" + strings.Join(parts, ",") + ")"
}
