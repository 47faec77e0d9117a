// Package schema implements the schema-instantiation inference (4.G): a
// best-effort generator that treats a processed clause as the body of a
// second-order set axiom schema (comprehension when it has exactly one
// free variable, replacement when it has exactly two) and reinjects the
// axiom's CNF as fresh clauses. Failure (wrong free-variable count, or any
// internal inconsistency) is never fatal: Expand returns (0, nil) and the
// caller moves on, matching spec.md's "schema parse failure is swallowed"
// contract.
package schema

import (
	"saturate/internal/clause"
	"saturate/internal/formula"
	"saturate/internal/id"
	"saturate/internal/term"
)

// FreeVariables extracts a clause's distinct free variables by walking its
// term graph (never by scanning the serialized text -- see DESIGN.md on
// why the source's string-based extraction is not reproduced here).
func FreeVariables(c *clause.Clause) []*term.Term {
	return c.DistinctVars()
}

// clauseToFormula treats c's literals as-is (no substitution) as phi(X...):
// the disjunction the schema's body quotes verbatim.
func clauseToFormula(c *clause.Clause) formula.Formula {
	atoms := make([]formula.Formula, len(c.Literals))
	for i, l := range c.Literals {
		atoms[i] = &formula.Atom{Lit: l}
	}
	return formula.OrAll(atoms)
}

// substituteXY performs a simultaneous (non-chaining) substitution of x
// and y by xVal and yVal respectively -- plain term.Subst cannot express
// this when xVal or yVal is itself x or y (as the Replacement variants
// need), since its Resolve follows bindings transitively and would chain
// x -> y -> ... in ways this swap must not.
func substituteXY(bank *term.Bank, t, x, y, xVal, yVal *term.Term) *term.Term {
	if t.IsVar() {
		switch t {
		case x:
			return xVal
		case y:
			return yVal
		default:
			return t
		}
	}
	args := make([]*term.Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		args[i] = substituteXY(bank, a, x, y, xVal, yVal)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return bank.App(t.Functor, args...)
}

// clausePhi builds phi(xVal, yVal): c's matrix with its two free
// variables x,y replaced by xVal,yVal (pass x or y itself back to leave a
// slot untouched).
func clausePhi(bank *term.Bank, c *clause.Clause, x, y, xVal, yVal *term.Term) formula.Formula {
	atoms := make([]formula.Formula, len(c.Literals))
	for i, l := range c.Literals {
		atoms[i] = &formula.Atom{Lit: clause.NewEquation(
			substituteXY(bank, l.Left, x, y, xVal, yVal),
			substituteXY(bank, l.Right, x, y, xVal, yVal),
			l.Positive,
		)}
	}
	return formula.OrAll(atoms)
}

// Comprehension synthesizes the comprehension axiom instance for a clause
// with exactly one free variable X:
//
//	forall A. exists B. forall X. (member(X,B) <-> (member(X,A) and phi(X)))
//
// and returns its CNF, tagged DerivSchemaInstantiation back to c.
func Comprehension(bank *term.Bank, src *id.Source, c *clause.Clause) ([]*clause.Clause, bool) {
	free := FreeVariables(c)
	if len(free) != 1 {
		return nil, false
	}
	x := free[0]
	a := bank.FreshVariable()
	b := bank.FreshVariable()

	phi := clauseToFormula(c)
	memberXB := formula.NewPredicate(bank, bank.App("member", x, b), true)
	memberXA := formula.NewPredicate(bank, bank.App("member", x, a), true)

	body := &formula.ForAll{Var: x, Body: &formula.Iff{Left: memberXB, Right: &formula.And{Left: memberXA, Right: phi}}}
	existsB := &formula.Exists{Var: b, Body: body}
	forallA := &formula.ForAll{Var: a, Body: existsB}

	return formula.ToClauses(bank, src, forallA, c.ID), true
}

// replacementVariant builds one orientation of the replacement schema
// instance (spec.md 4.G step 4), following the original source's Rep0/Rep1
// functions: swap=false builds the phi(x,y) variant, swap=true builds the
// symmetric phi(y,x) variant (x and y exchange roles in every phi
// substitution, though the outer quantifier prefix keeps binding x then
// y in both).
func replacementVariant(bank *term.Bank, src *id.Source, c *clause.Clause, x, y *term.Term, swap bool) []*clause.Clause {
	zPrime := bank.FreshVariable() // var2
	setA := bank.FreshVariable()   // var3
	setB := bank.FreshVariable()   // var4
	elemZ := bank.FreshVariable()  // var5
	elemW := bank.FreshVariable()  // var6

	var premisePhi, conclusionPhi formula.Formula
	if !swap {
		premisePhi = clausePhi(bank, c, x, y, x, zPrime)         // phi(X, Z')
		conclusionPhi = clausePhi(bank, c, x, y, elemW, elemZ)   // phi(W, Z)
	} else {
		premisePhi = clausePhi(bank, c, x, y, zPrime, x)         // phi(Z', X)
		conclusionPhi = clausePhi(bank, c, x, y, elemZ, elemW)   // phi(Z, W)
	}

	premise := &formula.Iff{Left: premisePhi, Right: formula.NewAtom(zPrime, y, true)}

	memberZB := formula.NewPredicate(bank, bank.App("member", elemZ, setB), true)
	memberWA := formula.NewPredicate(bank, bank.App("member", elemW, setA), true)
	existsW := &formula.Exists{Var: elemW, Body: &formula.And{Left: memberWA, Right: conclusionPhi}}
	forallZ := &formula.ForAll{Var: elemZ, Body: &formula.Iff{Left: memberZB, Right: existsW}}
	existsB := &formula.Exists{Var: setB, Body: forallZ}
	conclusion := &formula.ForAll{Var: setA, Body: existsB}

	implication := &formula.Implies{Left: premise, Right: conclusion}
	forallZPrime := &formula.ForAll{Var: zPrime, Body: implication}
	existsY := &formula.Exists{Var: y, Body: forallZPrime}
	forallX := &formula.ForAll{Var: x, Body: existsY}

	return formula.ToClauses(bank, src, forallX, c.ID)
}

// Replacement synthesizes both orientations of the replacement axiom
// instance for a clause with exactly two free variables.
func Replacement(bank *term.Bank, src *id.Source, c *clause.Clause) ([]*clause.Clause, bool) {
	free := FreeVariables(c)
	if len(free) != 2 {
		return nil, false
	}
	x, y := free[0], free[1]
	var out []*clause.Clause
	out = append(out, replacementVariant(bank, src, c, x, y, false)...)
	out = append(out, replacementVariant(bank, src, c, x, y, true)...)
	return out, true
}

// Expand dispatches to Comprehension or Replacement by free-variable
// count, or produces nothing for any other count (0, or >= 3), per
// spec.md's explicit failure mode.
func Expand(bank *term.Bank, src *id.Source, c *clause.Clause) (int, []*clause.Clause) {
	switch len(FreeVariables(c)) {
	case 1:
		clauses, ok := Comprehension(bank, src, c)
		if !ok {
			return 0, nil
		}
		return len(clauses), clauses
	case 2:
		clauses, ok := Replacement(bank, src, c)
		if !ok {
			return 0, nil
		}
		return len(clauses), clauses
	default:
		return 0, nil
	}
}
