package formula

import (
	"fmt"

	"saturate/internal/clause"
	"saturate/internal/term"
)

// eliminate rewrites Implies/Iff in terms of And/Or/Not, the usual first
// step before pushing negations to the leaves.
func eliminate(f Formula) Formula {
	switch t := f.(type) {
	case *Atom:
		return t
	case *Not:
		return &Not{Sub: eliminate(t.Sub)}
	case *And:
		return &And{Left: eliminate(t.Left), Right: eliminate(t.Right)}
	case *Or:
		return &Or{Left: eliminate(t.Left), Right: eliminate(t.Right)}
	case *Implies:
		return &Or{Left: &Not{Sub: eliminate(t.Left)}, Right: eliminate(t.Right)}
	case *Iff:
		l, r := eliminate(t.Left), eliminate(t.Right)
		return &And{
			Left:  &Or{Left: &Not{Sub: l}, Right: r},
			Right: &Or{Left: &Not{Sub: r}, Right: l},
		}
	case *ForAll:
		return &ForAll{Var: t.Var, Body: eliminate(t.Body)}
	case *Exists:
		return &Exists{Var: t.Var, Body: eliminate(t.Body)}
	}
	panic("formula: unreachable node in eliminate")
}

// nnf pushes negation to the leaves, assuming Implies/Iff have already
// been eliminated. pos tracks whether the enclosing context is positive
// (an even number of negations so far).
func nnf(f Formula, pos bool) Formula {
	switch t := f.(type) {
	case *Atom:
		if pos {
			return t
		}
		return &Atom{Lit: clause.NewEquation(t.Lit.Left, t.Lit.Right, !t.Lit.Positive)}
	case *Not:
		return nnf(t.Sub, !pos)
	case *And:
		if pos {
			return &And{Left: nnf(t.Left, true), Right: nnf(t.Right, true)}
		}
		return &Or{Left: nnf(t.Left, false), Right: nnf(t.Right, false)}
	case *Or:
		if pos {
			return &Or{Left: nnf(t.Left, true), Right: nnf(t.Right, true)}
		}
		return &And{Left: nnf(t.Left, false), Right: nnf(t.Right, false)}
	case *ForAll:
		if pos {
			return &ForAll{Var: t.Var, Body: nnf(t.Body, true)}
		}
		return &Exists{Var: t.Var, Body: nnf(t.Body, false)}
	case *Exists:
		if pos {
			return &Exists{Var: t.Var, Body: nnf(t.Body, true)}
		}
		return &ForAll{Var: t.Var, Body: nnf(t.Body, false)}
	}
	panic("formula: unreachable node in nnf")
}

// skolemState counts Skolem functions minted during one ToClauses call, so
// every existential in that call gets a distinct function symbol.
type skolemState struct{ n int }

// skolemize replaces every existential variable with a fresh function
// applied to the universally-quantified variables currently in scope (the
// existential's dependencies), the standard Skolemization step. The
// resulting formula retains its ForAll wrappers; stripQuantifiers drops
// them once skolemization is done, since the remaining variables become
// the produced clauses' implicitly-universal free variables.
func skolemize(bank *term.Bank, f Formula, bound []*term.Term) Formula {
	return skolemizeRec(bank, &skolemState{}, f, bound)
}

func skolemizeRec(bank *term.Bank, st *skolemState, f Formula, bound []*term.Term) Formula {
	switch t := f.(type) {
	case *Atom:
		return t
	case *Not:
		return &Not{Sub: skolemizeRec(bank, st, t.Sub, bound)}
	case *And:
		return &And{Left: skolemizeRec(bank, st, t.Left, bound), Right: skolemizeRec(bank, st, t.Right, bound)}
	case *Or:
		return &Or{Left: skolemizeRec(bank, st, t.Left, bound), Right: skolemizeRec(bank, st, t.Right, bound)}
	case *ForAll:
		return &ForAll{Var: t.Var, Body: skolemizeRec(bank, st, t.Body, append(bound, t.Var))}
	case *Exists:
		st.n++
		skolemTerm := bank.App(fmt.Sprintf("$sk%d", st.n), bound...)
		body := skolemizeRec(bank, st, t.Body, bound)
		return substituteVar(bank, body, t.Var, skolemTerm)
	}
	panic("formula: unreachable node in skolemize")
}

func substituteVar(bank *term.Bank, f Formula, v, repl *term.Term) Formula {
	sub := term.Subst{v: repl}
	return substApply(bank, sub, f)
}

func substApply(bank *term.Bank, sub term.Subst, f Formula) Formula {
	switch t := f.(type) {
	case *Atom:
		return &Atom{Lit: clause.NewEquation(sub.Apply(bank, t.Lit.Left), sub.Apply(bank, t.Lit.Right), t.Lit.Positive)}
	case *Not:
		return &Not{Sub: substApply(bank, sub, t.Sub)}
	case *And:
		return &And{Left: substApply(bank, sub, t.Left), Right: substApply(bank, sub, t.Right)}
	case *Or:
		return &Or{Left: substApply(bank, sub, t.Left), Right: substApply(bank, sub, t.Right)}
	case *ForAll:
		return &ForAll{Var: t.Var, Body: substApply(bank, sub, t.Body)}
	case *Exists:
		return &Exists{Var: t.Var, Body: substApply(bank, sub, t.Body)}
	}
	panic("formula: unreachable node in substApply")
}

// stripQuantifiers drops every ForAll wrapper once skolemization has
// removed all existentials, leaving a quantifier-free matrix whose
// variables are implicitly universal.
func stripQuantifiers(f Formula) Formula {
	switch t := f.(type) {
	case *ForAll:
		return stripQuantifiers(t.Body)
	case *Exists:
		return stripQuantifiers(t.Body)
	case *And:
		return &And{Left: stripQuantifiers(t.Left), Right: stripQuantifiers(t.Right)}
	case *Or:
		return &Or{Left: stripQuantifiers(t.Left), Right: stripQuantifiers(t.Right)}
	case *Not:
		return &Not{Sub: stripQuantifiers(t.Sub)}
	case *Atom:
		return t
	}
	panic("formula: unreachable node in stripQuantifiers")
}

// distribute pushes Or inward over And, turning a quantifier-free NNF
// formula into conjunctive normal form.
func distribute(f Formula) Formula {
	switch t := f.(type) {
	case *And:
		return &And{Left: distribute(t.Left), Right: distribute(t.Right)}
	case *Or:
		return distributeOr(distribute(t.Left), distribute(t.Right))
	default:
		return t
	}
}

func distributeOr(l, r Formula) Formula {
	if land, ok := l.(*And); ok {
		return &And{Left: distributeOr(land.Left, r), Right: distributeOr(land.Right, r)}
	}
	if rand, ok := r.(*And); ok {
		return &And{Left: distributeOr(l, rand.Left), Right: distributeOr(l, rand.Right)}
	}
	return &Or{Left: l, Right: r}
}

// flattenAnd collects every top-level conjunct of a CNF formula.
func flattenAnd(f Formula) []Formula {
	if a, ok := f.(*And); ok {
		return append(flattenAnd(a.Left), flattenAnd(a.Right)...)
	}
	return []Formula{f}
}

// flattenOr collects a single CNF conjunct's literals.
func flattenOr(f Formula) []*clause.Literal {
	switch t := f.(type) {
	case *Or:
		return append(flattenOr(t.Left), flattenOr(t.Right)...)
	case *Atom:
		return []*clause.Literal{t.Lit}
	case *Not:
		inner := t.Sub.(*Atom)
		return []*clause.Literal{clause.NewEquation(inner.Lit.Left, inner.Lit.Right, !inner.Lit.Positive)}
	}
	panic("formula: unreachable node in flattenOr")
}
