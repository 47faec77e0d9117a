// Package formula implements a first-order formula AST and its CNF
// transform, used by the schema expander (internal/schema) to turn a
// second-order schema's axiom instances -- full quantified formulas -- into
// the plain disjunctive clauses the rest of the engine works with.
package formula

import (
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/invariant"
	"saturate/internal/term"
)

// Formula is any node of the quantified-first-order-logic AST: Atom, Not,
// And, Or, Implies, Iff, ForAll, Exists.
type Formula interface {
	isFormula()
}

// Atom wraps a literal (the same uniform equational shape internal/clause
// uses) as a formula leaf.
type Atom struct {
	Lit *clause.Literal
}

// NewAtom builds an equational or desugared-predicate atom, matching
// internal/clause's NewAtom/NewEquation constructors.
func NewAtom(left, right *term.Term, positive bool) *Atom {
	return &Atom{Lit: clause.NewEquation(left, right, positive)}
}

func NewPredicate(bank *term.Bank, atomTerm *term.Term, positive bool) *Atom {
	return &Atom{Lit: clause.NewAtom(bank, atomTerm, positive)}
}

type Not struct{ Sub Formula }
type And struct{ Left, Right Formula }
type Or struct{ Left, Right Formula }
type Implies struct{ Left, Right Formula }
type Iff struct{ Left, Right Formula }

// ForAll and Exists bind Var (a variable term from the same bank the body's
// terms are interned in) over Body.
type ForAll struct {
	Var  *term.Term
	Body Formula
}
type Exists struct {
	Var  *term.Term
	Body Formula
}

func (*Atom) isFormula()    {}
func (*Not) isFormula()     {}
func (*And) isFormula()     {}
func (*Or) isFormula()      {}
func (*Implies) isFormula() {}
func (*Iff) isFormula()     {}
func (*ForAll) isFormula()  {}
func (*Exists) isFormula()  {}

// AndAll and OrAll fold a non-empty slice of formulas into a right-leaning
// conjunction/disjunction, the shape schema construction usually builds
// bodies out of.
func AndAll(fs []Formula) Formula {
	invariant.Assert(len(fs) > 0, "AndAll requires at least one formula")
	out := fs[len(fs)-1]
	for i := len(fs) - 2; i >= 0; i-- {
		out = &And{Left: fs[i], Right: out}
	}
	return out
}

func OrAll(fs []Formula) Formula {
	invariant.Assert(len(fs) > 0, "OrAll requires at least one formula")
	out := fs[len(fs)-1]
	for i := len(fs) - 2; i >= 0; i-- {
		out = &Or{Left: fs[i], Right: out}
	}
	return out
}

// ToClauses runs the full CNF pipeline (eliminate implies/iff, push
// negations to the leaves, skolemize, distribute, flatten) and mints a
// fresh clause.Clause per conjunct, each carrying DerivSchemaInstantiation
// back to the given parent (the schema instance's identity is tracked by
// the caller, not here -- this just needs an id.Source to mint clause ids).
func ToClauses(bank *term.Bank, src *id.Source, f Formula, parent id.ClauseID) []*clause.Clause {
	return ToClausesWithRule(bank, src, f, clause.DerivSchemaInstantiation, []id.ClauseID{parent})
}

// ToClausesWithRule is the general form ToClauses delegates to: a caller
// lowering a top-level formula axiom from input (rather than a schema
// instance) wants DerivInitial and no parents, not DerivSchemaInstantiation.
func ToClausesWithRule(bank *term.Bank, src *id.Source, f Formula, rule clause.DerivationKind, parents []id.ClauseID) []*clause.Clause {
	n := nnf(eliminate(f), true)
	sk := stripQuantifiers(skolemize(bank, n, nil))
	cnf := distribute(sk)
	conjuncts := flattenAnd(cnf)

	var out []*clause.Clause
	for _, conj := range conjuncts {
		lits := flattenOr(conj)
		out = append(out, clause.New(src.Next(), lits, clause.DerivationEdge{
			Rule:    rule,
			Parents: parents,
		}))
	}
	return out
}
