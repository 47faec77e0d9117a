// Package termbuild lowers the raw grammar tree (grammar.File and its
// Term/Literal/Formula nodes) into the interned domain objects the engine
// actually runs on: internal/term.Term via the shared bank, and
// internal/clause.Clause built from those terms. This is the second half of
// the two-layer split 4.H describes -- the grammar package only parses
// concrete syntax into an AST, it never touches a term.Bank.
//
// Every grammar.VarName is scoped to the top-level entry it appears in: two
// occurrences of "X" within one clause or formula must lower to the same
// term.Term, but "X" in one entry and "X" in the next are unrelated
// variables and must not collide. A fresh scope map is built per entry, and
// new names are minted through Bank.FreshVariable rather than Bank.Var, so
// bank-wide interning by surface name (which Bank.Var does deliberately,
// for this exact reason) never aliases two independently-scoped variables.
package termbuild

import (
	"saturate/grammar"
	"saturate/internal/clause"
	"saturate/internal/formula"
	"saturate/internal/id"
	"saturate/internal/term"
)

// scope maps a grammar.VarName's surface spelling to the term.Term minted
// for it, for the lifetime of one top-level entry.
type scope map[string]*term.Term

// Lower lowers every entry of a parsed file into clauses, in file order.
// NamedClause and Bare entries become a single clause each; NamedFormula
// entries run through the CNF pipeline and can expand into several.
func Lower(bank *term.Bank, src *id.Source, file *grammar.File) []*clause.Clause {
	var out []*clause.Clause
	for _, e := range file.Entries {
		out = append(out, lowerEntry(bank, src, e)...)
	}
	return out
}

func lowerEntry(bank *term.Bank, src *id.Source, e *grammar.Entry) []*clause.Clause {
	switch {
	case e.NamedClause != nil:
		sc := scope{}
		lits := lowerLiterals(bank, sc, e.NamedClause.Literals)
		return []*clause.Clause{clause.New(src.Next(), lits, clause.DerivationEdge{Rule: clause.DerivInitial})}
	case e.Bare != nil:
		sc := scope{}
		lits := lowerLiterals(bank, sc, e.Bare.Literals)
		return []*clause.Clause{clause.New(src.Next(), lits, clause.DerivationEdge{Rule: clause.DerivInitial})}
	case e.NamedFormula != nil:
		sc := scope{}
		f := lowerFormula(bank, sc, e.NamedFormula.Formula)
		return formula.ToClausesWithRule(bank, src, f, clause.DerivInitial, nil)
	default:
		return nil
	}
}

func lowerLiterals(bank *term.Bank, sc scope, lits []*grammar.Literal) []*clause.Literal {
	out := make([]*clause.Literal, len(lits))
	for i, l := range lits {
		out[i] = lowerLiteral(bank, sc, l)
	}
	return out
}

// lowerLiteral turns one grammar.Literal into a clause.Literal. Op == nil
// means the literal is a bare term used as a predicate atom ("p(a)"),
// desugared into the engine's uniform equational shape by NewAtom. Op !=
// nil means an explicit equation or disequation; Negated, when present,
// flips whichever polarity Op already encodes.
func lowerLiteral(bank *term.Bank, sc scope, l *grammar.Literal) *clause.Literal {
	left := lowerTerm(bank, sc, l.Left)
	if l.Op == nil {
		return clause.NewAtom(bank, left, !l.Negated)
	}
	right := lowerTerm(bank, sc, l.Right)
	positive := *l.Op == "="
	if l.Negated {
		positive = !positive
	}
	return clause.NewEquation(left, right, positive)
}

func lowerTerm(bank *term.Bank, sc scope, t *grammar.Term) *term.Term {
	if t.Var != nil {
		return lowerVar(bank, sc, t.Var)
	}
	return lowerFuncTerm(bank, sc, t.Func)
}

func lowerVar(bank *term.Bank, sc scope, v *grammar.VarName) *term.Term {
	if existing, ok := sc[v.Value]; ok {
		return existing
	}
	fresh := bank.FreshVariable()
	sc[v.Value] = fresh
	return fresh
}

func lowerFuncTerm(bank *term.Bank, sc scope, f *grammar.FuncTerm) *term.Term {
	args := make([]*term.Term, len(f.Args))
	for i, a := range f.Args {
		args[i] = lowerTerm(bank, sc, a)
	}
	return bank.App(f.Name.Value, args...)
}

// lowerFormula walks the precedence chain Formula -> ImplFormula ->
// OrFormula -> AndFormula -> UnaryFormula, folding each operand list with
// formula.AndAll/OrAll the same way the teacher's own Pratt layers fold
// binary-operator chains left-to-right.
func lowerFormula(bank *term.Bank, sc scope, f *grammar.Formula) formula.Formula {
	left := lowerImpl(bank, sc, f.Left)
	if f.Iff == nil {
		return left
	}
	return &formula.Iff{Left: left, Right: lowerFormula(bank, sc, f.Iff)}
}

func lowerImpl(bank *term.Bank, sc scope, f *grammar.ImplFormula) formula.Formula {
	left := lowerOr(bank, sc, f.Left)
	if f.Implies == nil {
		return left
	}
	return &formula.Implies{Left: left, Right: lowerImpl(bank, sc, f.Implies)}
}

func lowerOr(bank *term.Bank, sc scope, f *grammar.OrFormula) formula.Formula {
	operands := make([]formula.Formula, len(f.Operands))
	for i, o := range f.Operands {
		operands[i] = lowerAnd(bank, sc, o)
	}
	return formula.OrAll(operands)
}

func lowerAnd(bank *term.Bank, sc scope, f *grammar.AndFormula) formula.Formula {
	operands := make([]formula.Formula, len(f.Operands))
	for i, o := range f.Operands {
		operands[i] = lowerUnary(bank, sc, o)
	}
	return formula.AndAll(operands)
}

func lowerUnary(bank *term.Bank, sc scope, f *grammar.UnaryFormula) formula.Formula {
	var base formula.Formula
	switch {
	case f.Quant != nil:
		base = lowerQuant(bank, sc, f.Quant)
	case f.Paren != nil:
		base = lowerFormula(bank, sc, f.Paren)
	default:
		base = &formula.Atom{Lit: lowerLiteral(bank, sc, f.Atom)}
	}
	if f.Negated {
		return &formula.Not{Sub: base}
	}
	return base
}

// lowerQuant binds every variable named in the prefix ("![X,Y]:body" binds
// both X and Y over the whole body, not one-at-a-time), then nests one
// ForAll/Exists per variable, outermost first, so the quantifier order in
// the source is preserved.
func lowerQuant(bank *term.Bank, sc scope, q *grammar.QuantifiedFormula) formula.Formula {
	inner := sc
	bound := make([]*term.Term, len(q.Vars))
	for i, v := range q.Vars {
		fresh := bank.FreshVariable()
		inner[v.Value] = fresh
		bound[i] = fresh
	}
	body := lowerUnary(bank, inner, q.Body)
	for i := len(bound) - 1; i >= 0; i-- {
		if q.Universal {
			body = &formula.ForAll{Var: bound[i], Body: body}
		} else {
			body = &formula.Exists{Var: bound[i], Body: body}
		}
	}
	return body
}
