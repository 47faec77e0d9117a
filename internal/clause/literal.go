// Package clause implements the engine's uniform equational clause
// representation: every literal is an equation or disequation, with
// ordinary predicate atoms desugared to p(args) = $true (or != for a
// negated atom), matching the E-style representation spec.md's data model
// calls for.
package clause

import (
	"fmt"

	"saturate/internal/term"
)

// TrueConstant is the distinguished 0-ary symbol every non-equational atom
// is compared against once desugared into equational form.
const TrueConstant = "$true"

// Literal is s = t (Positive) or s != t (!Positive). A predicate atom
// p(args) becomes Left: p(args), Right: $true, Positive: matches the
// atom's own sign.
type Literal struct {
	Left     *term.Term
	Right    *term.Term
	Positive bool
}

// NewEquation builds s = t or s != t directly.
func NewEquation(left, right *term.Term, positive bool) *Literal {
	return &Literal{Left: left, Right: right, Positive: positive}
}

// NewAtom desugars a predicate atom into equational form against $true.
func NewAtom(bank *term.Bank, atom *term.Term, positive bool) *Literal {
	return &Literal{Left: atom, Right: bank.App(TrueConstant), Positive: positive}
}

// IsEquational reports whether this literal is a "real" equation (neither
// side is the $true marker), as opposed to a desugared predicate atom.
func (l *Literal) IsEquational() bool {
	return !isTrueConstant(l.Left) && !isTrueConstant(l.Right)
}

func isTrueConstant(t *term.Term) bool {
	return t.IsApp() && t.Arity() == 0 && t.Functor == TrueConstant
}

func (l *Literal) IsGround() bool {
	return l.Left.IsGround() && l.Right.IsGround()
}

// Weight is the symbol-counting weight of both sides, used by the
// selection heuristic's clause weight function.
func (l *Literal) Weight() int {
	return l.Left.Weight() + l.Right.Weight()
}

// Vars appends every variable occurrence under the literal to dst.
func (l *Literal) Vars(dst []*term.Term) []*term.Term {
	dst = l.Left.Vars(dst)
	return l.Right.Vars(dst)
}

func (l *Literal) String() string {
	op := "="
	if !l.Positive {
		op = "!="
	}
	if !l.IsEquational() {
		// desugared atom: print as the bare (possibly negated) atom
		if l.Positive {
			return l.Left.String()
		}
		return "~" + l.Left.String()
	}
	return fmt.Sprintf("%s %s %s", l.Left.String(), op, l.Right.String())
}

// Negate returns the literal with its sign flipped, sharing both sides.
func (l *Literal) Negate() *Literal {
	return &Literal{Left: l.Left, Right: l.Right, Positive: !l.Positive}
}
