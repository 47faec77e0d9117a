// Package order implements the term ordering the rest of the engine needs
// to orient equations into demodulation rules and to restrict paramodulation
// to maximal sides/literals: a recursive-path ordering (RPO) over a
// symbol precedence, falling back to Incomparable whenever neither side
// dominates (most commonly when a variable occurs on one side only, or
// both sides are themselves unrelated variables).
package order

import (
	"strings"

	"saturate/internal/term"
)

type Result int

const (
	Incomparable Result = iota
	Less
	Equal
	Greater
)

func (r Result) String() string {
	switch r {
	case Less:
		return "<"
	case Equal:
		return "="
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Precedence compares two function/predicate symbols by arity then name.
// Higher arity wins first (functions that build bigger structures reduce
// toward ones that build smaller ones); ties break on ordinary string
// comparison, which is stable and total, matching the ordering's
// requirement to be total on ground terms.
type Precedence struct{}

func (Precedence) Compare(fSym string, fArity int, gSym string, gArity int) Result {
	if fSym == gSym && fArity == gArity {
		return Equal
	}
	if fArity != gArity {
		if fArity > gArity {
			return Greater
		}
		return Less
	}
	switch strings.Compare(fSym, gSym) {
	case 0:
		return Equal
	case 1:
		return Greater
	default:
		return Less
	}
}

// Ordering compares terms via recursive path ordering over prec. A
// variable is Equal to itself, Less than any compound term that contains
// it, and Incomparable with every other term (including other variables).
type Ordering struct {
	Prec Precedence
}

func NewOrdering() *Ordering { return &Ordering{} }

// Compare returns how s relates to t under the ordering.
func (o *Ordering) Compare(s, t *term.Term) Result {
	if s == t {
		return Equal
	}
	if s.IsVar() || t.IsVar() {
		if s.IsVar() && t.IsVar() {
			return Incomparable
		}
		// A variable can't dominate a compound term, and a compound term
		// only dominates a variable it properly contains.
		if s.IsVar() {
			if occurs(s, t) {
				return Less
			}
			return Incomparable
		}
		if occurs(t, s) {
			return Greater
		}
		return Incomparable
	}
	return o.compareApps(s, t)
}

func occurs(v, t *term.Term) bool {
	if t == v {
		return true
	}
	for _, a := range t.Args {
		if occurs(v, a) {
			return true
		}
	}
	return false
}

func (o *Ordering) compareApps(s, t *term.Term) Result {
	// RPO rule 1: if some argument of s is >= t, s > t.
	for _, si := range s.Args {
		switch o.Compare(si, t) {
		case Greater, Equal:
			return Greater
		}
	}
	// symmetric check for t dominating s
	for _, ti := range t.Args {
		switch o.Compare(ti, s) {
		case Greater, Equal:
			return Less
		}
	}

	switch o.Prec.Compare(s.Functor, len(s.Args), t.Functor, len(t.Args)) {
	case Greater:
		if o.allSmaller(t, s) {
			return Greater
		}
		return Incomparable
	case Less:
		if o.allSmaller(s, t) {
			return Less
		}
		return Incomparable
	default:
		return o.compareLex(s, t)
	}
}

// allSmaller reports whether every argument of big's relation target (t)
// is strictly dominated by big -- the RPO condition for precedence-based
// domination to apply.
func (o *Ordering) allSmaller(small, big *term.Term) bool {
	for _, a := range small.Args {
		if o.Compare(big, a) != Greater {
			return false
		}
	}
	return true
}

func (o *Ordering) compareLex(s, t *term.Term) Result {
	if s.Functor != t.Functor || len(s.Args) != len(t.Args) {
		return Incomparable
	}
	for i := range s.Args {
		switch o.Compare(s.Args[i], t.Args[i]) {
		case Greater:
			if o.allSmaller(t, s) {
				return Greater
			}
			return Incomparable
		case Less:
			if o.allSmaller(s, t) {
				return Less
			}
			return Incomparable
		case Equal:
			continue
		default:
			return Incomparable
		}
	}
	return Equal
}

// Orient decides whether the equation s = t can be directed into a
// demodulation rule s -> t (Greater), t -> s (Less), or must be kept as an
// unorientable equation (Incomparable/Equal). Equal is folded into
// Incomparable here since an equation between identical terms never yields
// a useful rewrite rule.
func (o *Ordering) Orient(s, t *term.Term) Result {
	r := o.Compare(s, t)
	if r == Equal {
		return Incomparable
	}
	return r
}
