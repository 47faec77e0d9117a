package clause

import "saturate/internal/term"

// Subsumes reports whether a subsumes b: whether there is a substitution
// over a's variables mapping every literal of a onto some literal of b
// (same sign, matching terms). This is the classical multi-literal
// subsumption check, implemented as backtracking search over literal
// assignments sharing one consistent substitution.
func Subsumes(a, b *Clause) bool {
	if len(a.Literals) > len(b.Literals) {
		return false
	}
	return subsumeFrom(a.Literals, b.Literals, term.NewSubst())
}

func subsumeFrom(aLits, bLits []*Literal, s term.Subst) bool {
	if len(aLits) == 0 {
		return true
	}
	head := aLits[0]
	rest := aLits[1:]
	for _, cand := range bLits {
		if head.Positive != cand.Positive {
			continue
		}
		if trial, ok := matchLiteral(head, cand, s); ok {
			if subsumeFrom(rest, bLits, trial) {
				return true
			}
		}
	}
	return false
}

// matchLiteral tries to extend s so that head matches cand, trying both
// orientations since equations are unordered (s = t subsumes t' = s' just
// as well as s' = t').
func matchLiteral(head, cand *Literal, s term.Subst) (term.Subst, bool) {
	trial := cloneSubst(s)
	if t1, ok := term.Match(trial, head.Left, cand.Left); ok {
		if t2, ok2 := term.Match(t1, head.Right, cand.Right); ok2 {
			return t2, true
		}
	}
	trial = cloneSubst(s)
	if t1, ok := term.Match(trial, head.Left, cand.Right); ok {
		if t2, ok2 := term.Match(t1, head.Right, cand.Left); ok2 {
			return t2, true
		}
	}
	return s, false
}

func cloneSubst(s term.Subst) term.Subst {
	c := make(term.Subst, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}
