package term

// Subst is a variable binding built up during unification or matching.
// Bindings map a *Term of Kind Var to its bound value; chains are resolved
// eagerly (no union-find) since terms here are small and short-lived.
type Subst map[*Term]*Term

func NewSubst() Subst { return make(Subst) }

// Resolve follows t through s until it reaches an unbound variable or a
// non-variable term.
func (s Subst) Resolve(t *Term) *Term {
	for t.IsVar() {
		bound, ok := s[t]
		if !ok {
			return t
		}
		t = bound
	}
	return t
}

// Apply builds the term that results from substituting every bound
// variable in t, interning the result through bank.
func (s Subst) Apply(bank *Bank, t *Term) *Term {
	t = s.Resolve(t)
	if t.IsVar() || len(t.Args) == 0 {
		return t
	}
	args := make([]*Term, len(t.Args))
	changed := false
	for i, a := range t.Args {
		args[i] = s.Apply(bank, a)
		if args[i] != t.Args[i] {
			changed = true
		}
	}
	if !changed {
		return t
	}
	return bank.App(t.Functor, args...)
}

func occursIn(v, t *Term, s Subst) bool {
	t = s.Resolve(t)
	if t.IsVar() {
		return t == v
	}
	for _, a := range t.Args {
		if occursIn(v, a, s) {
			return true
		}
	}
	return false
}

// Unify extends s (or a fresh Subst if s is nil) with bindings that make a
// and b identical, returning false if no such extension exists. Performs
// the occurs check, matching the engine's requirement for sound
// unification (no cyclic substitutions reaching the generating inferences).
func Unify(s Subst, a, b *Term) (Subst, bool) {
	if s == nil {
		s = NewSubst()
	}
	a = s.Resolve(a)
	b = s.Resolve(b)
	if a == b {
		return s, true
	}
	if a.IsVar() {
		if occursIn(a, b, s) {
			return s, false
		}
		s[a] = b
		return s, true
	}
	if b.IsVar() {
		if occursIn(b, a, s) {
			return s, false
		}
		s[b] = a
		return s, true
	}
	if a.Functor != b.Functor || len(a.Args) != len(b.Args) {
		return s, false
	}
	ok := true
	for i := range a.Args {
		s, ok = Unify(s, a.Args[i], b.Args[i])
		if !ok {
			return s, false
		}
	}
	return s, true
}

// Match extends s with bindings for variables of pattern only (treating
// subject as a ground/rigid term whose variables, if any, may not be
// bound), so that applying the result to pattern yields subject. This is
// one-way matching, the operation demodulation and subsumption both need:
// unlike Unify it never binds a variable occurring in subject.
func Match(s Subst, pattern, subject *Term) (Subst, bool) {
	if s == nil {
		s = NewSubst()
	}
	if pattern.IsVar() {
		if bound, ok := s[pattern]; ok {
			return s, bound == subject
		}
		s[pattern] = subject
		return s, true
	}
	if subject.IsVar() {
		return s, false
	}
	if pattern.Functor != subject.Functor || len(pattern.Args) != len(subject.Args) {
		return s, false
	}
	ok := true
	for i := range pattern.Args {
		s, ok = Match(s, pattern.Args[i], subject.Args[i])
		if !ok {
			return s, false
		}
	}
	return s, true
}
