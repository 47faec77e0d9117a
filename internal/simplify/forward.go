package simplify

import (
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/term"
)

func termMatch(s term.Subst, pattern, subject *term.Term) (term.Subst, bool) {
	return term.Match(s, pattern, subject)
}

// NewForwardPipeline builds the forward simplifier in the fixed order
// spec.md 4.B specifies: interreduction, contextual simplify-reflect,
// condensing, unit subsumption, ER-var-lit, then (handled outside the
// Step shape, see ControlledSplit) controlled splitting.
func NewForwardPipeline() *Pipeline {
	return NewPipeline(
		&Interreduction{},
		&ContextualSimplifyReflect{},
		&Condensing{},
		&UnitSubsumption{},
		&EqualityResolutionVarLit{},
	)
}

// Interreduction demodulates every literal side against the store's
// rewrite-rule index to a fixpoint, then discards the whole clause if a
// positive literal has identical sides (s = s) and drops every negative
// literal with identical sides (s != s).
type Interreduction struct{}

func (Interreduction) Name() string { return "interreduction" }
func (Interreduction) Description() string {
	return "demodulates every literal against known rewrite rules to a fixpoint"
}

func (s *Interreduction) Apply(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome) {
	limited := c.Flags.Has(clause.LimitedRW)
	limit := c.ID.CreationDate

	var kept []*clause.Literal
	changed := false
	for _, l := range c.Literals {
		left, lc := rewriteToFixpoint(ctx, limit, limited, l.Left)
		right, rc := rewriteToFixpoint(ctx, limit, limited, l.Right)
		if lc || rc {
			changed = true
		}
		if left == right {
			if l.Positive {
				return c, Discarded // tautology: s = s is always true
			}
			continue // s != s is always false: drop the disjunct
		}
		kept = append(kept, clause.NewEquation(left, right, l.Positive))
	}

	if !changed {
		return c, Continue
	}
	if len(kept) == 0 {
		return clause.New(c.ID, nil, clause.DerivationEdge{Rule: clause.DerivRewritten, Parents: []id.ClauseID{c.ID}}), Empty
	}
	return c.WithLiterals(c.ID, kept, clause.DerivRewritten), Continue
}

// ContextualSimplifyReflect deletes a literal from c when an existing
// processed negative-unit clause is, modulo matching, exactly that
// literal: the negative fact already in the active set makes the
// disjunct redundant.
type ContextualSimplifyReflect struct{}

func (ContextualSimplifyReflect) Name() string { return "contextual-simplify-reflect" }
func (ContextualSimplifyReflect) Description() string {
	return "removes literals already implied redundant by a processed negative unit clause"
}

func (s *ContextualSimplifyReflect) Apply(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome) {
	var kept []*clause.Literal
	removed := false
	for _, l := range c.Literals {
		if !l.Positive && redundantAgainstNegPartner(ctx, c, l) {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return c, Continue
	}
	if len(kept) == 0 {
		return clause.New(c.ID, nil, clause.DerivationEdge{Rule: clause.DerivRewritten, Parents: []id.ClauseID{c.ID}}), Empty
	}
	return c.WithLiterals(c.ID, kept, clause.DerivRewritten), Continue
}

func redundantAgainstNegPartner(ctx *Context, c *clause.Clause, l *clause.Literal) bool {
	for _, occ := range ctx.Store.NegPartner.Index.Candidates(l.Left) {
		if occ.Clause.ID == c.ID {
			continue
		}
		other := occ.Clause.Literals[0]
		if _, ok := matchBothSides(other, l); ok {
			return true
		}
	}
	return false
}

func matchBothSides(pattern, subject *clause.Literal) (any, bool) {
	s, ok := termMatch(nil, pattern.Left, subject.Left)
	if !ok {
		return nil, false
	}
	s, ok = termMatch(s, pattern.Right, subject.Right)
	return s, ok
}

// Condensing removes a literal that is a matching instance of another
// literal in the same clause -- the standard condensation simplification
// (two literals that only differ by a substitution collapse to one).
type Condensing struct{}

func (Condensing) Name() string             { return "condensing" }
func (Condensing) Description() string { return "drops literals that are instances of another literal in the same clause" }

func (s *Condensing) Apply(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome) {
	if len(c.Literals) < 2 {
		return c, Continue
	}
	redundant := make([]bool, len(c.Literals))
	for i, li := range c.Literals {
		if redundant[i] {
			continue
		}
		for j, lj := range c.Literals {
			if i == j || redundant[j] || li.Positive != lj.Positive {
				continue
			}
			if _, ok := matchBothSides(li, lj); ok {
				redundant[j] = true
			}
		}
	}
	anyRedundant := false
	var kept []*clause.Literal
	for i, l := range c.Literals {
		if redundant[i] {
			anyRedundant = true
			continue
		}
		kept = append(kept, l)
	}
	if !anyRedundant {
		return c, Continue
	}
	return c.WithLiterals(c.ID, kept, clause.DerivCondensed), Continue
}

// UnitSubsumption discards c if any already-processed unit clause
// subsumes it.
type UnitSubsumption struct{}

func (UnitSubsumption) Name() string        { return "unit-subsumption" }
func (UnitSubsumption) Description() string { return "discards clauses subsumed by a known unit clause" }

func (s *UnitSubsumption) Apply(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome) {
	for _, cand := range ctx.Store.PositiveRules.CandidatesToSubsume(c) {
		if cand.IsUnit() && cand.ID != c.ID && clause.Subsumes(cand, c) {
			return c, Discarded
		}
	}
	for _, cand := range ctx.Store.PositiveEquations.CandidatesToSubsume(c) {
		if cand.IsUnit() && cand.ID != c.ID && clause.Subsumes(cand, c) {
			return c, Discarded
		}
	}
	for _, cand := range ctx.Store.NegativeUnits.CandidatesToSubsume(c) {
		if cand.ID != c.ID && clause.Subsumes(cand, c) {
			return c, Discarded
		}
	}
	return c, Continue
}

// EqualityResolutionVarLit drops a negative literal whose two sides are
// already syntactically identical (X != X): always false, so the disjunct
// contributes nothing. If that was the clause's only literal, the clause
// simplifies straight to the empty clause.
type EqualityResolutionVarLit struct{}

func (EqualityResolutionVarLit) Name() string { return "er-var-lit" }
func (EqualityResolutionVarLit) Description() string {
	return "drops trivially-false disequation literals (t != t)"
}

func (s *EqualityResolutionVarLit) Apply(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome) {
	var kept []*clause.Literal
	removed := false
	for _, l := range c.Literals {
		if !l.Positive && l.Left == l.Right {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	if !removed {
		return c, Continue
	}
	if len(kept) == 0 {
		return clause.New(c.ID, nil, clause.DerivationEdge{Rule: clause.DerivEqualityResolution, Parents: []id.ClauseID{c.ID}}), Empty
	}
	return c.WithLiterals(c.ID, kept, clause.DerivEqualityResolution), Continue
}

// ControlledSplit implements controlled splitting: when a clause's
// literals partition into two or more groups sharing no variables, the
// clause is logically equivalent (under the Clark-completion-style
// splitting rule used here, via fresh propositional split atoms) to the
// conjunction of its components, which saturate independently and are
// usually far cheaper than the original. Returns the component clauses and
// true if a split was found; each component gets a fresh id from src, and
// the caller is responsible for discarding the original.
func ControlledSplit(src *id.Source, ord *order.Ordering, c *clause.Clause) ([]*clause.Clause, bool) {
	if len(c.Literals) < 2 {
		return nil, false
	}
	groups := partitionByVariable(c)
	if len(groups) < 2 {
		return nil, false
	}
	var out []*clause.Clause
	for _, lits := range groups {
		out = append(out, clause.New(src.Next(), lits, clause.DerivationEdge{Rule: clause.DerivSplit, Parents: []id.ClauseID{c.ID}}))
	}
	return out, true
}

// partitionByVariable groups literals into the coarsest partition such
// that no variable is shared across groups (connected components of the
// "shares a variable with" relation).
func partitionByVariable(c *clause.Clause) [][]*clause.Literal {
	n := len(c.Literals)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	litVars := make([]map[*term.Term]bool, n)
	for i, l := range c.Literals {
		m := make(map[*term.Term]bool)
		for _, v := range l.Vars(nil) {
			m[v] = true
		}
		litVars[i] = m
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sharesVar(litVars[i], litVars[j]) {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]*clause.Literal)
	for i, l := range c.Literals {
		r := find(i)
		groups[r] = append(groups[r], l)
	}
	out := make([][]*clause.Literal, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

func sharesVar(a, b map[*term.Term]bool) bool {
	for v := range a {
		if b[v] {
			return true
		}
	}
	return false
}
