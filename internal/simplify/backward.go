package simplify

import (
	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/id"
	"saturate/internal/term"
)

// Backward implements the four eliminate_* procedures spec.md 4.C names:
// whenever a new clause enters the processed set, it can make previously
// processed clauses redundant. Every clause a procedure removes from the
// store gets IRVictim and a derivation edge recording the cause. The
// subsumption and orphan procedures return those removed clauses, flagged
// Dead; the rewriting and contextual-SR procedures mark the removed
// clauses Dead and return fresh replacement clauses instead, which the
// caller re-queues.
type Backward struct{}

// EliminateBackwardSubsumed evicts every processed clause the new clause
// subsumes, deferring the actual partition walk and subsumption check to
// Store.RemoveSubsumed (the single implementation of that filter) and only
// adding the IRVictim/derivation bookkeeping this eviction path owns.
func (Backward) EliminateBackwardSubsumed(ctx *Context, given *clause.Clause) []*clause.Clause {
	victims := ctx.Store.RemoveSubsumed(given)
	for _, v := range victims {
		v.Flags = v.Flags.Set(clause.IRVictim)
		v.Derivation = clause.DerivationEdge{
			Rule:    clause.DerivSubsumed,
			Parents: append(append([]id.ClauseID{}, v.Derivation.Parents...), given.ID),
		}
	}
	return victims
}

// EliminateBackwardRewritten evicts every processed clause whose literals
// the new clause's rewrite rule (if it is one) simplifies, re-deriving a
// smaller replacement to re-queue instead of the original.
func (Backward) EliminateBackwardRewritten(ctx *Context, src *id.Source, given *clause.Clause) []*clause.Clause {
	if !given.IsPositiveUnit() || !given.Flags.Has(clause.Oriented) {
		return nil
	}
	var victims []*clause.Clause
	for _, part := range ctx.Store.Partitions() {
		for _, cand := range part.All() {
			if cand.ID == given.ID {
				continue
			}
			if rewritten, changed := rewriteClauseWith(ctx, given, cand); changed {
				replacement := clause.New(src.Next(), rewritten, clause.DerivationEdge{
					Rule:    clause.DerivRewritten,
					Parents: []id.ClauseID{cand.ID, given.ID},
				})
				evict(ctx.Store, cand, clause.DerivRewritten, given.ID)
				victims = append(victims, replacement)
			}
		}
	}
	return victims
}

// rewriteClauseWith rewrites both sides of every literal of cand with rule
// to a fixpoint, reporting whether anything changed.
func rewriteClauseWith(ctx *Context, rule, cand *clause.Clause) ([]*clause.Literal, bool) {
	lhs, rhs, ok := clausestore.RuleDirection(rule, ctx.Order)
	if !ok {
		return cand.Literals, false
	}
	changed := false
	out := make([]*clause.Literal, len(cand.Literals))
	for i, l := range cand.Literals {
		left, lc := rewriteOneWith(ctx.Bank, lhs, rhs, l.Left)
		right, rc := rewriteOneWith(ctx.Bank, lhs, rhs, l.Right)
		if lc || rc {
			changed = true
		}
		out[i] = clause.NewEquation(left, right, l.Positive)
	}
	return out, changed
}

// rewriteOneWith rewrites every occurrence of lhs found anywhere in t (to
// a fixpoint) with rhs, bottom-up.
func rewriteOneWith(bank *term.Bank, lhs, rhs, t *term.Term) (*term.Term, bool) {
	changed := false
	for {
		next, did := rewriteOneWithOnce(bank, lhs, rhs, t)
		if !did {
			return next, changed
		}
		t = next
		changed = true
	}
}

func rewriteOneWithOnce(bank *term.Bank, lhs, rhs, t *term.Term) (*term.Term, bool) {
	if t.IsVar() {
		return t, false
	}
	newArgs := make([]*term.Term, len(t.Args))
	anyChanged := false
	for i, a := range t.Args {
		r, did := rewriteOneWithOnce(bank, lhs, rhs, a)
		newArgs[i] = r
		if did {
			anyChanged = true
		}
	}
	if anyChanged {
		t = bank.App(t.Functor, newArgs...)
	}
	if s, ok := term.Match(nil, lhs, t); ok {
		return s.Apply(bank, rhs), true
	}
	return t, anyChanged
}

// EliminateBackwardContextualSR evicts a processed clause when the new
// clause is a negative unit that makes one of its literals redundant,
// mirroring the forward ContextualSimplifyReflect step but run the other
// direction (the new clause simplifies old ones, rather than the other
// way around). The evicted clause is replaced by a fresh clause over its
// surviving literals, the same re-derive-a-replacement shape
// EliminateBackwardRewritten uses -- dropping a redundant disjunct does
// not make the rest of the clause disappear.
func (Backward) EliminateBackwardContextualSR(ctx *Context, src *id.Source, given *clause.Clause) []*clause.Clause {
	if !given.IsNegativeUnit() {
		return nil
	}
	var victims []*clause.Clause
	for _, part := range ctx.Store.Partitions() {
		for _, cand := range part.All() {
			if cand.ID == given.ID {
				continue
			}
			simplified := false
			var kept []*clause.Literal
			for _, l := range cand.Literals {
				if !l.Positive {
					if _, ok := matchBothSides(given.Literals[0], l); ok {
						simplified = true
						continue
					}
				}
				kept = append(kept, l)
			}
			if !simplified {
				continue
			}
			evict(ctx.Store, cand, clause.DerivRewritten, given.ID)
			replacement := clause.New(src.Next(), kept, clause.DerivationEdge{
				Rule:    clause.DerivRewritten,
				Parents: []id.ClauseID{cand.ID, given.ID},
			})
			victims = append(victims, replacement)
		}
	}
	return victims
}

// EliminateOrphans evicts any processed clause whose derivation depends on
// a clause that has itself just been marked Dead. Each such orphan is
// removed from the store and marked Dead too; it is not re-derived.
func (Backward) EliminateOrphans(ctx *Context, dead map[id.ClauseID]bool) []*clause.Clause {
	var victims []*clause.Clause
	for _, part := range ctx.Store.Partitions() {
		for _, cand := range part.All() {
			for _, p := range cand.Derivation.Parents {
				if dead[p] {
					victims = append(victims, evict(ctx.Store, cand, clause.DerivSubsumed, p))
					break
				}
			}
		}
	}
	return victims
}

func evict(store *clausestore.Store, c *clause.Clause, rule clause.DerivationKind, cause id.ClauseID) *clause.Clause {
	store.Remove(c)
	c.Flags = c.Flags.Set(clause.IRVictim).Set(clause.Dead)
	c.Derivation = clause.DerivationEdge{Rule: rule, Parents: append(append([]id.ClauseID{}, c.Derivation.Parents...), cause)}
	return c
}
