// Package watchlist implements the watchlist subsystem (spec.md 4.F): a
// side set of goal-directed clauses the saturation loop never selects as
// a given clause, but checks every new/processed clause against. A
// processed clause that subsumes a watch clause gets the SubsumesWatch
// flag; a dynamic watchlist drops the subsumed watches outright, so an
// empty watchlist signals every watched goal has been derived.
//
// The feature-vector pre-filter here is the same fvindex.Index
// clausestore.Set already uses for forward/backward subsumption -- the
// watchlist is conceptually a fifth partition, just one the main store
// never selects a given clause from.
package watchlist

import (
	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/fvindex"
	"saturate/internal/order"
	"saturate/internal/term"
)

// Watchlist holds the watch clauses plus the two heuristic-parameter-surface
// flags (§6) that change how check_watchlist behaves: Static (never remove
// a subsumed watch, just flag the subsumer) and Simplify (rewrite watch
// clauses against new demodulators).
type Watchlist struct {
	Bank  *term.Bank
	Order *order.Ordering

	Static   bool
	Simplify bool

	order   []uint64
	clauses map[uint64]*clause.Clause
	fv      *fvindex.Index
}

func New(bank *term.Bank, ord *order.Ordering, static, simplify bool, initial []*clause.Clause) *Watchlist {
	w := &Watchlist{
		Bank:     bank,
		Order:    ord,
		Static:   static,
		Simplify: simplify,
		clauses:  make(map[uint64]*clause.Clause),
		fv:       fvindex.NewIndex(),
	}
	for _, c := range initial {
		w.insert(c)
	}
	return w
}

func (w *Watchlist) insert(c *clause.Clause) {
	key := c.ID.CreationDate
	if _, exists := w.clauses[key]; exists {
		return
	}
	c.Flags = c.Flags.Set(clause.WatchOnly)
	w.clauses[key] = c
	w.order = append(w.order, key)
	w.fv.Insert(c)
}

// remove drops c from the watchlist's own index (its map/order/fv, not a
// clausestore.Set), so it cannot share clausestore.Store.RemoveSubsumed's
// removal mechanics the way Check shares its clause.Subsumes test -- only
// the subsumption predicate is common ground between the two subsystems.
func (w *Watchlist) remove(c *clause.Clause) {
	key := c.ID.CreationDate
	if _, exists := w.clauses[key]; !exists {
		return
	}
	delete(w.clauses, key)
	w.fv.Remove(c)
	for i, k := range w.order {
		if k == key {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *Watchlist) Len() int { return len(w.clauses) }

func (w *Watchlist) All() []*clause.Clause {
	out := make([]*clause.Clause, 0, len(w.order))
	for _, k := range w.order {
		out = append(out, w.clauses[k])
	}
	return out
}

// Check implements check_watchlist: tests c against every watch clause
// c's feature vector could possibly subsume. On a static watchlist, a
// subsuming c just gets SubsumesWatch set and the watch stays (repeated
// hits against the same goal are expected). On a dynamic watchlist, every
// watch c actually subsumes is removed (remove_subsumed), same flag set.
// Returns true iff c subsumed at least one watch clause.
func (w *Watchlist) Check(c *clause.Clause) bool {
	hit := false
	for _, watch := range w.fv.CandidatesToSubsume(c) {
		if !clause.Subsumes(c, watch) {
			continue
		}
		hit = true
		if !w.Static {
			w.remove(watch)
		}
	}
	if hit {
		c.Flags = c.Flags.Set(clause.SubsumesWatch)
	}
	return hit
}

// Rewrite demodulates every watch clause against rule (a newly processed
// oriented positive unit), re-weighing and re-inserting any watch clause
// the rule actually changed. A no-op unless Simplify is enabled and rule
// qualifies as a demodulator.
func (w *Watchlist) Rewrite(rule *clause.Clause) {
	if !w.Simplify || !rule.IsPositiveUnit() || !rule.Flags.Has(clause.Oriented) {
		return
	}
	lhs, rhs, ok := clausestore.RuleDirection(rule, w.Order)
	if !ok {
		return
	}
	for _, watch := range w.All() {
		changed := false
		lits := make([]*clause.Literal, len(watch.Literals))
		for i, l := range watch.Literals {
			left, lc := rewriteToFixpoint(w.Bank, lhs, rhs, l.Left)
			right, rc := rewriteToFixpoint(w.Bank, lhs, rhs, l.Right)
			if lc || rc {
				changed = true
			}
			lits[i] = clause.NewEquation(left, right, l.Positive)
		}
		if !changed {
			continue
		}
		w.remove(watch)
		rewritten := watch.WithLiterals(watch.ID, lits, clause.DerivRewritten)
		w.insert(rewritten)
	}
}

func rewriteToFixpoint(bank *term.Bank, lhs, rhs, t *term.Term) (*term.Term, bool) {
	changed := false
	for {
		next, did := rewriteOnce(bank, lhs, rhs, t)
		if !did {
			return next, changed
		}
		t = next
		changed = true
	}
}

func rewriteOnce(bank *term.Bank, lhs, rhs, t *term.Term) (*term.Term, bool) {
	if t.IsVar() {
		return t, false
	}
	args := make([]*term.Term, len(t.Args))
	any := false
	for i, a := range t.Args {
		r, did := rewriteOnce(bank, lhs, rhs, a)
		args[i] = r
		if did {
			any = true
		}
	}
	if any {
		t = bank.App(t.Functor, args...)
	}
	if s, ok := term.Match(nil, lhs, t); ok {
		return s.Apply(bank, rhs), true
	}
	return t, any
}
