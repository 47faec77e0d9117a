package simplify

import (
	"saturate/internal/clausestore"
	"saturate/internal/term"
)

// rewriteToFixpoint demodulates t against the store's rewrite-rule index
// until no more rules apply, rewriting bottom-up (subterms before the
// whole term) so a single pass catches chains of rewrites.
func rewriteToFixpoint(ctx *Context, limit uint64, limited bool, t *term.Term) (*term.Term, bool) {
	changedOverall := false
	for {
		next, changed := rewriteOnce(ctx, limit, limited, t)
		if !changed {
			return next, changedOverall
		}
		t = next
		changedOverall = true
	}
}

func rewriteOnce(ctx *Context, limit uint64, limited bool, t *term.Term) (*term.Term, bool) {
	if t.IsVar() {
		return t, false
	}
	newArgs := make([]*term.Term, len(t.Args))
	anyChanged := false
	for i, a := range t.Args {
		r, did := rewriteOnce(ctx, limit, limited, a)
		newArgs[i] = r
		if did {
			anyChanged = true
		}
	}
	if anyChanged {
		t = ctx.Bank.App(t.Functor, newArgs...)
	}
	for _, occ := range ctx.Store.Rewrite.Index.Candidates(t) {
		if limited && occ.Clause.ID.CreationDate > limit {
			// LimitedRW: a clause may only be rewritten by rules no
			// younger than the limit date, so a cycle through
			// strictly-younger rewrites can't arise. The boundary
			// clause (date == limit) is itself still eligible.
			continue
		}
		lhs, rhs, ok := clausestore.RuleDirection(occ.Clause, ctx.Order)
		if !ok {
			continue
		}
		if s, matched := term.Match(nil, lhs, t); matched {
			return s.Apply(ctx.Bank, rhs), true
		}
	}
	return t, anyChanged
}
