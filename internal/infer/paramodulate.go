package infer

import (
	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/pmindex"
	"saturate/internal/term"
)

// paramodSite is one position inside a literal side where a rewrite rule's
// left-hand side unifies, paired with the substitution that unification
// produced and the side with that one position rewritten to the rule's
// right-hand side (not yet substitution-applied).
type paramodSite struct {
	sub      term.Subst
	replaced *term.Term
}

// paramodPositions finds every non-variable position in t that unifies
// with l, the generating rule's left-hand side, and reports what t looks
// like with that position swapped for r. Paramodulation never targets a
// variable position: doing so would be unsound (it could derive
// instances unrelated to any ground consequence of the clause set).
func paramodPositions(bank *term.Bank, l, r, t *term.Term) []paramodSite {
	var sites []paramodSite
	if t.IsVar() {
		return sites
	}
	if sub, ok := term.Unify(nil, l, t); ok {
		sites = append(sites, paramodSite{sub: sub, replaced: r})
	}
	for i, a := range t.Args {
		for _, s := range paramodPositions(bank, l, r, a) {
			newArgs := append([]*term.Term{}, t.Args...)
			newArgs[i] = s.replaced
			sites = append(sites, paramodSite{sub: s.sub, replaced: bank.App(t.Functor, newArgs...)})
		}
	}
	return sites
}

// combine builds the superposition result sigma(into' | from') given:
//   - from:  the rule clause D = D' | l=r, with the (l,r) pair already
//     picked out of its literal at fromLit
//   - into:  the clause being rewritten, C = C' | [u]_p, with u the
//     literal at intoLit whose chosen side contains the rewritten position
//   - site:  the unification substitution and the rewritten side
func combine(bank *term.Bank, src *id.Source, from *clause.Clause, fromLit int, into *clause.Clause, intoLit int, intoSide pmindex.Side, site paramodSite) *clause.Clause {
	lits := make([]*clause.Literal, 0, len(from.Literals)+len(into.Literals)-1)
	for i, l := range from.Literals {
		if i == fromLit {
			continue
		}
		lits = append(lits, clause.NewEquation(site.sub.Apply(bank, l.Left), site.sub.Apply(bank, l.Right), l.Positive))
	}
	for i, l := range into.Literals {
		if i != intoLit {
			lits = append(lits, clause.NewEquation(site.sub.Apply(bank, l.Left), site.sub.Apply(bank, l.Right), l.Positive))
			continue
		}
		newLeft, newRight := l.Left, l.Right
		if intoSide == pmindex.LeftSide {
			newLeft = site.replaced
		} else {
			newRight = site.replaced
		}
		lits = append(lits, clause.NewEquation(site.sub.Apply(bank, newLeft), site.sub.Apply(bank, newRight), l.Positive))
	}
	return clause.New(src.Next(), lits, clause.DerivationEdge{
		Rule:    clause.DerivParamodulation,
		Parents: []id.ClauseID{from.ID, into.ID},
	})
}

// orderedRule reports whether the ground ordering permits using
// (l,r) as a paramodulation-from rule after sigma: sigma(l) must not be
// smaller than sigma(r), or the rewrite would make the term bigger, which
// ordered paramodulation forbids to keep the search terminating and
// complete.
func orderedRule(ord *order.Ordering, bank *term.Bank, sub term.Subst, l, r *term.Term) bool {
	return ord.Compare(sub.Apply(bank, l), sub.Apply(bank, r)) != order.Less
}

// Paramodulate generates every ordered-paramodulation consequence between
// given and the processed clause set, in both roles: given supplying the
// rewrite rule (paramodulation "from"), and given being rewritten
// (paramodulation "into").
func Paramodulate(ctx *PContext, src *id.Source, given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	out = append(out, paramodulateFrom(ctx, src, given)...)
	out = append(out, paramodulateInto(ctx, src, given)...)
	return out
}

// PContext is the slice of clausestore.Store state the inference rules
// need: the shared bank, ordering, and the two paramodulation indices.
type PContext struct {
	Bank  *term.Bank
	Order *order.Ordering
	Store *clausestore.Store
}

func paramodulateFrom(ctx *PContext, src *id.Source, given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	renamed := renameApart(ctx.Bank, given)
	for i, l := range renamed.Literals {
		if !l.Positive {
			continue
		}
		for _, dir := range []struct{ l, r *term.Term }{{l.Left, l.Right}, {l.Right, l.Left}} {
			seen := make(map[id.ClauseID]map[int]bool)
			for _, occ := range ctx.Store.ParamodInto.Index.Candidates(dir.l) {
				if occ.Clause.ID == given.ID {
					continue
				}
				if seen[occ.Clause.ID][occ.LiteralIdx] {
					continue
				}
				if seen[occ.Clause.ID] == nil {
					seen[occ.Clause.ID] = make(map[int]bool)
				}
				seen[occ.Clause.ID][occ.LiteralIdx] = true

				intoLit := occ.Clause.Literals[occ.LiteralIdx]
				side := intoLit.Left
				if occ.Side == pmindex.RightSide {
					side = intoLit.Right
				}
				for _, site := range paramodPositions(ctx.Bank, dir.l, dir.r, side) {
					if !orderedRule(ctx.Order, ctx.Bank, site.sub, dir.l, dir.r) {
						continue
					}
					out = append(out, combine(ctx.Bank, src, renamed, i, occ.Clause, occ.LiteralIdx, occ.Side, site))
				}
			}
		}
	}
	return out
}

func paramodulateInto(ctx *PContext, src *id.Source, given *clause.Clause) []*clause.Clause {
	var out []*clause.Clause
	for i, l := range given.Literals {
		for _, side := range []struct {
			t    *term.Term
			mark pmindex.Side
		}{{l.Left, pmindex.LeftSide}, {l.Right, pmindex.RightSide}} {
			seen := make(map[id.ClauseID]bool)
			for _, occ := range ctx.Store.ParamodFrom.Index.Candidates(side.t) {
				if occ.Clause.ID == given.ID || seen[occ.Clause.ID] {
					continue
				}
				seen[occ.Clause.ID] = true
				rule := renameApart(ctx.Bank, occ.Clause)
				ruleLit := rule.Literals[occ.LiteralIdx]
				l2, r2 := ruleLit.Left, ruleLit.Right
				if occ.Side == pmindex.RightSide {
					l2, r2 = ruleLit.Right, ruleLit.Left
				}
				for _, site := range paramodPositions(ctx.Bank, l2, r2, side.t) {
					if !orderedRule(ctx.Order, ctx.Bank, site.sub, l2, r2) {
						continue
					}
					out = append(out, combine(ctx.Bank, src, rule, occ.LiteralIdx, given, i, side.mark, site))
				}
			}
		}
	}
	return out
}
