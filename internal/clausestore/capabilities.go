package clausestore

import (
	"saturate/internal/clause"
	"saturate/internal/order"
	"saturate/internal/pmindex"
	"saturate/internal/term"
)

// RuleDirection picks which side of a positive unit clause's equation is
// the demodulation left-hand side: whichever side the ordering says is
// strictly greater. ok is false when the two sides are incomparable, in
// which case the clause cannot be oriented into a rule.
func RuleDirection(c *clause.Clause, ord *order.Ordering) (lhs, rhs *term.Term, ok bool) {
	lit := c.Literals[0]
	switch ord.Orient(lit.Left, lit.Right) {
	case order.Greater:
		return lit.Left, lit.Right, true
	case order.Less:
		return lit.Right, lit.Left, true
	default:
		return nil, nil, false
	}
}

// RewriteCapability indexes oriented positive unit clauses (demodulation
// rules) keyed by the rule's left-hand side, backing RewriteFromIndex.
type RewriteCapability struct {
	Order *order.Ordering
	Index *pmindex.TermIndex
}

func NewRewriteCapability(ord *order.Ordering) *RewriteCapability {
	return &RewriteCapability{Order: ord, Index: pmindex.NewTermIndex()}
}

func (r *RewriteCapability) Name() string { return "rewrite" }

func (r *RewriteCapability) Predicate(c *clause.Clause) bool {
	return c.IsPositiveUnit() && c.Flags.Has(clause.Oriented)
}

func (r *RewriteCapability) Track(c *clause.Clause) {
	lhs, _, ok := RuleDirection(c, r.Order)
	if !ok {
		return
	}
	r.Index.IndexTerm(lhs, c, 0, pmindex.LeftSide)
}

func (r *RewriteCapability) Untrack(c *clause.Clause) {
	r.Index.Remove(c)
}

// ParamodFromCapability indexes the maximal side of every positive
// literal, the "paramodulate from" role: this clause supplies the rewrite
// s -> t used to rewrite some other clause's literal.
type ParamodFromCapability struct {
	Order *order.Ordering
	Index *pmindex.TermIndex
}

func NewParamodFromCapability(ord *order.Ordering) *ParamodFromCapability {
	return &ParamodFromCapability{Order: ord, Index: pmindex.NewTermIndex()}
}

func (p *ParamodFromCapability) Name() string { return "paramod-from" }

func (p *ParamodFromCapability) Predicate(c *clause.Clause) bool {
	for _, l := range c.Literals {
		if l.Positive {
			return true
		}
	}
	return false
}

func (p *ParamodFromCapability) Track(c *clause.Clause) {
	for i, l := range c.Literals {
		if !l.Positive {
			continue
		}
		switch p.Order.Compare(l.Left, l.Right) {
		case order.Greater:
			p.Index.IndexTerm(l.Left, c, i, pmindex.LeftSide)
		case order.Less:
			p.Index.IndexTerm(l.Right, c, i, pmindex.RightSide)
		default:
			// incomparable or equal: both sides are candidate maximal
			// terms, so both are offered as rewrite sources.
			p.Index.IndexTerm(l.Left, c, i, pmindex.LeftSide)
			p.Index.IndexTerm(l.Right, c, i, pmindex.RightSide)
		}
	}
}

func (p *ParamodFromCapability) Untrack(c *clause.Clause) {
	p.Index.Remove(c)
}

// ParamodIntoCapability indexes every non-variable subterm of every
// literal, the "paramodulate into" role: this clause offers rewrite sites
// another clause's maximal equation side could unify with.
type ParamodIntoCapability struct {
	Index *pmindex.TermIndex
}

func NewParamodIntoCapability() *ParamodIntoCapability {
	return &ParamodIntoCapability{Index: pmindex.NewTermIndex()}
}

func (p *ParamodIntoCapability) Name() string             { return "paramod-into" }
func (p *ParamodIntoCapability) Predicate(*clause.Clause) bool { return true }

func (p *ParamodIntoCapability) Track(c *clause.Clause) {
	for i, l := range c.Literals {
		p.Index.IndexAllSubterms(l.Left, c, i, pmindex.LeftSide)
		p.Index.IndexAllSubterms(l.Right, c, i, pmindex.RightSide)
	}
}

func (p *ParamodIntoCapability) Untrack(c *clause.Clause) {
	p.Index.Remove(c)
}

// NegPartnerCapability indexes negative literals' sides, used by
// contextual simplify-reflect to find a negative unit clause whose
// literal unifies with (and so can eliminate) a literal of the clause
// being simplified.
type NegPartnerCapability struct {
	Index *pmindex.TermIndex
}

func NewNegPartnerCapability() *NegPartnerCapability {
	return &NegPartnerCapability{Index: pmindex.NewTermIndex()}
}

func (n *NegPartnerCapability) Name() string { return "neg-partner" }

func (n *NegPartnerCapability) Predicate(c *clause.Clause) bool {
	return c.IsNegativeUnit()
}

func (n *NegPartnerCapability) Track(c *clause.Clause) {
	lit := c.Literals[0]
	n.Index.IndexTerm(lit.Left, c, 0, pmindex.LeftSide)
	n.Index.IndexTerm(lit.Right, c, 0, pmindex.RightSide)
}

func (n *NegPartnerCapability) Untrack(c *clause.Clause) {
	n.Index.Remove(c)
}
