package watchlist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/term"
)

func newWatch(t *testing.T) (*term.Bank, *order.Ordering, *id.Source) {
	t.Helper()
	return term.NewBank(), order.NewOrdering(), id.NewSource()
}

func TestCheckStaticFlagsWithoutRemoving(t *testing.T) {
	b, ord, src := newWatch(t)
	goal := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("goal"), true)}, clause.DerivationEdge{})

	w := New(b, ord, true, false, []*clause.Clause{goal})

	c := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("goal"), true)}, clause.DerivationEdge{})
	hit := w.Check(c)

	assert.True(t, hit)
	assert.True(t, c.Flags.Has(clause.SubsumesWatch))
	assert.Equal(t, 1, w.Len(), "static watchlist keeps the watch clause around")
}

func TestCheckDynamicRemovesSubsumedWatch(t *testing.T) {
	b, ord, src := newWatch(t)
	goal := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("goal"), true)}, clause.DerivationEdge{})

	w := New(b, ord, false, false, []*clause.Clause{goal})

	c := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("goal"), true)}, clause.DerivationEdge{})
	hit := w.Check(c)

	assert.True(t, hit)
	assert.True(t, c.Flags.Has(clause.SubsumesWatch))
	assert.Equal(t, 0, w.Len())
}

// Lexicographic precedence makes "z" > "a" (both constants, arity 0), so
// z=a orients into the demodulation rule z -> a.
func TestRewriteDemodulatesWatchClauses(t *testing.T) {
	b, ord, src := newWatch(t)
	z, a := b.App("z"), b.App("a")
	watch := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", z), true)}, clause.DerivationEdge{})

	w := New(b, ord, true, true, []*clause.Clause{watch})

	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(z, a, true)}, clause.DerivationEdge{})
	rule.Flags = rule.Flags.Set(clause.Oriented)

	w.Rewrite(rule)

	all := w.All()
	assert.Len(t, all, 1)
	assert.Same(t, a, all[0].Literals[0].Left.Args[0])
}

func TestRewriteIsNoopWhenSimplifyDisabled(t *testing.T) {
	b, ord, src := newWatch(t)
	z, a := b.App("z"), b.App("a")
	watch := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", z), true)}, clause.DerivationEdge{})

	w := New(b, ord, true, false, []*clause.Clause{watch})

	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(z, a, true)}, clause.DerivationEdge{})
	rule.Flags = rule.Flags.Set(clause.Oriented)

	w.Rewrite(rule)

	assert.Same(t, z, w.All()[0].Literals[0].Left.Args[0])
}
