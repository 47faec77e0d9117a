package clausestore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/term"
)

func TestInsertClassifiesIntoFourPartitions(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	ord := order.NewOrdering()
	st := NewStore(b, ord)

	a, f := b.App("a"), b.App("f", b.App("a"))
	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f, a, true)}, clause.DerivationEdge{})
	st.Insert(rule)
	assert.Equal(t, 1, st.PositiveRules.Len())

	x := b.Var("X")
	y := b.Var("Y")
	unorientable := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(x, y, true)}, clause.DerivationEdge{})
	st.Insert(unorientable)
	assert.Equal(t, 1, st.PositiveEquations.Len())

	neg := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p"), false)}, clause.DerivationEdge{})
	st.Insert(neg)
	assert.Equal(t, 1, st.NegativeUnits.Len())

	nonUnit := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p"), true),
		clause.NewAtom(b, b.App("q"), true),
	}, clause.DerivationEdge{})
	st.Insert(nonUnit)
	assert.Equal(t, 1, st.NonUnits.Len())

	assert.Equal(t, 4, st.Len())
}

func TestInsertTracksGlobalIndexedFlag(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	ord := order.NewOrdering()
	st := NewStore(b, ord)

	rule := clause.New(src.Next(), []*clause.Literal{
		clause.NewEquation(b.App("f", b.App("a")), b.App("a"), true),
	}, clause.DerivationEdge{})
	st.Insert(rule)
	assert.True(t, rule.Flags.Has(clause.GlobalIndexed))
	assert.Equal(t, 1, st.Rewrite.Index.Len())
}

func TestRemoveSubsumedEvictsAndCounts(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	ord := order.NewOrdering()
	st := NewStore(b, ord)

	x := b.Var("X")
	general := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x), true)}, clause.DerivationEdge{})

	a := b.App("a")
	specific := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", a), true),
		clause.NewAtom(b, b.App("q"), true),
	}, clause.DerivationEdge{})
	st.Insert(specific)
	assert.Equal(t, 1, st.Len())

	victims := st.RemoveSubsumed(general)
	assert.Equal(t, 1, len(victims))
	assert.Equal(t, 0, st.Len())
	assert.True(t, specific.Flags.Has(clause.Dead))
}

func TestRemoveUntracksGlobalIndices(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	ord := order.NewOrdering()
	st := NewStore(b, ord)

	rule := clause.New(src.Next(), []*clause.Literal{
		clause.NewEquation(b.App("f", b.App("a")), b.App("a"), true),
	}, clause.DerivationEdge{})
	st.Insert(rule)
	st.Remove(rule)
	assert.Equal(t, 0, st.Rewrite.Index.Len())
	assert.False(t, rule.Flags.Has(clause.Processed))
}
