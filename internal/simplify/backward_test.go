package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/id"
)

func TestEliminateBackwardSubsumedEvictsInstance(t *testing.T) {
	ctx, b, src := newCtx()
	a := b.App("a")
	instance := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", a), true),
		clause.NewAtom(b, b.App("q"), true),
	}, clause.DerivationEdge{})
	ctx.Store.Insert(instance)

	x := b.Var("X")
	general := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x), true)}, clause.DerivationEdge{})

	victims := (Backward{}).EliminateBackwardSubsumed(ctx, general)
	assert.Len(t, victims, 1)
	assert.Equal(t, instance.ID, victims[0].ID)
	assert.True(t, victims[0].Flags.Has(clause.IRVictim))
	assert.Equal(t, 0, ctx.Store.Len())
}

func TestEliminateBackwardRewrittenProducesReplacement(t *testing.T) {
	ctx, b, src := newCtx()
	a, c := b.App("a"), b.App("c")
	f := b.App("f", a)

	target := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f, a, true)}, clause.DerivationEdge{})
	ctx.Store.Insert(target)

	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f, c, true)}, clause.DerivationEdge{})
	ctx.Store.Insert(rule) // classify as its own partition; simulate as "given"

	victims := (Backward{}).EliminateBackwardRewritten(ctx, src, rule)
	assert.Len(t, victims, 1)
	assert.Same(t, c, victims[0].Literals[0].Left)
}

func TestEliminateBackwardContextualSRDropsRedundantLiteral(t *testing.T) {
	ctx, b, src := newCtx()
	a, bConst := b.App("a"), b.App("b")
	cand := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", a), false),
		clause.NewAtom(b, b.App("q", bConst), true),
	}, clause.DerivationEdge{})
	ctx.Store.Insert(cand)

	given := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), false)}, clause.DerivationEdge{})

	victims := (Backward{}).EliminateBackwardContextualSR(ctx, src, given)
	assert.Len(t, victims, 1)
	assert.Len(t, victims[0].Literals, 1)
	assert.Equal(t, "q", victims[0].Literals[0].Left.Functor)
	assert.Equal(t, 0, ctx.Store.Len(), "the original clause was evicted, not left in place")
}

func TestEliminateOrphansPullsBackDescendants(t *testing.T) {
	ctx, b, src := newCtx()
	parentID := src.Next()
	child := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p"), true)},
		clause.DerivationEdge{Rule: clause.DerivRewritten, Parents: []id.ClauseID{parentID}})
	ctx.Store.Insert(child)

	dead := map[id.ClauseID]bool{parentID: true}
	victims := (Backward{}).EliminateOrphans(ctx, dead)
	assert.Len(t, victims, 1)
	assert.True(t, victims[0].Flags.Has(clause.Dead))
}
