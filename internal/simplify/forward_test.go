package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/term"
)

func newCtx() (*Context, *term.Bank, *id.Source) {
	b := term.NewBank()
	ord := order.NewOrdering()
	st := clausestore.NewStore(b, ord)
	return &Context{Bank: b, Order: ord, Store: st}, b, id.NewSource()
}

func TestInterreductionRewritesUsingStoredRule(t *testing.T) {
	ctx, b, src := newCtx()
	a, c := b.App("a"), b.App("c")
	f := b.App("f", a)

	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f, c, true)}, clause.DerivationEdge{})
	ctx.Store.Insert(rule)

	target := clause.New(src.Next(), []*clause.Literal{
		clause.NewEquation(b.App("g", f), a, true),
	}, clause.DerivationEdge{})

	step := &Interreduction{}
	rewritten, outcome := step.Apply(ctx, target)
	assert.Equal(t, Continue, outcome)
	assert.Same(t, c, rewritten.Literals[0].Left.Args[0], "f(a) should have rewritten to c inside g(f(a))")
}

func TestInterreductionDiscardsTautology(t *testing.T) {
	ctx, b, src := newCtx()
	x := b.Var("X")
	taut := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(x, x, true)}, clause.DerivationEdge{})

	_, outcome := (&Interreduction{}).Apply(ctx, taut)
	assert.Equal(t, Discarded, outcome)
}

func TestEqualityResolutionVarLitEmptiesTrivialUnit(t *testing.T) {
	ctx, b, src := newCtx()
	x := b.Var("X")
	trivialUnit := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(x, x, false)}, clause.DerivationEdge{})

	result, outcome := (&EqualityResolutionVarLit{}).Apply(ctx, trivialUnit)
	assert.Equal(t, Empty, outcome)
	assert.True(t, result.IsEmpty())
}

func TestUnitSubsumptionDiscardsKnownInstance(t *testing.T) {
	ctx, b, src := newCtx()
	x := b.Var("X")
	general := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x), true)}, clause.DerivationEdge{})
	ctx.Store.Insert(general)

	instance := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", b.App("a")), true)}, clause.DerivationEdge{})
	_, outcome := (&UnitSubsumption{}).Apply(ctx, instance)
	assert.Equal(t, Discarded, outcome)
}

func TestCondensingDropsMatchingDuplicateLiteral(t *testing.T) {
	ctx, b, src := newCtx()
	x := b.Var("X")
	a := b.App("a")
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", x), true),
		clause.NewAtom(b, b.App("p", a), true),
	}, clause.DerivationEdge{})

	result, outcome := (&Condensing{}).Apply(ctx, c)
	assert.Equal(t, Continue, outcome)
	assert.Len(t, result.Literals, 1)
}

func TestForwardPipelineShortCircuitsOnDiscard(t *testing.T) {
	ctx, b, src := newCtx()
	x := b.Var("X")
	general := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x), true)}, clause.DerivationEdge{})
	ctx.Store.Insert(general)

	instance := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", b.App("a")), true)}, clause.DerivationEdge{})
	pipeline := NewForwardPipeline()
	_, outcome := pipeline.Run(ctx, instance)
	assert.Equal(t, Discarded, outcome)
}

func TestControlledSplitFindsDisjointComponents(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x, y := b.Var("X"), b.Var("Y")
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", x), true),
		clause.NewAtom(b, b.App("q", y), true),
	}, clause.DerivationEdge{})

	parts, ok := ControlledSplit(src, order.NewOrdering(), c)
	assert.True(t, ok)
	assert.Len(t, parts, 2)
}

func TestControlledSplitRefusesWhenVariablesShared(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x := b.Var("X")
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", x), true),
		clause.NewAtom(b, b.App("q", x), true),
	}, clause.DerivationEdge{})

	_, ok := ControlledSplit(src, order.NewOrdering(), c)
	assert.False(t, ok)
}
