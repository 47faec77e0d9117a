package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/term"
)

func newPContext() (*PContext, *term.Bank, *id.Source) {
	b := term.NewBank()
	ord := order.NewOrdering()
	st := clausestore.NewStore(b, ord)
	return NewContext(b, ord, st), b, id.NewSource()
}

func TestEqualityResolutionUnifiesAndDrops(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x := b.Var("X")
	a := b.App("a")
	// p(X) | X != a  --ER-->  p(a)
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", x), true),
		clause.NewEquation(x, a, false),
	}, clause.DerivationEdge{})

	results := EqualityResolution(b, src, c)
	assert.Len(t, results, 1)
	assert.Len(t, results[0].Literals, 1)
	assert.Same(t, a, results[0].Literals[0].Left.Args[0])
}

func TestEqualityFactoringCombinesSharedLeft(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x, y := b.Var("X"), b.Var("Y")
	a := b.App("a")
	// f(X)=a | f(Y)=a  --EF-->  f(Y)=a | a != a  (after X/Y unify)
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewEquation(b.App("f", x), a, true),
		clause.NewEquation(b.App("f", y), a, true),
	}, clause.DerivationEdge{})

	results := EqualityFactoring(b, src, c)
	assert.NotEmpty(t, results)
}

func TestParamodulateFromRewritesIntoOtherClause(t *testing.T) {
	ctx, b, src := newPContext()
	a, cst := b.App("a"), b.App("c")
	f := b.App("f", a)

	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f, cst, true)}, clause.DerivationEdge{})
	ctx.Store.Insert(rule)

	target := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("g", f), true),
	}, clause.DerivationEdge{})
	ctx.Store.Insert(target)

	results := paramodulateFrom(ctx, src, rule)
	assert.NotEmpty(t, results)
	found := false
	for _, r := range results {
		for _, l := range r.Literals {
			if l.Left.Functor == "g" && len(l.Left.Args) == 1 && l.Left.Args[0] == cst {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a derived clause with g(c)")
}

func TestGenerateAllRunsAllRules(t *testing.T) {
	ctx, b, src := newPContext()
	x := b.Var("X")
	a := b.App("a")
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewEquation(x, a, false),
	}, clause.DerivationEdge{})

	results := GenerateAll(ctx, src, c, Options{SchemaExpansion: true, EqualityFactoring: true, NegUnitParamod: true})
	assert.NotEmpty(t, results)
}
