package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/id"
	"saturate/internal/term"
)

func TestToClausesEliminatesImplies(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x := b.Var("X")
	p := NewPredicate(b, b.App("p", x), true)
	q := NewPredicate(b, b.App("q", x), true)
	f := &ForAll{Var: x, Body: &Implies{Left: p, Right: q}}

	clauses := ToClauses(b, src, f, src.Next())
	assert.Len(t, clauses, 1)
	assert.Len(t, clauses[0].Literals, 2)

	var sawNegP, sawQ bool
	for _, l := range clauses[0].Literals {
		if l.Left.Functor == "p" && !l.Positive {
			sawNegP = true
		}
		if l.Left.Functor == "q" && l.Positive {
			sawQ = true
		}
	}
	assert.True(t, sawNegP)
	assert.True(t, sawQ)
}

func TestToClausesSkolemizesExistential(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x, y := b.Var("X"), b.Var("Y")
	body := NewPredicate(b, b.App("p", x, y), true)
	f := &ForAll{Var: x, Body: &Exists{Var: y, Body: body}}

	clauses := ToClauses(b, src, f, src.Next())
	assert.Len(t, clauses, 1)
	lit := clauses[0].Literals[0]
	assert.Equal(t, "p", lit.Left.Functor)
	assert.Len(t, lit.Left.Args, 2)
	assert.Same(t, x, lit.Left.Args[0])
	skolemArg := lit.Left.Args[1]
	assert.True(t, skolemArg.IsApp())
	assert.Len(t, skolemArg.Args, 1)
	assert.Same(t, x, skolemArg.Args[0], "skolem function must depend on the enclosing universal X")
}

func TestDistributeProducesTwoClausesForOrOfAnds(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	a := NewPredicate(b, b.App("a"), true)
	c := NewPredicate(b, b.App("c"), true)
	d := NewPredicate(b, b.App("d"), true)
	// a & (c | d)  ->  two clauses: {a}, {c|d}
	f := &And{Left: a, Right: &Or{Left: c, Right: d}}
	clauses := ToClauses(b, src, f, src.Next())
	assert.Len(t, clauses, 2)
}
