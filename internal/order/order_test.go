package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/term"
)

func TestVariableNeverDominatesProperSubterm(t *testing.T) {
	b := term.NewBank()
	o := NewOrdering()
	x := b.Var("X")
	g := b.App("g", x)

	assert.Equal(t, Less, o.Compare(x, g))
	assert.Equal(t, Greater, o.Compare(g, x))
}

func TestUnrelatedVariablesIncomparable(t *testing.T) {
	b := term.NewBank()
	o := NewOrdering()
	x := b.Var("X")
	y := b.Var("Y")
	assert.Equal(t, Incomparable, o.Compare(x, y))
}

func TestBiggerArityFunctorDominates(t *testing.T) {
	b := term.NewBank()
	o := NewOrdering()
	a := b.App("a")
	f := b.App("f", a)
	assert.Equal(t, Greater, o.Compare(f, a))
}

func TestLexicographicTieBreak(t *testing.T) {
	b := term.NewBank()
	o := NewOrdering()
	a := b.App("a")
	c := b.App("c")
	fa := b.App("f", a)
	fc := b.App("f", c)
	// same functor/arity, first (only) argument a < c lexicographically
	assert.Equal(t, Less, o.Compare(fa, fc))
	assert.Equal(t, Greater, o.Compare(fc, fa))
}

func TestOrientFoldsEqualIntoIncomparable(t *testing.T) {
	b := term.NewBank()
	o := NewOrdering()
	a := b.App("a")
	assert.Equal(t, Incomparable, o.Orient(a, a))
}

func TestOrientPicksOrientableDirection(t *testing.T) {
	b := term.NewBank()
	o := NewOrdering()
	a := b.App("a")
	f := b.App("f", a)
	assert.Equal(t, Greater, o.Orient(f, a))
	assert.Equal(t, Less, o.Orient(a, f))
}
