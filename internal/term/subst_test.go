package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifyBasic(t *testing.T) {
	b := NewBank()
	x := b.Var("X")
	a := b.App("a")
	lhs := b.App("f", x, a)
	rhs := b.App("f", a, a)

	s, ok := Unify(nil, lhs, rhs)
	assert.True(t, ok)
	assert.Same(t, a, s.Resolve(x))
	assert.Same(t, rhs, s.Apply(b, lhs))
}

func TestUnifyOccursCheckFails(t *testing.T) {
	b := NewBank()
	x := b.Var("X")
	term := b.App("f", x)

	_, ok := Unify(nil, x, term)
	assert.False(t, ok, "X must not unify with f(X)")
}

func TestUnifyDifferentFunctorsFail(t *testing.T) {
	b := NewBank()
	_, ok := Unify(nil, b.App("a"), b.App("b"))
	assert.False(t, ok)
}

func TestMatchBindsOnlyPatternVariables(t *testing.T) {
	b := NewBank()
	x := b.Var("X")
	a := b.App("a")
	pattern := b.App("f", x, a)
	subject := b.App("f", a, a)

	s, ok := Match(nil, pattern, subject)
	assert.True(t, ok)
	assert.Same(t, subject, s.Apply(b, pattern))
}

func TestMatchFailsWhenSubjectHasVariable(t *testing.T) {
	b := NewBank()
	x := b.Var("X")
	y := b.Var("Y")
	pattern := b.App("f", x)

	_, ok := Match(nil, pattern, y)
	assert.False(t, ok, "f(X) cannot match a bare variable subject")
	_ = x
}

func TestApplyRebuildsOnlyChangedSubterms(t *testing.T) {
	b := NewBank()
	x := b.Var("X")
	a := b.App("a")
	g := b.App("g", a)
	term := b.App("f", x, g)

	s := NewSubst()
	s[x] = a
	result := s.Apply(b, term)
	assert.Same(t, g, result.Args[1], "unchanged subterm must keep its original pointer")
}
