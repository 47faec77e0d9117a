package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/grammar"
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/term"
)

func TestSerializeRoundTripsThroughGrammar(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x := b.Var("X")
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", x), true),
		clause.NewEquation(x, b.App("a"), false),
	}, clause.DerivationEdge{})

	text := Serialize(c)
	file, err := grammar.ParseString(text)
	assert.NoError(t, err)
	assert.Len(t, file.Entries, 1)
	assert.Len(t, file.Entries[0].Bare.Literals, 2)
}

func TestFreeVariablesDeduplicatesInFirstOccurrenceOrder(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x, y := b.Var("X"), b.Var("Y")
	c := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p", x, y, x), true),
	}, clause.DerivationEdge{})

	free := FreeVariables(c)
	assert.Equal(t, []*term.Term{x, y}, free)
}

func TestComprehensionFiresOnExactlyOneFreeVariable(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x := b.Var("X")
	c := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x), true)}, clause.DerivationEdge{})

	clauses, ok := Comprehension(b, src, c)
	assert.True(t, ok)
	assert.NotEmpty(t, clauses)
	for _, cl := range clauses {
		assert.Equal(t, clause.DerivSchemaInstantiation, cl.Derivation.Rule)
	}
}

func TestComprehensionSkipsOnWrongFreeVariableCount(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x, y := b.Var("X"), b.Var("Y")
	c := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x, y), true)}, clause.DerivationEdge{})

	_, ok := Comprehension(b, src, c)
	assert.False(t, ok)
}

func TestReplacementFiresOnExactlyTwoFreeVariablesBothOrientations(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	x, y := b.Var("X"), b.Var("Y")
	c := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(x, y, true)}, clause.DerivationEdge{})

	clauses, ok := Replacement(b, src, c)
	assert.True(t, ok)
	assert.NotEmpty(t, clauses)
}

func TestExpandDispatchesByFreeVariableCount(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()

	ground := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p"), true)}, clause.DerivationEdge{})
	n, clauses := Expand(b, src, ground)
	assert.Equal(t, 0, n)
	assert.Nil(t, clauses)

	x, y, z := b.Var("X"), b.Var("Y"), b.Var("Z")
	tooMany := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", x, y, z), true)}, clause.DerivationEdge{})
	n, clauses = Expand(b, src, tooMany)
	assert.Equal(t, 0, n)
	assert.Nil(t, clauses)
}
