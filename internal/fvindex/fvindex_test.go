package fvindex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/term"
)

func TestCouldSubsumeRejectsLongerClause(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	short := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p"), true)}, clause.DerivationEdge{})
	long := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p"), true),
		clause.NewAtom(b, b.App("q"), true),
	}, clause.DerivationEdge{})

	assert.True(t, CouldSubsume(Compute(short), Compute(long)))
	assert.False(t, CouldSubsume(Compute(long), Compute(short)))
}

func TestIndexCandidateQueries(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	idx := NewIndex()

	unit := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p"), true)}, clause.DerivationEdge{})
	pair := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("p"), true),
		clause.NewAtom(b, b.App("q"), true),
	}, clause.DerivationEdge{})
	idx.Insert(unit)
	idx.Insert(pair)

	query := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("r"), true)}, clause.DerivationEdge{})
	candidates := idx.CandidatesToSubsume(query)
	assert.Len(t, candidates, 1)
	assert.Equal(t, unit.ID, candidates[0].ID)

	assert.Equal(t, 2, idx.Len())
	idx.Remove(unit)
	assert.Equal(t, 1, idx.Len())
}
