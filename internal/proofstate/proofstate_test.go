package proofstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/satcheck"
	"saturate/internal/term"
	"saturate/internal/watchlist"
)

func newProofState(t *testing.T, ctrl *ProofControl) (*ProofState, *term.Bank, *id.Source) {
	t.Helper()
	b := term.NewBank()
	ord := order.NewOrdering()
	src := id.NewSource()
	if ctrl == nil {
		ctrl = Default()
	}
	return New(b, ord, src, ctrl, satcheck.DPLLChecker{}), b, src
}

func TestSaturateFindsDirectRefutation(t *testing.T) {
	ps, b, src := newProofState(t, nil)
	a := b.App("a")
	pa := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), true)}, clause.DerivationEdge{})
	notPa := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), false)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{pa, notPa})

	outcome := ps.Saturate()
	assert.Equal(t, OutcomeRefutation, outcome)
	assert.NotEmpty(t, ps.ExtractRoots)
	assert.True(t, ps.ExtractRoots[len(ps.ExtractRoots)-1].IsEmpty())
}

func TestSaturateParamodulatesThenResolves(t *testing.T) {
	ps, b, src := newProofState(t, nil)
	a, bConst := b.App("a"), b.App("b")
	f := func(t *term.Term) *term.Term { return b.App("f", t) }

	// a = b, f(a) != f(b)  --(paramod then ER)-->  $false
	eq := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(a, bConst, true)}, clause.DerivationEdge{})
	diseq := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f(a), f(bConst), false)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{eq, diseq})

	outcome := ps.Saturate()
	assert.Equal(t, OutcomeRefutation, outcome)
}

func TestSaturateSaturatesOnConsistentInput(t *testing.T) {
	ps, b, src := newProofState(t, nil)
	a, bConst := b.App("a"), b.App("b")
	// p(a), q(b): no rule connects the two, nothing to refute.
	pa := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), true)}, clause.DerivationEdge{})
	qb := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("q", bConst), true)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{pa, qb})

	outcome := ps.Saturate()
	assert.Equal(t, OutcomeSaturated, outcome)
	assert.True(t, ps.Complete)
}

func TestSaturateHonorsStepLimit(t *testing.T) {
	ctrl := Default()
	ctrl.StepLimit = 1
	ps, b, src := newProofState(t, ctrl)
	a := b.App("a")
	pa := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), true)}, clause.DerivationEdge{})
	notPa := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), false)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{pa, notPa})

	outcome := ps.Saturate()
	assert.Equal(t, OutcomeResourceLimit, outcome)
}

func TestSaturateStopsWhenWatchlistDrains(t *testing.T) {
	b := term.NewBank()
	ord := order.NewOrdering()
	src := id.NewSource()
	a := b.App("a")

	watch := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), true)}, clause.DerivationEdge{})
	w := watchlist.New(b, ord, false, false, []*clause.Clause{watch})

	ctrl := Default()
	ps := New(b, ord, src, ctrl, satcheck.DPLLChecker{})
	ps.SetWatchlist(w)

	pa := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), true)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{pa})

	outcome := ps.Saturate()
	assert.Equal(t, OutcomeSaturated, outcome)
	assert.Equal(t, 0, ps.Watchlist.Len(), "the single watch goal should have been subsumed and dropped")
}

func TestProcessClauseCountsGeneratedLiterals(t *testing.T) {
	ps, b, src := newProofState(t, nil)
	a, cst := b.App("a"), b.App("c")
	f := b.App("f", a)
	rule := clause.New(src.Next(), []*clause.Literal{clause.NewEquation(f, cst, true)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{rule})

	target := clause.New(src.Next(), []*clause.Literal{
		clause.NewAtom(b, b.App("g", f), true),
	}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{target})

	for ps.Unprocessed.Len() > 0 {
		if _, refuted := ps.ProcessClause(); refuted {
			break
		}
	}
	assert.Greater(t, ps.Counters.ProcessedCount, 0)
}

func TestCleanupDeleteBadLimitMarksIncomplete(t *testing.T) {
	ctrl := Default()
	ctrl.DeleteBadLimit = 1
	ps, b, src := newProofState(t, ctrl)
	a := b.App("a")
	c1 := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("p", a), true)}, clause.DerivationEdge{})
	c2 := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("q", a), true)}, clause.DerivationEdge{})
	c3 := clause.New(src.Next(), []*clause.Literal{clause.NewAtom(b, b.App("r", a), true)}, clause.DerivationEdge{})
	ps.AddInitialClauses([]*clause.Clause{c1, c2, c3})

	ps.cleanupUnprocessed()
	assert.False(t, ps.Complete)
	assert.Less(t, ps.Unprocessed.Len(), 3)
}
