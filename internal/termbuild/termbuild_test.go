package termbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturate/grammar"
	"saturate/internal/clause"
	"saturate/internal/id"
	"saturate/internal/term"
)

func parse(t *testing.T, src string) *grammar.File {
	t.Helper()
	f, err := grammar.ParseString(src)
	require.NoError(t, err)
	return f
}

func TestLowerBareClauseSharesVariableAcrossLiterals(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, "p(X) | q(X).")

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 1)
	require.Len(t, clauses[0].Literals, 2)
	assert.Equal(t, clause.DerivInitial, clauses[0].Derivation.Rule)
	// Same surface variable within one entry must intern to one term.
	assert.Same(t, clauses[0].Literals[0].Left.Args[0], clauses[0].Literals[1].Left.Args[0])
}

func TestLowerTwoEntriesDoNotShareVariables(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, "p(X).\nq(X).")

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 2)
	x1 := clauses[0].Literals[0].Left.Args[0]
	x2 := clauses[1].Literals[0].Left.Args[0]
	assert.NotSame(t, x1, x2, "variables in separate entries must be independently scoped")
}

func TestLowerNamedClauseEquation(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, `cnf(c1, axiom, f(a) = b).`)

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 1)
	lit := clauses[0].Literals[0]
	assert.True(t, lit.Positive)
	assert.True(t, lit.IsEquational())
	assert.Equal(t, "f", lit.Left.Functor)
	assert.Equal(t, "b", lit.Right.Functor)
}

func TestLowerLiteralDisequationAndNegation(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, "a != b.\n~ p(a).")

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 2)
	assert.False(t, clauses[0].Literals[0].Positive)
	assert.False(t, clauses[1].Literals[0].Positive)
}

func TestLowerNegatedEquationDoubleFlipsToPositive(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, "~ a != b.")

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 1)
	assert.True(t, clauses[0].Literals[0].Positive, "~ (a != b) is a = b")
}

func TestLowerNamedFormulaRunsCNFPipeline(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, `fof(ax1, axiom, ![X]: (p(X) => q(X))).`)

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 1)
	require.Len(t, clauses[0].Literals, 2)
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
	assert.Equal(t, clause.DerivInitial, clauses[0].Derivation.Rule)
}

func TestLowerFormulaExistentialSkolemizes(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, `fof(ax2, axiom, ?[X]: p(X)).`)

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 1)
	// The witness is a Skolem constant, not a bank variable.
	assert.NotEqual(t, term.KindVar, clauses[0].Literals[0].Left.Args[0].Kind)
}

func TestLowerQuantifierBindsAllListedVars(t *testing.T) {
	b := term.NewBank()
	src := id.NewSource()
	file := parse(t, `fof(ax3, axiom, ![X, Y]: (p(X) | p(Y))).`)

	clauses := Lower(b, src, file)
	require.Len(t, clauses, 1)
	require.Len(t, clauses[0].Literals, 2)
	assert.NotSame(t, clauses[0].Literals[0].Left.Args[0], clauses[0].Literals[1].Left.Args[0])
}
