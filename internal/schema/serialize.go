package schema

import (
	"saturate/grammar"
	"saturate/internal/clause"
	"saturate/internal/term"
)

// Serialize prints a clause to the 4.H concrete syntax, built directly
// from the clause's term graph (never a disk round-trip): the schema
// expander only ever needs the text to re-parse it back via
// grammar.ParseString, so constructing a grammar.BareClause in memory and
// calling its String() is the whole of "serialization" here.
func Serialize(c *clause.Clause) string {
	lits := make([]*grammar.Literal, len(c.Literals))
	for i, l := range c.Literals {
		lits[i] = literalToGrammar(l)
	}
	bc := &grammar.BareClause{Literals: lits}
	return bc.String()
}

func literalToGrammar(l *clause.Literal) *grammar.Literal {
	if isTrueConstant(l.Right) {
		return &grammar.Literal{Negated: !l.Positive, Left: termToGrammar(l.Left)}
	}
	op := "="
	if !l.Positive {
		op = "!="
	}
	return &grammar.Literal{Left: termToGrammar(l.Left), Op: &op, Right: termToGrammar(l.Right)}
}

func isTrueConstant(t *term.Term) bool {
	return t.IsApp() && t.Functor == clause.TrueConstant && len(t.Args) == 0
}

func termToGrammar(t *term.Term) *grammar.Term {
	if t.IsVar() {
		return &grammar.Term{Var: &grammar.VarName{Value: t.VarName}}
	}
	args := make([]*grammar.Term, len(t.Args))
	for i, a := range t.Args {
		args[i] = termToGrammar(a)
	}
	return &grammar.Term{Func: &grammar.FuncTerm{Name: grammar.PosIdent{Value: t.Functor}, Args: args}}
}
