package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// PosIdent is a symbol occurrence: a function, predicate or constant name.
// Kept as its own node (mirroring the teacher's PosIdent) so callers can
// report a precise position for "unknown symbol" diagnostics.
type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident | @DollarIdent`
}

// VarName is a variable occurrence. Variables are lexically distinguished
// from symbols by leading case, so the grammar needs a separate node even
// though it carries the same shape as PosIdent.
type VarName struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Var`
}

// Term is either a variable or a (possibly 0-ary) function application.
// A 0-ary FuncTerm is a constant.
type Term struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Var    *VarName  `  @@`
	Func   *FuncTerm `| @@`
}

type FuncTerm struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Tokens []lexer.Token
	Name   PosIdent `@@`
	Args   []*Term  `[ "(" @@ { "," @@ } ")" ]`
}

// Literal is a single equational literal: an optionally negated term, or an
// optionally negated equation/disequation between two terms. Non-equational
// atoms (p(a)) are terms on their own; the lowering step desugars them into
// p(a) = $true, matching the engine's uniform equational representation.
type Literal struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Tokens  []lexer.Token
	Negated bool    `[ @"~" ]`
	Left    *Term   `@@`
	Op      *string `[ @("=" | "!=")`
	Right   *Term   `  @@ ]`
}

// BareClause is the terse concrete syntax: a disjunction of literals
// terminated by a full stop, with no TPTP name/role wrapper.
type BareClause struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Tokens   []lexer.Token
	Literals []*Literal `@@ { "|" @@ } "."`
}

// NamedClause is the TPTP-flavoured cnf(name, role, (lits)). wrapper, for
// clause files that want named, logged provenance.
type NamedClause struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Tokens   []lexer.Token
	Name     PosIdent   `"cnf" "(" @@ ","`
	Role     PosIdent   `@@ "," "("`
	Literals []*Literal `@@ { "|" @@ } ")" ")" "."`
}

// Formula is the FOF fragment needed to state and re-parse schema axiom
// instances: quantifiers, the usual connectives, and equational literals at
// the leaves. Precedence, loosest to tightest: <=>, =>, |, &, ~/quantifier.
type Formula struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Tokens []lexer.Token
	Left   *ImplFormula `@@`
	Iff    *Formula     `[ "<=>" @@ ]`
}

type ImplFormula struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Tokens  []lexer.Token
	Left    *OrFormula   `@@`
	Implies *ImplFormula `[ "=>" @@ ]`
}

type OrFormula struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Tokens   []lexer.Token
	Operands []*AndFormula `@@ { "|" @@ }`
}

type AndFormula struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Tokens   []lexer.Token
	Operands []*UnaryFormula `@@ { "&" @@ }`
}

// UnaryFormula is the tightest-binding layer: an optionally negated atom,
// parenthesized subformula, or quantifier prefix.
type UnaryFormula struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Tokens  []lexer.Token
	Negated bool               `[ @"~" ]`
	Quant   *QuantifiedFormula `(   @@`
	Paren   *Formula           `  | "(" @@ ")"`
	Atom    *Literal           `  | @@ )`
}

type QuantifiedFormula struct {
	Pos         lexer.Position
	EndPos      lexer.Position
	Tokens      []lexer.Token
	Universal   bool       `( @"!"`
	Existential bool       `| @"?" )`
	Vars        []*VarName `"[" @@ { "," @@ } "]" ":"`
	Body        *UnaryFormula `@@`
}

// NamedFormula is the TPTP fof(name, role, formula). wrapper used for
// schema axiom instances.
type NamedFormula struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Tokens  []lexer.Token
	Name    PosIdent `"fof" "(" @@ ","`
	Role    PosIdent `@@ ","`
	Formula *Formula `@@ ")" "."`
}

// Entry is one top-level statement in a clause/formula source: either of
// the two TPTP-style wrappers or a bare clause.
type Entry struct {
	Pos          lexer.Position
	EndPos       lexer.Position
	Tokens       []lexer.Token
	NamedClause  *NamedClause  `  @@`
	NamedFormula *NamedFormula `| @@`
	Bare         *BareClause   `| @@`
}

// File is a full source: zero or more entries, each ending in ".".
type File struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Tokens  []lexer.Token
	Entries []*Entry `@@*`
}
