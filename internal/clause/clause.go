package clause

import (
	"strings"

	"saturate/internal/id"
	"saturate/internal/term"
)

// DerivationKind names the inference or simplification rule that produced
// a clause, recorded on its DerivationEdge for proof reconstruction.
type DerivationKind string

const (
	DerivInitial             DerivationKind = "initial"
	DerivParamodulation      DerivationKind = "paramodulation"
	DerivEqualityFactoring   DerivationKind = "eq_factoring"
	DerivEqualityResolution  DerivationKind = "eq_resolution"
	DerivRewritten           DerivationKind = "rewritten"
	DerivSubsumed            DerivationKind = "subsumed"
	DerivCondensed           DerivationKind = "condensed"
	DerivSplit               DerivationKind = "split"
	DerivSchemaInstantiation DerivationKind = "schema_instantiation"
)

// DerivationEdge records how a clause was produced: which rule, and from
// which parent clauses (possibly zero, for initial clauses; possibly one,
// for unary simplifications; possibly two, for binary inferences).
type DerivationEdge struct {
	Rule    DerivationKind
	Parents []id.ClauseID
}

// Clause is a disjunction of Literals plus the bookkeeping the proof
// procedure needs: identity, status flags, and a derivation edge anchoring
// it into the proof DAG.
type Clause struct {
	ID         id.ClauseID
	Literals   []*Literal
	Flags      Flags
	Derivation DerivationEdge
}

func New(clauseID id.ClauseID, literals []*Literal, derivation DerivationEdge) *Clause {
	return &Clause{ID: clauseID, Literals: literals, Derivation: derivation}
}

func (c *Clause) IsEmpty() bool { return len(c.Literals) == 0 }
func (c *Clause) IsUnit() bool  { return len(c.Literals) == 1 }

// IsGround reports whether every literal in the clause is ground.
func (c *Clause) IsGround() bool {
	for _, l := range c.Literals {
		if !l.IsGround() {
			return false
		}
	}
	return true
}

// IsPositiveUnit reports whether the clause is a single positive literal,
// the shape eligible to become a demodulation rule.
func (c *Clause) IsPositiveUnit() bool {
	return c.IsUnit() && c.Literals[0].Positive
}

// IsNegativeUnit reports whether the clause is a single negative literal.
func (c *Clause) IsNegativeUnit() bool {
	return c.IsUnit() && !c.Literals[0].Positive
}

// Weight sums the weight of every literal, the quantity the selection
// heuristic's weight function orders the unprocessed queue by.
func (c *Clause) Weight() int {
	w := 0
	for _, l := range c.Literals {
		w += l.Weight()
	}
	return w
}

// Vars returns every variable occurrence (with repeats) across the clause,
// walking the literal/term graph directly.
func (c *Clause) Vars() []*term.Term {
	var vars []*term.Term
	for _, l := range c.Literals {
		vars = l.Vars(vars)
	}
	return vars
}

// DistinctVars returns the clause's distinct variables (by bank identity),
// in first-occurrence order.
func (c *Clause) DistinctVars() []*term.Term {
	seen := make(map[*term.Term]bool)
	var out []*term.Term
	for _, v := range c.Vars() {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func (c *Clause) String() string {
	if c.IsEmpty() {
		return "$false"
	}
	parts := make([]string, len(c.Literals))
	for i, l := range c.Literals {
		parts[i] = l.String()
	}
	return strings.Join(parts, " | ")
}

// WithLiterals returns a shallow copy of c with new literals and flags
// cleared of Processed/Oriented/GlobalIndexed, the usual shape a
// simplification step wants: same identity-adjacent bookkeeping, a fresh
// set of literals, and status flags that need to be recomputed against the
// new content.
func (c *Clause) WithLiterals(newID id.ClauseID, literals []*Literal, rule DerivationKind) *Clause {
	return &Clause{
		ID:       newID,
		Literals: literals,
		Flags:    c.Flags &^ (Processed | Oriented | GlobalIndexed),
		Derivation: DerivationEdge{
			Rule:    rule,
			Parents: []id.ClauseID{c.ID},
		},
	}
}
