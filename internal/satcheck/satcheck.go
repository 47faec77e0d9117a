// Package satcheck defines the external ground/pseudo-ground
// satisfiability collaborator spec.md 4.E's SATCheck cadence calls into,
// plus a small in-process DPLL checker that satisfies the contract without
// requiring a real external SAT binary. Grounded on the propositional
// Literal/Clause shape the retrieved SAT reference material (other_examples)
// uses -- a bare Variable string plus a Negated bool -- reimplemented here
// from scratch for the solver itself (unit propagation by rescanning the
// clause set, no watched literals, plus naive chronological backtracking),
// since those files are reference
// material, not a library to import.
package satcheck

import (
	"context"

	"github.com/pkg/errors"
)

// GroundLiteral is one propositional literal: Atom names a ground atom
// (e.g. the printed form of a fully-instantiated predicate application),
// Positive is false for its negation.
type GroundLiteral struct {
	Atom     string
	Positive bool
}

func (l GroundLiteral) Negate() GroundLiteral {
	return GroundLiteral{Atom: l.Atom, Positive: !l.Positive}
}

// GroundClause is a disjunction of GroundLiterals -- the pseudo-ground
// instantiation proofstate.SATCheck builds from the processed set before
// handing it to a Checker.
type GroundClause struct {
	Literals []GroundLiteral
}

func (c GroundClause) IsEmpty() bool { return len(c.Literals) == 0 }
func (c GroundClause) IsUnit() bool  { return len(c.Literals) == 1 }

// Result is the three-way verdict spec.md 4.E/7 names: PRUnsatisfiable
// yields an empty-clause witness upstream, PRSatisfiable just increments a
// counter and saturation continues, Unknown (solver gave up, or errored)
// also just continues.
type Result int

const (
	Unknown Result = iota
	Satisfiable
	Unsatisfiable
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	default:
		return "unknown"
	}
}

// Checker is the collaborator interface proofstate.Saturate depends on --
// never a concrete solver, so swapping in a process-exec-based external
// checker never touches the saturation loop.
type Checker interface {
	Check(ctx context.Context, clauses []GroundClause) (Result, error)
}

// DPLLChecker is an in-process Checker: unit propagation plus naive
// chronological backtracking over the atoms that appear in the given
// clause set. Good enough to answer spec.md's SATCheck contract; not
// tuned (no clause learning, no VSIDS) since it only ever needs to ground-
// check the processed set at a cadence, not replace a real solver.
type DPLLChecker struct{}

type assignment map[string]bool

// Check reports Unsatisfiable only when it can prove it by exhaustive
// search; a context cancellation or any other abort path reports Unknown
// with a wrapped error rather than a false verdict.
func (DPLLChecker) Check(ctx context.Context, clauses []GroundClause) (Result, error) {
	for _, c := range clauses {
		if c.IsEmpty() {
			return Unsatisfiable, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return Unknown, errors.Wrap(err, "satcheck: context cancelled before search")
	}
	sat, ok := dpll(ctx, clauses, assignment{})
	if !ok {
		return Unknown, errors.Wrap(ctx.Err(), "satcheck: search aborted")
	}
	if sat {
		return Satisfiable, nil
	}
	return Unsatisfiable, nil
}

// dpll returns (satisfiable, completed). completed is false only when ctx
// was cancelled mid-search.
func dpll(ctx context.Context, clauses []GroundClause, assign assignment) (bool, bool) {
	if err := ctx.Err(); err != nil {
		return false, false
	}
	clauses, assign, conflict := unitPropagate(clauses, assign)
	if conflict {
		return false, true
	}
	var unassigned string
	found := false
	for _, c := range clauses {
		for _, l := range c.Literals {
			if _, ok := assign[l.Atom]; !ok {
				unassigned = l.Atom
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return true, true
	}

	for _, guess := range []bool{true, false} {
		next := cloneAssign(assign)
		next[unassigned] = guess
		sat, completed := dpll(ctx, clauses, next)
		if !completed {
			return false, false
		}
		if sat {
			return true, true
		}
	}
	return false, true
}

// unitPropagate repeatedly satisfies unit clauses under assign, simplifying
// the clause set as it goes, until either a conflict (an emptied clause)
// or a fixpoint is reached.
func unitPropagate(clauses []GroundClause, assign assignment) ([]GroundClause, assignment, bool) {
	assign = cloneAssign(assign)
	for {
		simplified, progressed, conflict := simplify(clauses, assign)
		if conflict {
			return nil, assign, true
		}
		clauses = simplified
		unit, ok := findUnit(clauses)
		if !ok {
			return clauses, assign, false
		}
		assign[unit.Atom] = unit.Positive
		_ = progressed
	}
}

func findUnit(clauses []GroundClause) (GroundLiteral, bool) {
	for _, c := range clauses {
		if c.IsUnit() {
			return c.Literals[0], true
		}
	}
	return GroundLiteral{}, false
}

// simplify drops every clause satisfied under assign and removes every
// falsified literal from the rest, reporting a conflict if any clause is
// driven empty.
func simplify(clauses []GroundClause, assign assignment) ([]GroundClause, bool, bool) {
	var out []GroundClause
	progressed := false
	for _, c := range clauses {
		satisfied := false
		var kept []GroundLiteral
		for _, l := range c.Literals {
			v, ok := assign[l.Atom]
			if !ok {
				kept = append(kept, l)
				continue
			}
			if v == l.Positive {
				satisfied = true
				break
			}
			progressed = true
		}
		if satisfied {
			progressed = true
			continue
		}
		if len(kept) == 0 {
			return nil, progressed, true
		}
		out = append(out, GroundClause{Literals: kept})
	}
	return out, progressed, false
}

func cloneAssign(a assignment) assignment {
	out := make(assignment, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
