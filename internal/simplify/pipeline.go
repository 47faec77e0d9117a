// Package simplify implements the forward and backward simplification
// pipelines (§4.B/§4.C): ordered sequences of short-circuiting steps, the
// same shape the teacher's internal/ir/optimizations.go uses for its
// OptimizationPass/OptimizationPipeline, generalized from "rewrite an IR
// program" to "rewrite or discard a clause".
package simplify

import (
	"fmt"

	"saturate/internal/clausestore"
	"saturate/internal/order"
	"saturate/internal/term"

	"saturate/internal/clause"
)

// Outcome is what a simplification step decided to do with the clause it
// was handed.
type Outcome int

const (
	// Continue means the step (possibly) rewrote the clause but it
	// remains a live candidate; the pipeline proceeds to the next step.
	Continue Outcome = iota
	// Discarded means the clause is redundant (subsumed, a tautology) and
	// should be dropped without further processing.
	Discarded
	// Empty means simplification reduced the clause to the empty clause:
	// a refutation has been found.
	Empty
)

func (o Outcome) String() string {
	switch o {
	case Discarded:
		return "discarded"
	case Empty:
		return "empty"
	default:
		return "continue"
	}
}

// Context bundles the shared state every simplification step needs:
// the term bank (to intern rewritten subterms), the ordering (to decide
// which side of an equation a rule rewrites with) and the clause store
// (to look up candidate simplifiers).
type Context struct {
	Bank  *term.Bank
	Order *order.Ordering
	Store *clausestore.Store
}

// Step is a single forward or backward simplification rule.
type Step interface {
	Name() string
	Description() string
	Apply(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome)
}

// Pipeline runs an ordered sequence of Steps, stopping at the first
// non-Continue outcome -- every step either changes the clause or reports
// no change, mirroring OptimizationPipeline.Run's per-pass shape.
type Pipeline struct {
	steps []Step
	Trace func(format string, args ...any)
}

func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

func (p *Pipeline) trace(format string, args ...any) {
	if p.Trace != nil {
		p.Trace(format, args...)
	}
}

// Run applies every step in order, short-circuiting on the first
// Discarded or Empty outcome.
func (p *Pipeline) Run(ctx *Context, c *clause.Clause) (*clause.Clause, Outcome) {
	for _, step := range p.steps {
		next, outcome := step.Apply(ctx, c)
		if outcome != Continue {
			p.trace("  - %s: %s (%s)", step.Name(), step.Description(), outcome)
			return next, outcome
		}
		if next != c {
			p.trace("  - %s: rewrote %s -> %s", step.Name(), fmt.Sprint(c), fmt.Sprint(next))
		}
		c = next
	}
	return c, Continue
}
