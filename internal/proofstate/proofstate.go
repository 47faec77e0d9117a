// Package proofstate implements the given-clause saturation driver (4.E):
// ProofState owns every mutable structure the loop touches (term bank,
// processed store, unprocessed queue, watchlist, counters), ProofControl
// is the heuristic parameter block that steers it, and Saturate/
// ProcessClause implement the loop and state machine spec.md 4.E names
// exactly: Unprocessed -> (simplified away | empty | Processed), Processed
// -> Dead on backward-subsumption/rewrite.
package proofstate

import (
	"container/heap"
	"context"
	"time"

	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/id"
	"saturate/internal/infer"
	"saturate/internal/invariant"
	"saturate/internal/order"
	"saturate/internal/satcheck"
	"saturate/internal/simplify"
	"saturate/internal/term"
	"saturate/internal/watchlist"
)

// Counters mirrors spec.md §6's counter list verbatim. Not every field is
// incremented yet: NonTrivialGeneratedCount and SatCheckCoreSize need a
// notion of "non-trivial" / "unsat core" this engine doesn't compute, so
// they stay at zero rather than being guessed at.
type Counters struct {
	ProcessedCount            int
	ProcNonTrivialCount       int
	GeneratedCount            int
	GeneratedLitCount         int
	BackwardRewrittenCount    int
	BackwardRewrittenLitCount int
	BackwardSubsumedCount     int
	NonTrivialGeneratedCount  int
	OtherRedundantCount       int
	NonRedundantDeleted       int
	ParamodCount              int
	ResolvCount               int
	FactorCount               int
	SatCheckCount             int
	SatCheckSuccess           int
	SatCheckSatisfiable       int
	SatCheckFullSize          int
	SatCheckActualSize        int
	SatCheckCoreSize          int
}

// Outcome is Saturate's verdict (§7): a returned status, never an error --
// the core's contract has no exception mechanism.
type Outcome int

const (
	// OutcomeRunning is never actually returned by Saturate; it exists so
	// ProcessClause's internal plumbing has a "nothing decided yet" zero
	// value distinct from the terminal outcomes below.
	OutcomeRunning Outcome = iota
	// OutcomeRefutation: the empty clause was derived. ExtractRoots holds
	// the witness.
	OutcomeRefutation
	// OutcomeSaturated: unprocessed ran dry (or, with a required
	// watchlist, the watchlist emptied) without deriving the empty clause.
	OutcomeSaturated
	// OutcomeResourceLimit: a configured limit (step/card/time/...) was
	// hit first. Not itself a proof of anything either way.
	OutcomeResourceLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRefutation:
		return "refutation"
	case OutcomeSaturated:
		return "saturated"
	case OutcomeResourceLimit:
		return "resource-limit"
	default:
		return "running"
	}
}

// ProofState is the engine's entire mutable world for one proof attempt:
// term bank, signature-free (the grammar/termbuild layer owns parsing),
// processed store, unprocessed queue, optional watchlist, optional SAT
// checker, and every counter/flag the loop updates.
type ProofState struct {
	Bank  *term.Bank
	Order *order.Ordering
	Src   *id.Source

	Store       *clausestore.Store
	Unprocessed *unprocessedQueue
	Watchlist   *watchlist.Watchlist
	SatChecker  satcheck.Checker

	Control *ProofControl

	Forward *simplify.Pipeline

	Archive      []*clause.Clause
	ExtractRoots []*clause.Clause

	Counters   Counters
	ACDetected bool
	Complete   bool

	// deadIDs accumulates every clause ID ever marked Dead this run, so
	// cleanupUnprocessed's orphan filter can tell whether an unprocessed
	// clause's derivation depends on a parent that no longer exists --
	// parents are recorded by id.ClauseID, not pointer, so this is the
	// only way to ask "is that parent still alive".
	deadIDs map[id.ClauseID]bool

	startTime time.Time
}

// New builds a fresh ProofState. The processed store starts empty --
// spec.md §7 treats a non-empty processed set at init as a fatal
// assertion, since the loop's entire soundness argument assumes every
// processed clause passed through ProcessClause at least once.
func New(bank *term.Bank, ord *order.Ordering, src *id.Source, ctrl *ProofControl, checker satcheck.Checker) *ProofState {
	store := clausestore.NewStore(bank, ord)
	invariant.Assert(store.Len() == 0, "processed set must be empty at ProofState init")
	return &ProofState{
		Bank:        bank,
		Order:       ord,
		Src:         src,
		Store:       store,
		Unprocessed: newQueue(ctrl),
		SatChecker:  checker,
		Control:     ctrl,
		Forward:     simplify.NewForwardPipeline(),
		Complete:    true,
		deadIDs:     make(map[id.ClauseID]bool),
	}
}

// AddInitialClauses seeds the unprocessed queue with the original problem
// clauses, flagged Initial so prefer_initial_clauses can favor them.
func (ps *ProofState) AddInitialClauses(clauses []*clause.Clause) {
	for _, c := range clauses {
		c.Flags = c.Flags.Set(clause.Initial)
		ps.Unprocessed.PushClause(c)
	}
}

// SetWatchlist installs a watchlist and marks it required for Saturate's
// loop condition ("if a watchlist was required, watchlist non-empty").
func (ps *ProofState) SetWatchlist(w *watchlist.Watchlist) {
	ps.Watchlist = w
	ps.Control.RequireWatchlist = true
	ps.Store.RegisterCapability(watchlistCapability{w})
}

// watchlistCapability is the extension-point Capability spec.md §9's
// "index coherence" note calls for: it hands each newly processed oriented
// positive unit to the watchlist, which rewrites its watch clauses with it
// (4.F), without clausestore importing internal/watchlist.
type watchlistCapability struct{ w *watchlist.Watchlist }

func (watchlistCapability) Name() string { return "watchlist" }

func (watchlistCapability) Predicate(c *clause.Clause) bool {
	return c.IsPositiveUnit() && c.Flags.Has(clause.Oriented)
}

func (wc watchlistCapability) Track(c *clause.Clause) { wc.w.Rewrite(c) }

func (watchlistCapability) Untrack(c *clause.Clause) {}

func (ps *ProofState) simplifyCtx() *simplify.Context {
	return &simplify.Context{Bank: ps.Bank, Order: ps.Order, Store: ps.Store}
}

// Saturate runs the given-clause loop until a resource limit trips, the
// unprocessed set (and, if required, the watchlist) runs dry, or a
// refutation is found.
func (ps *ProofState) Saturate() Outcome {
	ps.startTime = time.Now()
	for {
		if ps.timeIsUp() {
			return OutcomeResourceLimit
		}
		if ps.Unprocessed.Len() == 0 {
			return OutcomeSaturated
		}
		if ps.overResourceLimits() {
			return OutcomeResourceLimit
		}
		if ps.Control.RequireWatchlist && ps.Watchlist != nil && ps.Watchlist.Len() == 0 {
			return OutcomeSaturated
		}

		if _, refuted := ps.ProcessClause(); refuted {
			return OutcomeRefutation
		}

		ps.cleanupUnprocessed()

		if ps.shouldSATCheck() {
			if _, refuted := ps.runSATCheck(context.Background()); refuted {
				return OutcomeRefutation
			}
		}
	}
}

// ProcessClause implements one iteration's clause-processing half (4.E
// item 1): select, forward-simplify, watch-check, backward-simplify,
// index-insert, generate, insert-new-clauses. Returns the empty clause and
// true the moment one is observed anywhere in that pipeline.
func (ps *ProofState) ProcessClause() (*clause.Clause, bool) {
	given, ok := ps.Unprocessed.PopClause()
	if !ok {
		return nil, false
	}
	if ps.Control.RecordProof {
		ps.Archive = append(ps.Archive, given)
	}

	ctx := ps.simplifyCtx()
	result, outcome := ps.Forward.Run(ctx, given)
	ps.Counters.ProcessedCount++
	switch outcome {
	case simplify.Discarded:
		ps.Counters.OtherRedundantCount++
		return nil, false
	case simplify.Empty:
		ps.ExtractRoots = append(ps.ExtractRoots, result)
		return result, true
	}
	given = result
	ps.Counters.ProcNonTrivialCount++

	if ps.Watchlist != nil {
		ps.Watchlist.Check(given)
	}

	// A clause with CreationDate d is only reducible by demodulators with
	// date <= d under LimitedRW (§5/§8 invariant 6): every processed
	// clause carries that cap from the moment it is indexed.
	given.Flags = given.Flags.Set(clause.LimitedRW)

	backward := simplify.Backward{}
	victims := backward.EliminateBackwardSubsumed(ctx, given)
	ps.Counters.BackwardSubsumedCount += len(victims)

	rewritten := backward.EliminateBackwardRewritten(ctx, ps.Src, given)
	ps.Counters.BackwardRewrittenCount += len(rewritten)
	for _, r := range rewritten {
		ps.Counters.BackwardRewrittenLitCount += len(r.Literals)
	}
	victims = append(victims, rewritten...)

	if ps.Control.BackwardContextSR {
		victims = append(victims, backward.EliminateBackwardContextualSR(ctx, ps.Src, given)...)
	}

	dead := map[id.ClauseID]bool{}
	for _, v := range victims {
		if v.Flags.Has(clause.Dead) {
			dead[v.ID] = true
			ps.deadIDs[v.ID] = true
		}
	}
	if len(dead) > 0 {
		orphans := backward.EliminateOrphans(ctx, dead)
		for _, o := range orphans {
			if o.Flags.Has(clause.Dead) {
				ps.deadIDs[o.ID] = true
			}
		}
		victims = append(victims, orphans...)
	}

	for _, v := range victims {
		if v.Flags.Has(clause.Dead) {
			continue // genuinely retired: subsumed, or an orphan's dead parent
		}
		if v.IsEmpty() {
			ps.ExtractRoots = append(ps.ExtractRoots, v)
			return v, true
		}
		ps.Unprocessed.PushClause(v)
	}

	ps.Store.Insert(given)

	genCtx := infer.NewContext(ps.Bank, ps.Order, ps.Store)
	opts := infer.Options{
		SchemaExpansion:   true,
		EqualityFactoring: ps.Control.EnableEqFactoring,
		NegUnitParamod:    ps.Control.EnableNegUnitParamod,
	}
	generated := infer.GenerateAll(genCtx, ps.Src, given, opts)
	ps.Counters.GeneratedCount += len(generated)
	for _, g := range generated {
		ps.Counters.GeneratedLitCount += len(g.Literals)
		switch g.Derivation.Rule {
		case clause.DerivParamodulation:
			ps.Counters.ParamodCount++
		case clause.DerivEqualityResolution:
			ps.Counters.ResolvCount++
		case clause.DerivEqualityFactoring:
			ps.Counters.FactorCount++
		}
	}

	return ps.insertNewClauses(ctx, generated)
}

// insertNewClauses runs every freshly generated clause through forward
// simplification, the watchlist check, and (if enabled) controlled
// splitting before it enters unprocessed -- spec.md 4.E's "rewrite, watch,
// split, ER, select, evaluate" step. ER and weight evaluation are already
// folded into the forward pipeline and the queue's weight function
// respectively, so they need no separate pass here.
func (ps *ProofState) insertNewClauses(ctx *simplify.Context, clauses []*clause.Clause) (*clause.Clause, bool) {
	for _, c := range clauses {
		result, outcome := ps.Forward.Run(ctx, c)
		switch outcome {
		case simplify.Discarded:
			ps.Counters.OtherRedundantCount++
			continue
		case simplify.Empty:
			ps.ExtractRoots = append(ps.ExtractRoots, result)
			return result, true
		}
		if ps.Watchlist != nil {
			ps.Watchlist.Check(result)
		}
		if ps.Control.SplitClauses {
			if parts, ok := simplify.ControlledSplit(ps.Src, ps.Order, result); ok {
				for _, p := range parts {
					ps.Unprocessed.PushClause(p)
				}
				continue
			}
		}
		ps.Unprocessed.PushClause(result)
	}
	return nil, false
}

// cleanupUnprocessed implements cleanup_unprocessed_clauses (4.E item 2):
// bounded maintenance over the unprocessed queue, never the processed set.
func (ps *ProofState) cleanupUnprocessed() {
	if ps.Control.FilterOrphansLimit > 0 && ps.Unprocessed.Len() > ps.Control.FilterOrphansLimit {
		ps.filterOrphans()
	}
	if ps.Control.ForwardContractLimit > 0 && ps.Unprocessed.Len() > ps.Control.ForwardContractLimit {
		ps.forwardContractSweep()
	}
	if ps.Control.DeleteBadLimit > 0 && ps.Unprocessed.Len() > ps.Control.DeleteBadLimit {
		dropped := ps.Unprocessed.KeepBestHalf()
		ps.Counters.NonRedundantDeleted += dropped
		ps.Complete = false // HCBClauseSetDeleteBadClauses truncation: state_is_complete becomes false
	}
}

// filterOrphans drops any unprocessed clause whose derivation depends on
// a clause this run has already retired (Dead), the same notion
// EliminateOrphans applies to the processed set.
func (ps *ProofState) filterOrphans() {
	dropped := ps.Unprocessed.Filter(func(c *clause.Clause) bool {
		for _, p := range c.Derivation.Parents {
			if ps.deadIDs[p] {
				return false
			}
		}
		return true
	})
	ps.Counters.OtherRedundantCount += dropped
}

// forwardContractSweep re-runs forward simplification for every queued
// clause against the current processed set, dropping anything that has
// since become redundant (e.g. a demodulator installed after the clause
// was generated now rewrites it to a tautology).
func (ps *ProofState) forwardContractSweep() {
	ctx := ps.simplifyCtx()
	survivors := make([]*clause.Clause, 0, ps.Unprocessed.Len())
	for _, c := range ps.Unprocessed.All() {
		result, outcome := ps.Forward.Run(ctx, c)
		if outcome == simplify.Discarded {
			ps.Counters.OtherRedundantCount++
			continue
		}
		if outcome == simplify.Empty {
			ps.ExtractRoots = append(ps.ExtractRoots, result)
			// Let the next ProcessClause/Saturate iteration pick this up
			// rather than short-circuit out of a maintenance sweep; keep
			// it queued ahead of everything else.
			survivors = append([]*clause.Clause{result}, survivors...)
			continue
		}
		survivors = append(survivors, result)
	}
	ps.Unprocessed.items = survivors
	heap.Init(ps.Unprocessed)
}

func (ps *ProofState) shouldSATCheck() bool {
	c := ps.Control
	n := ps.Store.Len()
	if c.SatCheckCardinality > 0 && n > 0 && n%c.SatCheckCardinality == 0 {
		return true
	}
	if c.SatCheckProcessedStep > 0 && ps.Counters.ProcessedCount > 0 && ps.Counters.ProcessedCount%c.SatCheckProcessedStep == 0 {
		return true
	}
	if c.SatCheckTermInsertions > 0 && ps.Bank.Size() > 0 && ps.Bank.Size()%c.SatCheckTermInsertions == 0 {
		return true
	}
	return false
}

// runSATCheck implements the SATCheck step (4.E item 3): pseudo-ground
// instantiate the processed set and ask the configured Checker. Per §7,
// PRUnsatisfiable yields an empty-clause witness; PRSatisfiable just
// increments a counter and saturation continues; a Checker error also
// just continues (treated as Unknown), never aborts the loop.
func (ps *ProofState) runSATCheck(ctx context.Context) (*clause.Clause, bool) {
	if ps.SatChecker == nil {
		return nil, false
	}
	processed := ps.Store.AllProcessed()
	ground := groundInstantiate(processed)
	ps.Counters.SatCheckCount++
	ps.Counters.SatCheckFullSize += len(ground)
	ps.Counters.SatCheckActualSize += len(processed)

	result, err := ps.SatChecker.Check(ctx, ground)
	if err != nil {
		return nil, false
	}
	switch result {
	case satcheck.Satisfiable:
		ps.Counters.SatCheckSatisfiable++
		return nil, false
	case satcheck.Unsatisfiable:
		ps.Counters.SatCheckSuccess++
		witness := clause.New(ps.Src.Next(), nil, clause.DerivationEdge{Rule: clause.DerivSubsumed})
		ps.ExtractRoots = append(ps.ExtractRoots, witness)
		return witness, true
	default:
		return nil, false
	}
}

func (ps *ProofState) overResourceLimits() bool {
	c := ps.Control
	switch {
	case c.StepLimit > 0 && ps.Counters.ProcessedCount >= c.StepLimit:
		return true
	case c.ProcessedLimit > 0 && ps.Store.Len() >= c.ProcessedLimit:
		return true
	case c.UnprocessedLimit > 0 && ps.Unprocessed.Len() >= c.UnprocessedLimit:
		return true
	case c.TotalLimit > 0 && ps.Store.Len()+ps.Unprocessed.Len() >= c.TotalLimit:
		return true
	case c.GeneratedLimit > 0 && ps.Counters.GeneratedCount >= c.GeneratedLimit:
		return true
	case c.TermInsertLimit > 0 && ps.Bank.Size() >= c.TermInsertLimit:
		return true
	default:
		return false
	}
}

func (ps *ProofState) timeIsUp() bool {
	if ps.Control.TimeLimit <= 0 {
		return false
	}
	return time.Since(ps.startTime) >= ps.Control.TimeLimit
}
