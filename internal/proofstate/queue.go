package proofstate

import (
	"container/heap"
	"sort"

	"saturate/internal/clause"
)

// weightFunc scores a clause for selection priority: lower wins. Grounded
// on clause.Weight/term.Weight's existing symbol-counting weight (§6
// "weight-function... definition strings" surface) plus a plain FIFO
// (creation order) alternative named by selection_strategy.
type weightFunc func(c *clause.Clause) int

func symbolWeight(c *clause.Clause) int { return c.Weight() }

func fifoWeight(c *clause.Clause) int { return int(c.ID.CreationDate) }

func pickWeightFunc(ctrl *ProofControl) weightFunc {
	if ctrl.SelectionStrategy == "fifo" {
		return fifoWeight
	}
	return symbolWeight
}

// unprocessedQueue is tmp_store/unprocessed: a container/heap priority
// queue (no ecosystem priority-queue library appeared anywhere in the
// retrieved pack, so this is the idiomatic standard-library choice) over
// clauses, ordered first by prefer_initial_clauses (process original-
// problem clauses ahead of derived ones), then by weight, then (when
// prefer_general is set) by how many distinct variables a clause has --
// a more general clause subsumes more ground instances, so heuristically
// processing it first tends to pay off sooner -- and finally by
// CreationDate as a deterministic tie-break.
type unprocessedQueue struct {
	items         []*clause.Clause
	weight        weightFunc
	preferInitial bool
	preferGeneral bool
}

func newQueue(ctrl *ProofControl) *unprocessedQueue {
	q := &unprocessedQueue{
		weight:        pickWeightFunc(ctrl),
		preferInitial: ctrl.PreferInitialClauses,
		preferGeneral: ctrl.PreferGeneral,
	}
	heap.Init(q)
	return q
}

func (q *unprocessedQueue) Len() int { return len(q.items) }

func (q *unprocessedQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if q.preferInitial {
		ai, bi := a.Flags.Has(clause.Initial), b.Flags.Has(clause.Initial)
		if ai != bi {
			return ai
		}
	}
	wa, wb := q.weight(a), q.weight(b)
	if wa != wb {
		return wa < wb
	}
	if q.preferGeneral {
		ga, gb := len(a.DistinctVars()), len(b.DistinctVars())
		if ga != gb {
			return ga > gb
		}
	}
	return a.ID.Less(b.ID)
}

func (q *unprocessedQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *unprocessedQueue) Push(x any) { q.items = append(q.items, x.(*clause.Clause)) }

func (q *unprocessedQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return item
}

// PushClause adds c to the queue, keeping the heap invariant.
func (q *unprocessedQueue) PushClause(c *clause.Clause) {
	heap.Push(q, c)
}

// PopClause removes and returns the best clause, or (nil, false) on an
// empty queue -- selection on empty unprocessed returns without mutation.
func (q *unprocessedQueue) PopClause() (*clause.Clause, bool) {
	if q.Len() == 0 {
		return nil, false
	}
	return heap.Pop(q).(*clause.Clause), true
}

// All returns every queued clause, heap order (not sorted).
func (q *unprocessedQueue) All() []*clause.Clause {
	out := make([]*clause.Clause, len(q.items))
	copy(out, q.items)
	return out
}

// Filter keeps only clauses keep reports true for, rebuilding the heap.
func (q *unprocessedQueue) Filter(keep func(*clause.Clause) bool) int {
	var kept []*clause.Clause
	removed := 0
	for _, c := range q.items {
		if keep(c) {
			kept = append(kept, c)
		} else {
			removed++
		}
	}
	q.items = kept
	heap.Init(q)
	return removed
}

// KeepBestHalf sorts by weight and discards the worse (higher-weight)
// half, implementing HCBClauseSetDeleteBadClauses's "drop the worst half"
// contract. Reports how many clauses were dropped.
func (q *unprocessedQueue) KeepBestHalf() int {
	sort.Slice(q.items, func(i, j int) bool { return q.Less(i, j) })
	keep := (len(q.items) + 1) / 2
	dropped := len(q.items) - keep
	q.items = q.items[:keep]
	heap.Init(q)
	return dropped
}
