package term

import (
	"fmt"
	"strconv"
)

// DefaultGCLimit is TMPBANK_GC_LIMIT: the bank size (live node count) past
// which Bank.MaybeGC actually sweeps. Below the limit GC is a no-op, so
// short runs never pay the sweep cost.
const DefaultGCLimit = 50000

// Bank is the single hash-consing store for a proof attempt's term graph.
// Not safe for concurrent use -- the term bank is mutated only by the main
// saturation loop, per the engine's single-threaded concurrency model.
type Bank struct {
	table     map[string]*Term
	nextID    uint64
	varSeq    uint64
	gcLimit   int
	gcGen     uint64
	sinceLast int
}

func NewBank() *Bank {
	return &Bank{
		table:   make(map[string]*Term),
		gcLimit: DefaultGCLimit,
	}
}

// SetGCLimit overrides DefaultGCLimit, mainly for tests that want to force
// a sweep without allocating 50000 terms.
func (b *Bank) SetGCLimit(n int) { b.gcLimit = n }

func (b *Bank) Size() int { return len(b.table) }

// Var interns a variable by name. Two calls with the same name return the
// same pointer.
func (b *Bank) Var(name string) *Term {
	key := "v:" + name
	if existing, ok := b.table[key]; ok {
		existing.refCount++
		return existing
	}
	t := &Term{Kind: KindVar, VarName: name, id: b.nextID, refCount: 1}
	b.nextID++
	b.table[key] = t
	return t
}

// FreshVariable always mints a brand-new variable name never returned
// before by this bank -- the "second source variant" from the open
// questions: never a stub, never reused.
func (b *Bank) FreshVariable() *Term {
	for {
		name := "X" + strconv.FormatUint(b.varSeq, 10)
		b.varSeq++
		if _, exists := b.table["v:"+name]; !exists {
			return b.Var(name)
		}
	}
}

// App interns a function application. Constants are App with no args.
func (b *Bank) App(functor string, args ...*Term) *Term {
	key := appKey(functor, args)
	if existing, ok := b.table[key]; ok {
		existing.refCount++
		return existing
	}
	t := &Term{Kind: KindApp, Functor: functor, Args: args, id: b.nextID, refCount: 1}
	b.nextID++
	b.table[key] = t
	b.maybeGC()
	return t
}

func appKey(functor string, args []*Term) string {
	key := "a:" + functor + "/" + strconv.Itoa(len(args))
	for _, a := range args {
		key += ":" + strconv.FormatUint(a.id, 10)
	}
	return key
}

// Retain bumps t's reference count. Call it whenever a new owner (a clause,
// a literal, an index entry) starts holding t.
func (b *Bank) Retain(t *Term) {
	if t == nil {
		return
	}
	t.refCount++
}

// Release drops t's reference count by one. It does not recursively drop
// children and it does not immediately free anything -- dead nodes are only
// reclaimed by MaybeGC, which sweeps everything with a zero count once the
// bank has grown past gcLimit.
func (b *Bank) Release(t *Term) {
	if t == nil {
		return
	}
	if t.refCount == 0 {
		panic(fmt.Sprintf("term bank: over-release of %s", t.String()))
	}
	t.refCount--
}

func (b *Bank) maybeGC() {
	b.sinceLast++
	if len(b.table) < b.gcLimit || b.sinceLast < b.gcLimit/10+1 {
		return
	}
	b.gc()
}

// MaybeGC exposes the sweep for callers (the saturation loop, at a safe
// point between given-clause iterations) that want to force the check
// without waiting for the next App call to trip it.
func (b *Bank) MaybeGC() { b.maybeGC() }

func (b *Bank) gc() {
	b.sinceLast = 0
	b.gcGen++
	for key, t := range b.table {
		if t.refCount == 0 {
			delete(b.table, key)
		}
	}
}

// Generation returns the bank's GC generation counter, used to invalidate
// cached rewrite links that were computed against an older set of live
// rules.
func (b *Bank) Generation() uint64 { return b.gcGen }

// RewriteLink returns t's memoized normal form if it is still valid for the
// bank's current generation, or nil if none is cached.
func (b *Bank) RewriteLink(t *Term) *Term {
	if t.rewriteLink != nil && t.rewriteGen == b.gcGen {
		return t.rewriteLink
	}
	return nil
}

// SetRewriteLink memoizes t's normal form for the bank's current
// generation.
func (b *Bank) SetRewriteLink(t, normal *Term) {
	t.rewriteLink = normal
	t.rewriteGen = b.gcGen
}
