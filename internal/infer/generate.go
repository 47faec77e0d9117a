package infer

import (
	"saturate/internal/clause"
	"saturate/internal/clausestore"
	"saturate/internal/id"
	"saturate/internal/order"
	"saturate/internal/schema"
	"saturate/internal/term"
)

// NewContext builds the PContext the inference rules share, from a store's
// own bank/ordering/indices.
func NewContext(bank *term.Bank, ord *order.Ordering, store *clausestore.Store) *PContext {
	return &PContext{Bank: bank, Order: ord, Store: store}
}

// Options gates the optional generating rules per the heuristic parameter
// surface (spec.md §6): EqualityFactoring and NegUnitParamod mirror
// enable_eq_factoring / enable_neg_unit_paramod, SchemaExpansion gates
// whether schema instantiation (4.G) runs at all.
type Options struct {
	SchemaExpansion   bool
	EqualityFactoring bool
	NegUnitParamod    bool
}

// GenerateAll runs every generating inference rule against the given
// clause, returning all newly derived clauses (unprocessed, unsimplified --
// the caller's forward simplification pipeline still has to run over each
// one before it can be inserted). Schema expansion (4.G) runs first, as
// spec.md 4.D specifies, ahead of the equational inference rules.
func GenerateAll(ctx *PContext, src *id.Source, given *clause.Clause, opts Options) []*clause.Clause {
	var out []*clause.Clause
	if opts.SchemaExpansion {
		_, instances := schema.Expand(ctx.Bank, src, given)
		out = append(out, instances...)
	}
	if opts.EqualityFactoring {
		out = append(out, EqualityFactoring(ctx.Bank, src, given)...)
	}
	out = append(out, EqualityResolution(ctx.Bank, src, given)...)
	if opts.NegUnitParamod || !given.IsNegativeUnit() {
		out = append(out, Paramodulate(ctx, src, given)...)
	}
	return out
}
