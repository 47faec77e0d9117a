package proofstate

import "time"

// ProofControl is every tunable the given-clause loop consults, loaded
// from the heuristic parameter surface spec.md §6 enumerates
// (internal/config builds one of these from a YAML document). Not every
// field changes behavior: fields that no code reads are still recognized
// config keys, kept so round-tripping a full heuristic file never silently
// drops a setting.
type ProofControl struct {
	ACHandling                 bool
	EnableEqFactoring          bool
	EnableNegUnitParamod       bool
	PMType                     string
	ForwardDemod               bool
	ForwardContextSR           bool
	ForwardContextSRAggressive bool
	BackwardContextSR          bool
	Condensing                 bool
	CondensingAggressive       bool
	DetsortBwRw                bool
	DetsortTmpset              bool
	ERVarlitDestructive        bool
	ERStrongDestructive        bool
	ERAggressive               bool
	SplitAggressive            bool
	SplitClauses               bool
	SplitMethod                string
	SplitFreshDefs             bool
	PreferInitialClauses       bool
	PreferGeneral              bool
	SelectOnProcOnly           bool
	SelectionStrategy          string
	WatchlistIsStatic          bool
	WatchlistSimplify          bool
	UseTPTPSos                 bool
	FilterOrphansLimit         int
	ForwardContractLimit       int
	DeleteBadLimit             int
	SatCheckCardinality        int
	SatCheckProcessedStep      int
	SatCheckTermInsertions     int
	HeuristicName              string

	// RequireWatchlist governs the "if a watchlist was required, watchlist
	// non-empty" Saturate loop condition (4.E) -- not itself a §6 key, it
	// derives from whether a watchlist was supplied at all.
	RequireWatchlist bool
	// RecordProof governs whether ProcessClause archives a copy of every
	// given clause before simplifying it, for later proof reconstruction.
	RecordProof bool

	// Resource limits (§5/§7): zero means unlimited.
	StepLimit         int
	ProcessedLimit    int
	UnprocessedLimit  int
	TotalLimit        int
	GeneratedLimit    int
	TermInsertLimit   int
	TimeLimit         time.Duration

	// OutputLevel gates the "#"-prefixed progress lines (§6): not a
	// recognized heuristic key (internal/config never sets it), a driver
	// or the repl sets it directly. Zero means silent.
	OutputLevel int
}

// Default returns the control block the teacher's own config loader would
// hand back for an empty/partial YAML document: equality factoring,
// negative-unit paramodulation, forward demodulation, forward and backward
// contextual simplify-reflect, condensing and proof recording on; every
// other flag off; no resource limits;
// symbol-weight selection.
func Default() *ProofControl {
	return &ProofControl{
		EnableEqFactoring:    true,
		EnableNegUnitParamod: true,
		ForwardDemod:         true,
		ForwardContextSR:     true,
		BackwardContextSR:    true,
		Condensing:           true,
		SelectionStrategy:    "symbol-weight",
		RecordProof:          true,
	}
}
