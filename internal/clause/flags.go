package clause

// Flags is a bitset of the per-clause status flags spec.md's data model
// enumerates. A uint32 is plenty: these are presence bits checked and set
// far more often than enumerated, so a bitset beats a []string or a map.
type Flags uint32

const (
	// Processed marks a clause that has left tmp_store for one of the
	// processed partitions.
	Processed Flags = 1 << iota
	// Initial marks a clause present in the original problem, as opposed
	// to one derived during saturation.
	Initial
	// IRVictim marks a clause currently being evicted by backward
	// simplification (its replacement is already queued).
	IRVictim
	// LimitedRW marks a clause whose rewriting is capped by the
	// CreationDate ordering (§8 invariant 6): it may only be rewritten by
	// rules whose CreationDate is not later than its own.
	LimitedRW
	// Oriented marks a positive equation whose two sides the term
	// ordering strictly compares, i.e. one usable as a demodulation rule.
	Oriented
	// SubsumesWatch marks a processed clause that subsumes at least one
	// watchlist clause.
	SubsumesWatch
	// WatchOnly marks a clause that exists purely to be matched against
	// the watchlist and is never itself selected as a given clause.
	WatchOnly
	// Dead marks a clause logically retracted from every working set but
	// still retained (as a derivation-DAG node, or because another live
	// clause's proof depends on it).
	Dead
	// GlobalIndexed marks a clause currently tracked by at least one of
	// the global indices (rewrite, paramodulation, watchlist).
	GlobalIndexed
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }
func (f Flags) Set(bit Flags) Flags { return f | bit }
func (f Flags) Clear(bit Flags) Flags { return f &^ bit }

var names = []struct {
	bit  Flags
	name string
}{
	{Processed, "Processed"},
	{Initial, "Initial"},
	{IRVictim, "IRVictim"},
	{LimitedRW, "LimitedRW"},
	{Oriented, "Oriented"},
	{SubsumesWatch, "SubsumesWatch"},
	{WatchOnly, "WatchOnly"},
	{Dead, "Dead"},
	{GlobalIndexed, "GlobalIndexed"},
}

func (f Flags) String() string {
	s := ""
	for _, n := range names {
		if f.Has(n.bit) {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}
