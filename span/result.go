package span

// Result is the finalized output of AnalyzeSpans: a hole-free, minimal
// partition of the span plus the bookkeeping the source's
// AnalyzeSpansResult carried alongside it.
type Result struct {
	Map          ValueMap
	MaxBound     uint64
	AllSpecified bool
	AllOthers    bool
}

// Take zeroes the receiver and returns its former contents, the
// explicit stand-in for the source's destructive copy constructor
// (spec.md §9): Go has no copy constructors, so instead of a copy that
// silently empties its source, callers that need move-out semantics
// call Take explicitly.
func (r *Result) Take() Result {
	out := *r
	*r = Result{}
	return out
}

// Entries returns the finalized partition's entries in ascending key
// order. A thin convenience over Map.Entries for callers that only
// want the partition without the bookkeeping fields.
func (r *Result) Entries() []ValueEntry {
	return r.Map.Entries()
}
