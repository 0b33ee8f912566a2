package span

import (
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/pkg/spanerr"
)

// AnalyzeSpans classifies, bounds-normalizes, defragments, and
// re-synthesizes a set of partial index assignments over spanType
// into a minimal canonical partition. It orchestrates C4 (categorize)
// -> C5 (merge) -> C6 (refine) in sequence; on failure the returned
// Result is the zero value.
func AnalyzeSpans(
	spanType hdlval.Type,
	indexMap IndexMap,
	sem hdlval.Semantics,
	others hdlval.Value,
	opts *Options,
) (Result, error) {
	result, _, err := analyzeSpans(spanType, indexMap, sem, others, opts)
	return result, err
}

// analyzeSpans is AnalyzeSpans' implementation, additionally returning
// the resolved span so CreateConcatFromSpans doesn't have to look it
// up from spanType a second time.
func analyzeSpans(
	spanType hdlval.Type,
	indexMap IndexMap,
	sem hdlval.Semantics,
	others hdlval.Value,
	opts *Options,
) (Result, hdlval.RangeExpr, error) {
	log := opts.logger()
	log.Debug("analyzing span", "entries", len(indexMap))

	span, ok := sem.TypeSpan(spanType)
	if !ok {
		return Result{}, nil, spanerr.New(spanerr.KindNoSpan, "span type has no span")
	}
	refDir := span.Direction()

	vm, maxBound, allSpecified, err := categorize(span, indexMap, sem, others)
	if err != nil {
		log.Debug("categorize failed", "err", err)
		return Result{}, nil, err
	}
	if err := fillHoles(&vm, maxBound, others); err != nil {
		log.Debug("fill holes failed", "err", err)
		return Result{}, nil, err
	}

	mergeSpans(&vm, sem, refDir)

	allOthers := false
	if opts == nil || !opts.DisablePrefixCollapse {
		refinePrefixes(&vm, sem)
	}
	if opts == nil || !opts.DisableAllOthers {
		allOthers = refineAllOthers(&vm, maxBound, others)
	}

	log.Debug("analysis complete", "entries", vm.Len(), "maxBound", maxBound, "allSpecified", allSpecified, "allOthers", allOthers)

	return Result{
		Map:          vm,
		MaxBound:     maxBound,
		AllSpecified: allSpecified,
		AllOthers:    allOthers,
	}, span, nil
}

// CreateConcatFromSpans runs AnalyzeSpans and, on success, folds the
// finalized partition into a single concatenation expression via C7.
// It returns a nil Value and a non-nil error wherever the source would
// have returned an absent Option<Value>: analysis failure, or padding
// required without an others value.
func CreateConcatFromSpans(
	spanType hdlval.Type,
	indexMap IndexMap,
	sem hdlval.Semantics,
	others hdlval.Value,
	opts *Options,
) (hdlval.Value, error) {
	result, span, err := analyzeSpans(spanType, indexMap, sem, others, opts)
	if err != nil {
		return nil, err
	}
	return buildConcat(&result.Map, result.AllSpecified, result.MaxBound, spanType, span.Direction(), sem, others)
}
