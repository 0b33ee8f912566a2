package span

import (
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/pkg/spanerr"
)

// buildConcat walks a finalized ValueMap in partition order and emits
// a single concatenation expression honoring refDir: for upto, later
// terms append to the right of the accumulator; for downto, they
// prepend to the left. It is C7, ConcatBuilder.
func buildConcat(
	vm *ValueMap,
	allSpecified bool,
	maxBound uint64,
	spanType hdlval.Type,
	refDir hdlval.Direction,
	sem hdlval.Semantics,
	others hdlval.Value,
) (hdlval.Value, error) {
	var acc hdlval.Value
	appendTerm := func(v hdlval.Value) {
		if acc == nil {
			acc = v
			return
		}
		if refDir == hdlval.DirUpto {
			acc = sem.NewConcat(acc, v)
		} else {
			acc = sem.NewConcat(v, acc)
		}
	}

	for _, e := range vm.Entries() {
		switch e.Index.Kind() {
		case KindExpression, KindSlice:
			appendTerm(e.Value)
		case KindRange:
			n := e.Index.Size()
			for k := uint64(0); k < n; k++ {
				if k == 0 {
					appendTerm(e.Value)
				} else {
					appendTerm(e.Value.Clone())
				}
			}
		}
	}

	if !allSpecified {
		if others == nil {
			return nil, spanerr.New(spanerr.KindConcatUndefined, "padding required without an others value")
		}
		padType := sem.NewPaddingType(spanType, maxBound)
		pad := sem.NewCast(padType, sem.NewAggregateOthers(others.Clone()))
		appendTerm(pad)
	}

	if acc == nil {
		return nil, spanerr.New(spanerr.KindConcatUndefined, "nothing to concatenate")
	}
	return acc, nil
}
