package span

import (
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/pkg/spanerr"
)

// categorize converts the input IndexMap into a zero-based ValueMap,
// covering the width-derived tail with the others default and computing
// maxBound and allSpecified. Gaps below maxBound are left for fillHoles.
// Together with fillHoles it is C4 of the design: SpanCategorizer.
func categorize(
	span hdlval.RangeExpr,
	indexMap IndexMap,
	sem hdlval.Semantics,
	others hdlval.Value,
) (ValueMap, uint64, bool, error) {
	spanWidth := sem.SpanBitwidth(span)
	if spanWidth == 0 && len(indexMap) == 0 {
		// With no indices and no statically known width, there is no
		// way to determine a bound at all (spec boundary B2).
		return ValueMap{}, 0, false, spanerr.New(
			spanerr.KindOutOfRange,
			"cannot determine span bound: empty index map and unknown span width",
		)
	}

	min := hdlval.MinBound(span)

	var vm ValueMap
	var maxBound uint64
	for _, entry := range indexMap {
		switch entry.Info.kind {
		case InfoExpression:
			v, err := evaluateIndex(entry.Info.expression, min, sem)
			if err != nil {
				return ValueMap{}, 0, false, err
			}
			if v > maxBound {
				maxBound = v
			}
			vm.Insert(NewValueIndex(KindExpression, v, v), entry.Value.Clone())

		case InfoRange:
			vmin, vmax, err := evaluateRangeBounds(entry.Info.rng, min, sem)
			if err != nil {
				return ValueMap{}, 0, false, err
			}
			if vmax > maxBound {
				maxBound = vmax
			}
			vm.Insert(NewValueIndex(KindRange, vmin, vmax), entry.Value.Clone())

		case InfoSlice:
			vmin, vmax, err := evaluateRangeBounds(entry.Info.slice, min, sem)
			if err != nil {
				return ValueMap{}, 0, false, err
			}
			if vmax > maxBound {
				maxBound = vmax
			}
			vm.Insert(NewValueIndex(KindSlice, vmin, vmax), entry.Value.Clone())

		default:
			panic("span: IndexInfo has none of expression, range, or slice set")
		}
	}

	allSpecified := false
	if spanWidth > 0 {
		if maxBound >= spanWidth {
			return ValueMap{}, 0, false, spanerr.New(spanerr.KindOutOfRange, "wrong input indexes")
		}
		if maxBound+1 < spanWidth {
			if others == nil {
				return ValueMap{}, 0, false, spanerr.New(
					spanerr.KindMissingOthers,
					"no others value to cover the span's uncovered tail",
				)
			}
			vm.Insert(NewValueIndex(KindRange, maxBound+1, spanWidth-1), others.Clone())
		}
		// A fully specified span always covers through spanWidth-1,
		// whether that tail came from explicit entries or the
		// width-derived trailing range just inserted above; maxBound
		// must reflect that for fillHoles' caller and the refiner, not
		// just the highest explicitly given index.
		maxBound = spanWidth - 1
		allSpecified = true
	}

	return vm, maxBound, allSpecified, nil
}

func evaluateRangeBounds(r hdlval.RangeExpr, min hdlval.Value, sem hdlval.Semantics) (uint64, uint64, error) {
	a, err := evaluateIndex(hdlval.MinBound(r), min, sem)
	if err != nil {
		return 0, 0, err
	}
	b, err := evaluateIndex(hdlval.MaxBound(r), min, sem)
	if err != nil {
		return 0, 0, err
	}
	if a > b {
		a, b = b, a
	}
	return a, b, nil
}

// fillHoles inserts an Expression(i) -> clone(others) entry for every
// i in [0, maxBound] not already covered. Because the categorizer
// already synthesizes the width-derived trailing range, this pass
// only ever needs to close gaps at or below maxBound.
func fillHoles(vm *ValueMap, maxBound uint64, others hdlval.Value) error {
	for i := uint64(0); i <= maxBound; i++ {
		key := NewValueIndex(KindExpression, i, i)
		if vm.Covers(key) {
			continue
		}
		if others == nil {
			return spanerr.New(spanerr.KindMissingOthers, "no others value to fill an index hole")
		}
		vm.Insert(key, others.Clone())
	}
	return nil
}
