package span

import "github.com/hdlforge/spanalyze/pkg/hdlval"

// mergeSpans fuses adjacent entries of a hole-free ValueMap per the
// 3x3 rule table of C5. On a successful fuse the two entries are
// replaced by one and the cursor does not advance, so the new entry
// is compared against whatever follows it; cascaded fusion falls out
// of that re-seating for free.
func mergeSpans(vm *ValueMap, sem hdlval.Semantics, refDir hdlval.Direction) {
	i := 0
	for i+1 < vm.Len() {
		prev := vm.At(i)
		curr := vm.At(i + 1)
		mergedIdx, mergedVal, ok := tryMerge(prev.Index, curr.Index, prev.Value, curr.Value, sem, refDir)
		if !ok {
			i++
			continue
		}
		vm.ReplaceSpan(i, i+2, ValueEntry{Index: mergedIdx, Value: mergedVal})
	}
}

// tryMerge attempts to fuse one adjacent (prev, curr) pair. It never
// fails hard: an unconstant bound delta or a rule that simply doesn't
// apply both just report ok == false, leaving the pair as-is.
func tryMerge(
	prevIdx, currIdx ValueIndex,
	prevVal, currVal hdlval.Value,
	sem hdlval.Semantics,
	refDir hdlval.Direction,
) (ValueIndex, hdlval.Value, bool) {
	switch {
	case prevIdx.Kind() == KindExpression && currIdx.Kind() == KindExpression:
		return mergeExpressionExpression(prevIdx, currIdx, prevVal, currVal, sem, refDir)
	case prevIdx.Kind() == KindExpression && currIdx.Kind() == KindRange:
		return mergeEqualToRange(prevIdx, currIdx, prevVal, currVal)
	case prevIdx.Kind() == KindExpression && currIdx.Kind() == KindSlice:
		return mergeMemberIntoSliceMin(prevIdx, currIdx, prevVal, currVal, sem)
	case prevIdx.Kind() == KindRange && currIdx.Kind() == KindExpression:
		return mergeEqualToRange(prevIdx, currIdx, prevVal, currVal)
	case prevIdx.Kind() == KindRange && currIdx.Kind() == KindRange:
		return mergeEqualToRange(prevIdx, currIdx, prevVal, currVal)
	case prevIdx.Kind() == KindRange && currIdx.Kind() == KindSlice:
		return ValueIndex{}, nil, false
	case prevIdx.Kind() == KindSlice && currIdx.Kind() == KindExpression:
		return mergeMemberIntoSliceMax(prevIdx, currIdx, prevVal, currVal, sem)
	case prevIdx.Kind() == KindSlice && currIdx.Kind() == KindRange:
		return ValueIndex{}, nil, false
	case prevIdx.Kind() == KindSlice && currIdx.Kind() == KindSlice:
		return mergeSliceSlice(prevIdx, currIdx, prevVal, currVal, sem)
	default:
		return ValueIndex{}, nil, false
	}
}

// mergeExpressionExpression handles the (Expression, Expression) cell:
// structurally equal values fuse to a Range; otherwise, two Member
// accesses on a common prefix fuse to a Slice when adjacent.
//
// The source's adjacency test reads
// "if (compare != -1 && compare != 1) return; if (compare == -1) return;"
// which leaves the compare == -1 branch dead: the effective rule is
// "merge only when compare == +1", implemented literally here rather
// than as the symmetric +-1 rule a naive reading would suggest.
func mergeExpressionExpression(
	prevIdx, currIdx ValueIndex,
	prevVal, currVal hdlval.Value,
	sem hdlval.Semantics,
	refDir hdlval.Direction,
) (ValueIndex, hdlval.Value, bool) {
	if prevVal.Equals(currVal) {
		return NewValueIndex(KindRange, prevIdx.Min(), currIdx.Max()), currVal, true
	}

	pm, ok := hdlval.AsMember(prevVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	cm, ok := hdlval.AsMember(currVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	if !pm.Prefix().Equals(cm.Prefix()) {
		return ValueIndex{}, nil, false
	}
	delta, err := compareBounds(pm.Index(), cm.Index(), sem)
	if err != nil || delta != 1 {
		return ValueIndex{}, nil, false
	}

	prefix := pm.TakePrefix()
	prevBound := pm.TakeIndex()
	currBound := cm.TakeIndex()
	rng := sem.NewRange(nil, nil, refDir)
	hdlval.SetMinBound(rng, prevBound)
	hdlval.SetMaxBound(rng, currBound)
	slice := sem.NewSlice(prefix, rng)
	return NewValueIndex(KindSlice, prevIdx.Min(), currIdx.Max()), slice, true
}

// mergeEqualToRange handles the cells where a structural-equality
// check against a wider key shape is the only applicable rule:
// (Expression,Range), (Range,Expression), (Range,Range).
func mergeEqualToRange(
	prevIdx, currIdx ValueIndex,
	prevVal, currVal hdlval.Value,
) (ValueIndex, hdlval.Value, bool) {
	if !prevVal.Equals(currVal) {
		return ValueIndex{}, nil, false
	}
	return NewValueIndex(KindRange, prevIdx.Min(), currIdx.Max()), currVal, true
}

// mergeMemberIntoSliceMin handles (Expression, Slice): a Member(P, i)
// immediately followed by Slice(P, R) extends R's min bound to i.
func mergeMemberIntoSliceMin(
	prevIdx, currIdx ValueIndex,
	prevVal, currVal hdlval.Value,
	sem hdlval.Semantics,
) (ValueIndex, hdlval.Value, bool) {
	pm, ok := hdlval.AsMember(prevVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	cs, ok := hdlval.AsSlice(currVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	if !pm.Prefix().Equals(cs.Prefix()) {
		return ValueIndex{}, nil, false
	}
	delta, err := compareBounds(pm.Index(), hdlval.MinBound(cs.Span()), sem)
	if err != nil || delta != 1 {
		return ValueIndex{}, nil, false
	}
	i := pm.TakeIndex()
	hdlval.SetMinBound(cs.Span(), i)
	return NewValueIndex(KindSlice, prevIdx.Min(), currIdx.Max()), currVal, true
}

// mergeMemberIntoSliceMax handles (Slice, Expression): Slice(P, R)
// immediately followed by Member(P, i) extends R's max bound to i.
func mergeMemberIntoSliceMax(
	prevIdx, currIdx ValueIndex,
	prevVal, currVal hdlval.Value,
	sem hdlval.Semantics,
) (ValueIndex, hdlval.Value, bool) {
	ps, ok := hdlval.AsSlice(prevVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	cm, ok := hdlval.AsMember(currVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	if !ps.Prefix().Equals(cm.Prefix()) {
		return ValueIndex{}, nil, false
	}
	delta, err := compareBounds(hdlval.MaxBound(ps.Span()), cm.Index(), sem)
	if err != nil || delta != 1 {
		return ValueIndex{}, nil, false
	}
	i := cm.TakeIndex()
	hdlval.SetMaxBound(ps.Span(), i)
	return NewValueIndex(KindSlice, prevIdx.Min(), currIdx.Max()), prevVal, true
}

// mergeSliceSlice handles (Slice, Slice): two slices on a common
// prefix whose ranges are adjacent stitch into one.
//
// The source stitches by overwriting the current slice's Range.min
// with the previous slice's detached min
// (setSpanMinIndex(sliceCurr, setSpanMinIndex(slicePrec, nullptr))),
// discarding the previous slice's carrier entirely. That reads as a
// max/min mix-up against "union of two adjacent slices", but since
// the current slice's max is left untouched, the result ends up with
// exactly the union's endpoints (prec's min, curr's max). Implemented
// literally, per the open question this pins down.
func mergeSliceSlice(
	prevIdx, currIdx ValueIndex,
	prevVal, currVal hdlval.Value,
	sem hdlval.Semantics,
) (ValueIndex, hdlval.Value, bool) {
	ps, ok := hdlval.AsSlice(prevVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	cs, ok := hdlval.AsSlice(currVal)
	if !ok {
		return ValueIndex{}, nil, false
	}
	if !ps.Prefix().Equals(cs.Prefix()) {
		return ValueIndex{}, nil, false
	}
	delta, err := compareBounds(hdlval.MaxBound(ps.Span()), hdlval.MinBound(cs.Span()), sem)
	if err != nil || delta != 1 {
		return ValueIndex{}, nil, false
	}
	precMin := hdlval.TakeMinBound(ps.Span())
	hdlval.SetMinBound(cs.Span(), precMin)
	return NewValueIndex(KindSlice, prevIdx.Min(), currIdx.Max()), currVal, true
}
