package span_test

import (
	"testing"

	"github.com/hdlforge/spanalyze/internal/fakesem"
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/pkg/spanerr"
	"github.com/hdlforge/spanalyze/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type concatNode interface {
	ConcatOperands() (hdlval.Value, hdlval.Value)
}

// flattenConcat walks a concat-node tree left to right and returns its
// leaf terms, so tests can assert on term order without caring about
// the exact nesting shape the builder produces.
func flattenConcat(v hdlval.Value) []hdlval.Value {
	c, ok := v.(concatNode)
	if !ok {
		return []hdlval.Value{v}
	}
	lhs, rhs := c.ConcatOperands()
	return append(flattenConcat(lhs), flattenConcat(rhs)...)
}

func expr(i int64) hdlval.Value { return fakesem.IntVal{V: i} }

func member(p hdlval.Value, i int64) *fakesem.Member {
	return &fakesem.Member{P: p, I: fakesem.IntVal{V: i}}
}

func posRange(lo, hi int64, dir hdlval.Direction) *fakesem.Range {
	if dir == hdlval.DirUpto {
		return &fakesem.Range{L: fakesem.IntVal{V: lo}, R: fakesem.IntVal{V: hi}, Dir: dir}
	}
	return &fakesem.Range{L: fakesem.IntVal{V: hi}, R: fakesem.IntVal{V: lo}, Dir: dir}
}

func TestAnalyzeSpans_S1_AllSingletonsDistinct(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirDownto)
	others := fakesem.IntVal{V: 0}
	a, b, c, d := fakesem.ConstVal{Name: "A"}, fakesem.ConstVal{Name: "B"}, fakesem.ConstVal{Name: "C"}, fakesem.ConstVal{Name: "D"}

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(3)), Value: a},
		{Info: span.Expression(expr(2)), Value: b},
		{Info: span.Expression(expr(1)), Value: c},
		{Info: span.Expression(expr(0)), Value: d},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), result.MaxBound)
	assert.True(t, result.AllSpecified)
	assert.False(t, result.AllOthers)

	entries := result.Entries()
	require.Len(t, entries, 4)
	wantVals := []hdlval.Value{d, c, b, a}
	for i, e := range entries {
		assert.Equal(t, span.KindExpression, e.Index.Kind())
		assert.Equal(t, uint64(i), e.Index.Min())
		assert.True(t, wantVals[i].Equals(e.Value))
	}
}

func TestAnalyzeSpans_S2_AllEqualMergeToRange(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirDownto)
	x := fakesem.ConstVal{Name: "X"}

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(0)), Value: x},
		{Info: span.Expression(expr(1)), Value: x},
		{Info: span.Expression(expr(2)), Value: x},
		{Info: span.Expression(expr(3)), Value: x},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, x, nil)
	require.NoError(t, err)
	assert.True(t, result.AllOthers)

	entries := result.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, span.KindRange, entries[0].Index.Kind())
	assert.Equal(t, uint64(0), entries[0].Index.Min())
	assert.Equal(t, uint64(3), entries[0].Index.Max())

	concat, err := span.CreateConcatFromSpans(spanType, indexMap, sem, x, nil)
	require.NoError(t, err)
	terms := flattenConcat(concat)
	require.Len(t, terms, 4)
	for _, term := range terms {
		assert.True(t, x.Equals(term))
	}
}

func TestAnalyzeSpans_S3_AdjacentMembersMergeToSlice(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirDownto)
	p := &fakesem.Var{Name: "P"}
	others := fakesem.IntVal{V: 0}

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(0)), Value: member(p, 0)},
		{Info: span.Expression(expr(1)), Value: member(p, 1)},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)

	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, span.KindSlice, entries[0].Index.Kind())
	assert.Equal(t, uint64(0), entries[0].Index.Min())
	assert.Equal(t, uint64(1), entries[0].Index.Max())
	sl, ok := hdlval.AsSlice(entries[0].Value)
	require.True(t, ok)
	assert.True(t, p.Equals(sl.Prefix()))

	assert.Equal(t, span.KindRange, entries[1].Index.Kind())
	assert.Equal(t, uint64(2), entries[1].Index.Min())
	assert.Equal(t, uint64(3), entries[1].Index.Max())

	concat, err := span.CreateConcatFromSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)
	terms := flattenConcat(concat)
	require.Len(t, terms, 3)
	assert.True(t, others.Equals(terms[0]))
	assert.True(t, others.Equals(terms[1]))
	_, ok = hdlval.AsSlice(terms[2])
	assert.True(t, ok)
}

func TestAnalyzeSpans_S4_SliceExtendsWithAdjacentMember(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirDownto)
	p := &fakesem.Var{Name: "P"}
	others := fakesem.IntVal{V: 0}

	sliceVal := &fakesem.Slice{P: p, S: posRange(0, 1, hdlval.DirDownto)}
	indexMap := span.IndexMap{
		{Info: span.SliceIndex(posRange(0, 1, hdlval.DirDownto)), Value: sliceVal},
		{Info: span.Expression(expr(2)), Value: member(p, 2)},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)

	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, span.KindSlice, entries[0].Index.Kind())
	assert.Equal(t, uint64(0), entries[0].Index.Min())
	assert.Equal(t, uint64(2), entries[0].Index.Max())
	assert.Equal(t, span.KindExpression, entries[1].Index.Kind())
	assert.Equal(t, uint64(3), entries[1].Index.Min())
}

func TestAnalyzeSpans_S5_PrefixCollapse(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(1, hdlval.DirDownto)
	q := fakesem.ScalarVar("Q")
	others := fakesem.IntVal{V: 0}

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(0)), Value: member(q, 0)},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)

	entries := result.Entries()
	require.Len(t, entries, 1)
	assert.True(t, q.Equals(entries[0].Value))
}

func TestAnalyzeSpans_S6_UnknownWidthRangeOnly(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.UnsizedType(hdlval.DirDownto)
	a := fakesem.ConstVal{Name: "A"}
	others := fakesem.IntVal{V: 0}

	indexMap := span.IndexMap{
		{Info: span.RangeIndex(posRange(2, 5, hdlval.DirDownto)), Value: a},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)
	assert.False(t, result.AllSpecified)
	assert.Equal(t, uint64(5), result.MaxBound)

	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, span.KindRange, entries[0].Index.Kind())
	assert.Equal(t, uint64(0), entries[0].Index.Min())
	assert.Equal(t, uint64(1), entries[0].Index.Max())
	assert.Equal(t, span.KindRange, entries[1].Index.Kind())
	assert.Equal(t, uint64(2), entries[1].Index.Min())
	assert.Equal(t, uint64(5), entries[1].Index.Max())

	concat, err := span.CreateConcatFromSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)
	terms := flattenConcat(concat)
	// downto prepends each new term to the left, so the tail padding
	// (appended last) ends up leftmost.
	require.NotEmpty(t, terms)
	_, ok := terms[0].(interface{ CastOperand() hdlval.Value })
	assert.True(t, ok, "expected leftmost term to be the tail-padding cast")
}

func TestAnalyzeSpans_B1_EmptyMapKnownWidth(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirUpto)
	others := fakesem.IntVal{V: 7}

	result, err := span.AnalyzeSpans(spanType, span.IndexMap{}, sem, others, nil)
	require.NoError(t, err)
	assert.True(t, result.AllSpecified)
	assert.True(t, result.AllOthers)

	entries := result.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, span.KindRange, entries[0].Index.Kind())
	assert.Equal(t, uint64(0), entries[0].Index.Min())
	assert.Equal(t, uint64(3), entries[0].Index.Max())
}

func TestAnalyzeSpans_B2_UnknownWidthEmptyMapFails(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.UnsizedType(hdlval.DirDownto)
	others := fakesem.IntVal{V: 0}

	_, err := span.AnalyzeSpans(spanType, span.IndexMap{}, sem, others, nil)
	require.Error(t, err)
	var serr *spanerr.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, spanerr.KindOutOfRange, serr.Kind)
}

func TestAnalyzeSpans_B3_OverlappingIndicesLaterWins(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(2, hdlval.DirUpto)
	first := fakesem.ConstVal{Name: "first"}
	second := fakesem.ConstVal{Name: "second"}
	others := fakesem.IntVal{V: 0}

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(0)), Value: first},
		{Info: span.Expression(expr(0)), Value: second},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)
	entries := result.Entries()
	require.Len(t, entries, 2)
	assert.True(t, second.Equals(entries[0].Value))
}

func TestAnalyzeSpans_MissingOthersOnHoleFails(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirUpto)

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(0)), Value: fakesem.ConstVal{Name: "A"}},
	}

	_, err := span.AnalyzeSpans(spanType, indexMap, sem, nil, nil)
	require.Error(t, err)
	var serr *spanerr.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, spanerr.KindMissingOthers, serr.Kind)
}

func TestAnalyzeSpans_NoSpanFails(t *testing.T) {
	sem := fakesem.New()
	spanType := &fakesem.Type{}

	_, err := span.AnalyzeSpans(spanType, span.IndexMap{}, sem, fakesem.IntVal{V: 0}, nil)
	require.Error(t, err)
	var serr *spanerr.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, spanerr.KindNoSpan, serr.Kind)
}

func TestAnalyzeSpans_R1_RoundTripIsStructurallyEqual(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(4, hdlval.DirDownto)
	p := &fakesem.Var{Name: "P"}
	others := fakesem.IntVal{V: 0}

	indexMap := span.IndexMap{
		{Info: span.Expression(expr(0)), Value: member(p, 0)},
		{Info: span.Expression(expr(1)), Value: member(p, 1)},
	}

	first, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)

	rebuilt := span.IndexMap{}
	for _, e := range first.Entries() {
		switch e.Index.Kind() {
		case span.KindExpression:
			rebuilt = append(rebuilt, span.Entry{
				Info:  span.Expression(expr(int64(e.Index.Min()))),
				Value: e.Value,
			})
		case span.KindRange:
			rebuilt = append(rebuilt, span.Entry{
				Info:  span.RangeIndex(posRange(int64(e.Index.Min()), int64(e.Index.Max()), hdlval.DirDownto)),
				Value: e.Value,
			})
		case span.KindSlice:
			rebuilt = append(rebuilt, span.Entry{
				Info:  span.SliceIndex(posRange(int64(e.Index.Min()), int64(e.Index.Max()), hdlval.DirDownto)),
				Value: e.Value,
			})
		}
	}

	second, err := span.AnalyzeSpans(spanType, rebuilt, sem, others, nil)
	require.NoError(t, err)

	firstEntries, secondEntries := first.Entries(), second.Entries()
	require.Len(t, secondEntries, len(firstEntries))
	for i := range firstEntries {
		assert.Equal(t, firstEntries[i].Index, secondEntries[i].Index)
		assert.True(t, firstEntries[i].Value.Equals(secondEntries[i].Value))
	}
}
