package span_test

import (
	"testing"

	"github.com/hdlforge/spanalyze/internal/fakesem"
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/span"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeSliceSliceStitch pins down the open question left
// unresolved by the source: two adjacent slices on a common prefix
// stitch into one whose Range carries the earlier slice's min bound
// and the later slice's max bound, despite the source's stitch
// mechanics reading like a min/max mix-up at first glance.
func TestMergeSliceSliceStitch(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(6, hdlval.DirDownto)
	p := &fakesem.Var{Name: "P"}
	others := fakesem.IntVal{V: 0}

	first := &fakesem.Slice{P: p, S: posRange(0, 1, hdlval.DirDownto)}
	second := &fakesem.Slice{P: p, S: posRange(2, 3, hdlval.DirDownto)}

	indexMap := span.IndexMap{
		{Info: span.SliceIndex(posRange(0, 1, hdlval.DirDownto)), Value: first},
		{Info: span.SliceIndex(posRange(2, 3, hdlval.DirDownto)), Value: second},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)

	entries := result.Entries()
	require.Len(t, entries, 2) // stitched slice + trailing others range
	require.Equal(t, span.KindSlice, entries[0].Index.Kind())
	assert.Equal(t, uint64(0), entries[0].Index.Min())
	assert.Equal(t, uint64(3), entries[0].Index.Max())

	sl, ok := hdlval.AsSlice(entries[0].Value)
	require.True(t, ok)
	rng := sl.Span()
	assert.True(t, hdlval.MinBound(rng).Equals(fakesem.IntVal{V: 0}))
	assert.True(t, hdlval.MaxBound(rng).Equals(fakesem.IntVal{V: 3}))
}

func TestMergeRangeNeverMergesWithSlice(t *testing.T) {
	sem := fakesem.New()
	spanType := fakesem.SizedType(6, hdlval.DirUpto)
	a := fakesem.ConstVal{Name: "A"}
	p := &fakesem.Var{Name: "P"}
	others := fakesem.IntVal{V: 0}

	indexMap := span.IndexMap{
		{Info: span.RangeIndex(posRange(0, 1, hdlval.DirUpto)), Value: a},
		{Info: span.SliceIndex(posRange(2, 3, hdlval.DirUpto)), Value: &fakesem.Slice{P: p, S: posRange(2, 3, hdlval.DirUpto)}},
	}

	result, err := span.AnalyzeSpans(spanType, indexMap, sem, others, nil)
	require.NoError(t, err)

	entries := result.Entries()
	require.Len(t, entries, 3) // Range[0,1], Slice[2,3], trailing Range[4,5]
	assert.Equal(t, span.KindRange, entries[0].Index.Kind())
	assert.Equal(t, span.KindSlice, entries[1].Index.Kind())
}
