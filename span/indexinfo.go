package span

import "github.com/hdlforge/spanalyze/pkg/hdlval"

// InfoKind tags which of the three shapes an IndexInfo carries.
type InfoKind int

const (
	// infoUnset is the zero value: none of the three variants is
	// present. Constructing an IndexInfo through the package's
	// factory functions always sets one; infoUnset only occurs from
	// a literal IndexInfo{}, which is a programmer error.
	infoUnset InfoKind = iota
	// InfoExpression tags a single-index descriptor.
	InfoExpression
	// InfoRange tags a contiguous-range descriptor.
	InfoRange
	// InfoSlice tags a sub-slice descriptor.
	InfoSlice
)

// IndexInfo is a borrowed, tagged reference to a source index: exactly
// one of expression, range, or slice is present. It is a map key only
// on the input side; IndexMap's ordering carries no meaning, as the
// analyzer establishes its own order over the zero-based ValueIndex it
// derives from each entry.
type IndexInfo struct {
	kind       InfoKind
	expression hdlval.Value
	rng        hdlval.RangeExpr
	slice      hdlval.RangeExpr
}

// Expression builds an IndexInfo describing a single index.
func Expression(v hdlval.Value) IndexInfo {
	return IndexInfo{kind: InfoExpression, expression: v}
}

// RangeIndex builds an IndexInfo describing a contiguous range of
// indices sharing one value.
func RangeIndex(r hdlval.RangeExpr) IndexInfo {
	return IndexInfo{kind: InfoRange, rng: r}
}

// SliceIndex builds an IndexInfo describing a sub-slice whose value is
// itself a span: each index in the range gets the matching index of
// the value.
func SliceIndex(r hdlval.RangeExpr) IndexInfo {
	return IndexInfo{kind: InfoSlice, slice: r}
}

// Kind reports which variant is present.
func (i IndexInfo) Kind() InfoKind { return i.kind }

// Entry pairs an IndexInfo with its borrowed value in an IndexMap.
type Entry struct {
	Info  IndexInfo
	Value hdlval.Value
}

// IndexMap is the input mapping from index descriptors to values.
// Entries need not be ordered by index; the analyzer establishes
// order from the zero-based bounds it evaluates. When two entries'
// evaluated bounds overlap, the later entry in the slice wins (see
// spec boundary B3).
type IndexMap []Entry
