package span

// ValueKind tags the shape of a ValueIndex partition key.
type ValueKind int

const (
	// KindExpression is a single zero-based index (min == max).
	KindExpression ValueKind = iota
	// KindRange is a contiguous range of indices sharing one value.
	KindRange
	// KindSlice is a sub-slice whose value is itself a span.
	KindSlice
)

func (k ValueKind) String() string {
	switch k {
	case KindRange:
		return "Range"
	case KindSlice:
		return "Slice"
	default:
		return "Expression"
	}
}

// ValueIndex is the analyzer-internal, zero-based partition key: a
// kind tag plus an inclusive [min, max] bound. Keys form a strict weak
// order in which overlapping intervals compare equal — this is what
// lets insertion into the partition enforce the no-overlap invariant
// by construction, as long as callers erase any overlapping
// predecessor before inserting (ValueMap.Insert does this for them).
type ValueIndex struct {
	kind     ValueKind
	min, max uint64
}

// NewValueIndex builds a ValueIndex, normalizing the kind to
// KindExpression whenever min == max (a single-index key is always an
// Expression key, even if the caller asked for Range or Slice).
func NewValueIndex(kind ValueKind, minBound, maxBound uint64) ValueIndex {
	if minBound == maxBound {
		kind = KindExpression
	}
	return ValueIndex{kind: kind, min: minBound, max: maxBound}
}

// Kind reports the key's shape.
func (v ValueIndex) Kind() ValueKind { return v.kind }

// Min reports the inclusive lower bound.
func (v ValueIndex) Min() uint64 { return v.min }

// Max reports the inclusive upper bound.
func (v ValueIndex) Max() uint64 { return v.max }

// Size reports the number of indices the key covers.
func (v ValueIndex) Size() uint64 { return v.max - v.min + 1 }

// Less reports whether v strictly precedes other: v.max < other.min.
// Overlapping keys are neither Less nor Greater — they are equal under
// this order, which is the partition invariant.
func (v ValueIndex) Less(other ValueIndex) bool { return v.max < other.min }

// Overlaps reports whether the two keys' intervals intersect.
func (v ValueIndex) Overlaps(other ValueIndex) bool {
	return !v.Less(other) && !other.Less(v)
}
