package hdlval

// Type is an opaque handle to a caller-owned type descriptor. All
// information about a Type is obtained through Semantics; the core
// never inspects a Type's concrete representation.
type Type = any

// Semantics is the narrow facade the analyzer needs from a
// language-specific semantics module (VHDL, SystemC, ...). It bundles
// the read-only type queries of the original spec's "Semantics
// interface" with the node-construction operations of its "AST
// interface", since both travel together as a single collaborator
// argument through the public entry points.
type Semantics interface {
	// TypeSpan returns the declared span of a typed object, or false
	// if spanType has no span.
	TypeSpan(spanType Type) (RangeExpr, bool)

	// SpanBitwidth returns the bit width of a span when statically
	// known, or 0 if the width cannot be determined.
	SpanBitwidth(span RangeExpr) uint64

	// TypeSpanBitwidth is SpanBitwidth applied to a Type's own span.
	// Returns 0 if t has no span or the span's width is unknown.
	TypeSpanBitwidth(t Type) uint64

	// SemanticType types an expression, or returns false if no type
	// can be derived.
	SemanticType(v Value) (Type, bool)

	// AssureSyntacticType decorates a raw constant with a syntactic
	// type so it can be safely composed into further expressions.
	AssureSyntacticType(v Value) Value

	// Simplify symbolically simplifies an expression; it may reduce
	// to a constant.
	Simplify(v Value) Value

	// TransformConstant coerces a constant to another target type,
	// returning false on failure.
	TransformConstant(cv Value, target Type) (Value, bool)

	// IntegerType returns the semantics module's native integer
	// type, used as the TransformConstant target when reducing
	// indices and bound deltas to machine integers.
	IntegerType() Type

	// NewMinus constructs an a - b expression.
	NewMinus(a, b Value) Value

	// NewConcat constructs an a ++ b expression (language-native
	// concatenation operator).
	NewConcat(a, b Value) Value

	// NewCast constructs a value of type t wrapping v.
	NewCast(t Type, v Value) Value

	// NewAggregateOthers constructs an aggregate literal whose only
	// content is an "others" default.
	NewAggregateOthers(others Value) Value

	// NewRange constructs a new Range(left, right, dir) expression,
	// taking ownership of left and right.
	NewRange(left, right Value, dir Direction) RangeExpr

	// NewSlice constructs a new Slice(prefix, span) expression,
	// taking ownership of prefix and span.
	NewSlice(prefix Value, span RangeExpr) Slice

	// NewPaddingType returns a clone of spanType whose span is
	// restricted to width (TypeSpanBitwidth(spanType) - maxBound - 1),
	// used by the concat builder to type the tail-padding aggregate
	// that covers the uncovered indices above maxBound.
	NewPaddingType(spanType Type, maxBound uint64) Type
}
