package fixture

import "github.com/hdlforge/spanalyze/pkg/hdlval"

// Type is a minimal type descriptor: a span plus whatever bit width is
// implied by it. A nil Span means "no span" (drives the NoSpan error
// path); a Span whose bounds aren't both IntVal means the width isn't
// statically known.
type Type struct {
	Span  *Range
	Width uint64 // used when Span is nil, e.g. a scalar Var's 1-bit type
}

// Semantics implements hdlval.Semantics over the fixture's Value tree.
type Semantics struct{}

// New returns a ready-to-use fixture Semantics.
func New() *Semantics { return &Semantics{} }

func (s *Semantics) TypeSpan(t hdlval.Type) (hdlval.RangeExpr, bool) {
	ty, ok := t.(*Type)
	if !ok || ty == nil || ty.Span == nil {
		return nil, false
	}
	return ty.Span, true
}

func (s *Semantics) SpanBitwidth(span hdlval.RangeExpr) uint64 {
	lo, loOK := hdlval.MinBound(span).(IntVal)
	hi, hiOK := hdlval.MaxBound(span).(IntVal)
	if !loOK || !hiOK || hi.V < lo.V {
		return 0
	}
	return uint64(hi.V-lo.V) + 1
}

func (s *Semantics) TypeSpanBitwidth(t hdlval.Type) uint64 {
	ty, ok := t.(*Type)
	if !ok || ty == nil {
		return 0
	}
	if ty.Span == nil {
		return ty.Width
	}
	return s.SpanBitwidth(ty.Span)
}

func (s *Semantics) SemanticType(v hdlval.Value) (hdlval.Type, bool) {
	variable, ok := v.(*Var)
	if !ok || variable.T == nil {
		return nil, false
	}
	return variable.T, true
}

func (s *Semantics) AssureSyntacticType(v hdlval.Value) hdlval.Value { return v }

func (s *Semantics) Simplify(v hdlval.Value) hdlval.Value {
	m, ok := v.(*minus)
	if !ok {
		return v
	}
	a := s.Simplify(m.A)
	b := s.Simplify(m.B)
	ai, aok := a.(IntVal)
	bi, bok := b.(IntVal)
	if aok && bok {
		return IntVal{V: ai.V - bi.V}
	}
	return &minus{A: a, B: b}
}

func (s *Semantics) TransformConstant(cv hdlval.Value, target hdlval.Type) (hdlval.Value, bool) {
	iv, ok := cv.(IntVal)
	if !ok {
		return nil, false
	}
	return iv, true
}

func (s *Semantics) IntegerType() hdlval.Type { return &Type{Width: 64} }

func (s *Semantics) NewMinus(a, b hdlval.Value) hdlval.Value { return &minus{A: a, B: b} }

func (s *Semantics) NewConcat(a, b hdlval.Value) hdlval.Value { return &ConcatNode{A: a, B: b} }

func (s *Semantics) NewCast(t hdlval.Type, v hdlval.Value) hdlval.Value {
	return &CastNode{T: t, V: v}
}

func (s *Semantics) NewAggregateOthers(others hdlval.Value) hdlval.Value {
	return &AggregateNode{Others: others}
}

func (s *Semantics) NewRange(left, right hdlval.Value, dir hdlval.Direction) hdlval.RangeExpr {
	return &Range{L: left, R: right, Dir: dir}
}

func (s *Semantics) NewSlice(prefix hdlval.Value, span hdlval.RangeExpr) hdlval.Slice {
	return &Slice{P: prefix, S: span}
}

// NewPaddingType builds a Type covering [maxBound+1, W-1] in spanType's
// own direction. When spanType's width isn't statically known there is
// nothing numeric to restrict, so spanType is returned unchanged.
func (s *Semantics) NewPaddingType(spanType hdlval.Type, maxBound uint64) hdlval.Type {
	span, ok := s.TypeSpan(spanType)
	if !ok {
		return spanType
	}
	w := s.SpanBitwidth(span)
	if w == 0 || maxBound+1 > w-1 {
		return spanType
	}
	lo, hi := maxBound+1, w-1
	var left, right hdlval.Value
	if span.Direction() == hdlval.DirUpto {
		left, right = IntVal{V: int64(lo)}, IntVal{V: int64(hi)}
	} else {
		left, right = IntVal{V: int64(hi)}, IntVal{V: int64(lo)}
	}
	return &Type{Span: &Range{L: left, R: right, Dir: span.Direction()}}
}
