package fakesem

import "github.com/hdlforge/spanalyze/pkg/hdlval"

// SizedType builds a *Type with a statically known span [0, width-1]
// in the given direction.
func SizedType(width uint64, dir hdlval.Direction) *Type {
	var left, right hdlval.Value
	if dir == hdlval.DirUpto {
		left, right = IntVal{V: 0}, IntVal{V: int64(width) - 1}
	} else {
		left, right = IntVal{V: int64(width) - 1}, IntVal{V: 0}
	}
	return &Type{Span: &Range{L: left, R: right, Dir: dir}}
}

// UnsizedType builds a *Type whose span has a known minimum bound (0)
// but a symbolic, non-constant maximum bound, driving the
// !allSpecified path: SpanBitwidth can't reduce to a constant, but
// MinBound is still concrete enough to rebase index expressions
// against.
func UnsizedType(dir hdlval.Direction) *Type {
	known := IntVal{V: 0}
	unknown := &Var{Name: "hi"}
	if dir == hdlval.DirUpto {
		return &Type{Span: &Range{L: known, R: unknown, Dir: dir}}
	}
	return &Type{Span: &Range{L: unknown, R: known, Dir: dir}}
}

// ScalarVar builds a named *Var whose semantic type is a 1-bit scalar,
// the shape C6's prefix collapse looks for on a Member access.
func ScalarVar(name string) *Var {
	return &Var{Name: name, T: &Type{Width: 1}}
}

// SizedVar builds a named *Var whose semantic type is a statically
// sized aggregate, the shape C6's prefix collapse looks for on a
// Slice access.
func SizedVar(name string, width uint64, dir hdlval.Direction) *Var {
	return &Var{Name: name, T: SizedType(width, dir)}
}
