// Package fixture is spananalyze's stand-in for a real VHDL/SystemC
// front end: a JSON-described Value tree plus a Semantics
// implementation over it, letting the CLI exercise the span package
// without a symbol table or elaborated design to query.
package fixture

import "github.com/hdlforge/spanalyze/pkg/hdlval"

// IntVal is a literal integer constant.
type IntVal struct{ V int64 }

func (v IntVal) Kind() hdlval.Kind   { return hdlval.KindIntValue }
func (v IntVal) Clone() hdlval.Value { return v }
func (v IntVal) Equals(other hdlval.Value) bool {
	o, ok := other.(IntVal)
	return ok && v.V == o.V
}
func (v IntVal) IntVal() int64 { return v.V }

// ConstVal is a named, non-integer constant.
type ConstVal struct{ Name string }

func (v ConstVal) Kind() hdlval.Kind   { return hdlval.KindConstValue }
func (v ConstVal) Clone() hdlval.Value { return v }
func (v ConstVal) Equals(other hdlval.Value) bool {
	o, ok := other.(ConstVal)
	return ok && v.Name == o.Name
}

// Var is an opaque named reference standing in for a signal or port.
// Its Type, when set, is what Semantics.SemanticType resolves for it.
type Var struct {
	Name string
	T    *Type
}

func (v *Var) Kind() hdlval.Kind   { return hdlval.KindOther }
func (v *Var) Clone() hdlval.Value { return &Var{Name: v.Name, T: v.T} }
func (v *Var) Equals(other hdlval.Value) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

// Member is a P[i] member access.
type Member struct {
	P hdlval.Value
	I hdlval.Value
}

func (m *Member) Kind() hdlval.Kind    { return hdlval.KindMember }
func (m *Member) Prefix() hdlval.Value { return m.P }
func (m *Member) Index() hdlval.Value  { return m.I }
func (m *Member) TakePrefix() hdlval.Value {
	p := m.P
	m.P = nil
	return p
}
func (m *Member) TakeIndex() hdlval.Value {
	i := m.I
	m.I = nil
	return i
}
func (m *Member) Clone() hdlval.Value {
	return &Member{P: cloneOrNil(m.P), I: cloneOrNil(m.I)}
}
func (m *Member) Equals(other hdlval.Value) bool {
	o, ok := other.(*Member)
	return ok && valEquals(m.P, o.P) && valEquals(m.I, o.I)
}

// Slice is a P[span] sub-slice access.
type Slice struct {
	P hdlval.Value
	S hdlval.RangeExpr
}

func (s *Slice) Kind() hdlval.Kind         { return hdlval.KindSlice }
func (s *Slice) Prefix() hdlval.Value      { return s.P }
func (s *Slice) Span() hdlval.RangeExpr    { return s.S }
func (s *Slice) SetSpan(r hdlval.RangeExpr) { s.S = r }
func (s *Slice) TakePrefix() hdlval.Value {
	p := s.P
	s.P = nil
	return p
}
func (s *Slice) Clone() hdlval.Value {
	var r hdlval.RangeExpr
	if s.S != nil {
		r = s.S.Clone().(hdlval.RangeExpr)
	}
	return &Slice{P: cloneOrNil(s.P), S: r}
}
func (s *Slice) Equals(other hdlval.Value) bool {
	o, ok := other.(*Slice)
	if !ok {
		return false
	}
	if !valEquals(s.P, o.P) {
		return false
	}
	if s.S == nil || o.S == nil {
		return s.S == o.S
	}
	return s.S.Equals(o.S)
}

// Range is a (left, right, direction) interval.
type Range struct {
	L, R hdlval.Value
	Dir  hdlval.Direction
}

func (r *Range) Kind() hdlval.Kind           { return hdlval.KindRange }
func (r *Range) Left() hdlval.Value          { return r.L }
func (r *Range) Right() hdlval.Value         { return r.R }
func (r *Range) Direction() hdlval.Direction { return r.Dir }
func (r *Range) TakeLeft() hdlval.Value {
	l := r.L
	r.L = nil
	return l
}
func (r *Range) TakeRight() hdlval.Value {
	v := r.R
	r.R = nil
	return v
}
func (r *Range) SetLeft(v hdlval.Value)  { r.L = v }
func (r *Range) SetRight(v hdlval.Value) { r.R = v }
func (r *Range) Clone() hdlval.Value {
	return &Range{L: cloneOrNil(r.L), R: cloneOrNil(r.R), Dir: r.Dir}
}
func (r *Range) Equals(other hdlval.Value) bool {
	o, ok := other.(*Range)
	return ok && valEquals(r.L, o.L) && valEquals(r.R, o.R) && r.Dir == o.Dir
}

// minus is the AST node NewMinus builds.
type minus struct{ A, B hdlval.Value }

func (n *minus) Kind() hdlval.Kind   { return hdlval.KindOther }
func (n *minus) Clone() hdlval.Value { return &minus{A: cloneOrNil(n.A), B: cloneOrNil(n.B)} }
func (n *minus) Equals(other hdlval.Value) bool {
	o, ok := other.(*minus)
	return ok && valEquals(n.A, o.A) && valEquals(n.B, o.B)
}

// ConcatNode is the AST node NewConcat builds. It is exported so the
// report subcommand can walk a finalized concatenation without a
// second capability interface.
type ConcatNode struct{ A, B hdlval.Value }

func (n *ConcatNode) Kind() hdlval.Kind   { return hdlval.KindOther }
func (n *ConcatNode) Clone() hdlval.Value { return &ConcatNode{A: cloneOrNil(n.A), B: cloneOrNil(n.B)} }
func (n *ConcatNode) Equals(other hdlval.Value) bool {
	o, ok := other.(*ConcatNode)
	return ok && valEquals(n.A, o.A) && valEquals(n.B, o.B)
}

// ConcatOperands exposes the two joined operands.
func (n *ConcatNode) ConcatOperands() (hdlval.Value, hdlval.Value) { return n.A, n.B }

// CastNode is the AST node NewCast builds.
type CastNode struct {
	T hdlval.Type
	V hdlval.Value
}

func (n *CastNode) Kind() hdlval.Kind   { return hdlval.KindOther }
func (n *CastNode) Clone() hdlval.Value { return &CastNode{T: n.T, V: cloneOrNil(n.V)} }
func (n *CastNode) Equals(other hdlval.Value) bool {
	o, ok := other.(*CastNode)
	return ok && n.T == o.T && valEquals(n.V, o.V)
}

// CastOperand exposes the value NewCast wraps.
func (n *CastNode) CastOperand() hdlval.Value { return n.V }

// AggregateNode is the AST node NewAggregateOthers builds.
type AggregateNode struct{ Others hdlval.Value }

func (n *AggregateNode) Kind() hdlval.Kind   { return hdlval.KindOther }
func (n *AggregateNode) Clone() hdlval.Value { return &AggregateNode{Others: cloneOrNil(n.Others)} }
func (n *AggregateNode) Equals(other hdlval.Value) bool {
	o, ok := other.(*AggregateNode)
	return ok && valEquals(n.Others, o.Others)
}

func cloneOrNil(v hdlval.Value) hdlval.Value {
	if v == nil {
		return nil
	}
	return v.Clone()
}

func valEquals(a, b hdlval.Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
}
