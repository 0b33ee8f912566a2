package fixture

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/span"
)

// Doc is the on-disk shape of a span fixture: a span type, the partial
// index assignments over it, and an optional default ("others") value.
type Doc struct {
	Direction string     `json:"direction"`
	Width     uint64     `json:"width"` // 0 means the span's width is not statically known
	Others    *valueDoc  `json:"others"`
	Indices   []indexDoc `json:"indices"`
}

type indexDoc struct {
	Kind  string    `json:"kind"` // "expression", "range", or "slice"
	Index *valueDoc `json:"index,omitempty"`
	Low   *valueDoc `json:"low,omitempty"`
	High  *valueDoc `json:"high,omitempty"`
	Value *valueDoc `json:"value"`
}

// valueDoc is a discriminated union over every fixture.Value variant.
// "wconst" decodes Hex as Windows-1252 bytes into a ConstVal name, the
// same encoding hivectl's registry reader decodes ASCII value names
// with, reused here for fixture constants that need non-ASCII bytes.
type valueDoc struct {
	Kind   string    `json:"kind"`
	Value  int64     `json:"value,omitempty"`
	Name   string    `json:"name,omitempty"`
	Hex    string    `json:"hex,omitempty"`
	Width  uint64    `json:"width,omitempty"`
	Dir    string    `json:"dir,omitempty"`
	Prefix *valueDoc `json:"prefix,omitempty"`
	Index  *valueDoc `json:"index,omitempty"`
	Low    *valueDoc `json:"low,omitempty"`
	High   *valueDoc `json:"high,omitempty"`
}

// Loaded bundles everything AnalyzeSpans/CreateConcatFromSpans need,
// decoded from a fixture file.
type Loaded struct {
	SpanType hdlval.Type
	Indices  span.IndexMap
	Sem      *Semantics
	Others   hdlval.Value
}

// Load reads and decodes a fixture file.
func Load(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	dir, err := parseDirection(doc.Direction)
	if err != nil {
		return nil, err
	}

	spanType := buildSpanType(doc.Width, dir)

	indices := make(span.IndexMap, 0, len(doc.Indices))
	for n, idx := range doc.Indices {
		val, err := decodeValue(idx.Value)
		if err != nil {
			return nil, fmt.Errorf("indices[%d].value: %w", n, err)
		}
		info, err := decodeIndexInfo(idx, dir)
		if err != nil {
			return nil, fmt.Errorf("indices[%d]: %w", n, err)
		}
		indices = append(indices, span.Entry{Info: info, Value: val})
	}

	var others hdlval.Value
	if doc.Others != nil {
		others, err = decodeValue(doc.Others)
		if err != nil {
			return nil, fmt.Errorf("others: %w", err)
		}
	}

	return &Loaded{SpanType: spanType, Indices: indices, Sem: New(), Others: others}, nil
}

func buildSpanType(width uint64, dir hdlval.Direction) *Type {
	if width == 0 {
		// Unsized: one bound known (the natural "index 0" floor), the
		// other symbolic, so the width can't be reduced to a constant
		// but indices can still be rebased against the known minimum.
		known := IntVal{V: 0}
		unknown := &Var{Name: "__unsized_bound"}
		if dir == hdlval.DirUpto {
			return &Type{Span: &Range{L: known, R: unknown, Dir: dir}}
		}
		return &Type{Span: &Range{L: unknown, R: known, Dir: dir}}
	}
	var left, right hdlval.Value
	if dir == hdlval.DirUpto {
		left, right = IntVal{V: 0}, IntVal{V: int64(width) - 1}
	} else {
		left, right = IntVal{V: int64(width) - 1}, IntVal{V: 0}
	}
	return &Type{Span: &Range{L: left, R: right, Dir: dir}}
}

func decodeIndexInfo(idx indexDoc, dir hdlval.Direction) (span.IndexInfo, error) {
	switch idx.Kind {
	case "expression":
		v, err := decodeValue(idx.Index)
		if err != nil {
			return span.IndexInfo{}, err
		}
		return span.Expression(v), nil
	case "range":
		r, err := decodeBoundPair(idx.Low, idx.High, dir)
		if err != nil {
			return span.IndexInfo{}, err
		}
		return span.RangeIndex(r), nil
	case "slice":
		r, err := decodeBoundPair(idx.Low, idx.High, dir)
		if err != nil {
			return span.IndexInfo{}, err
		}
		return span.SliceIndex(r), nil
	default:
		return span.IndexInfo{}, fmt.Errorf("unknown index kind %q", idx.Kind)
	}
}

func decodeBoundPair(low, high *valueDoc, dir hdlval.Direction) (hdlval.RangeExpr, error) {
	lo, err := decodeValue(low)
	if err != nil {
		return nil, fmt.Errorf("low: %w", err)
	}
	hi, err := decodeValue(high)
	if err != nil {
		return nil, fmt.Errorf("high: %w", err)
	}
	var left, right hdlval.Value
	if dir == hdlval.DirUpto {
		left, right = lo, hi
	} else {
		left, right = hi, lo
	}
	return &Range{L: left, R: right, Dir: dir}, nil
}

func decodeValue(v *valueDoc) (hdlval.Value, error) {
	if v == nil {
		return nil, fmt.Errorf("missing value")
	}
	switch v.Kind {
	case "int":
		return IntVal{V: v.Value}, nil
	case "const":
		return ConstVal{Name: v.Name}, nil
	case "wconst":
		name, err := decodeWindows1252Hex(v.Hex)
		if err != nil {
			return nil, err
		}
		return ConstVal{Name: name}, nil
	case "var":
		vr := &Var{Name: v.Name}
		if v.Width > 0 {
			dir, err := parseDirection(v.Dir)
			if err != nil {
				return nil, err
			}
			vr.T = buildSpanType(v.Width, dir)
		}
		return vr, nil
	case "member":
		p, err := decodeValue(v.Prefix)
		if err != nil {
			return nil, fmt.Errorf("prefix: %w", err)
		}
		i, err := decodeValue(v.Index)
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		return &Member{P: p, I: i}, nil
	case "slice":
		p, err := decodeValue(v.Prefix)
		if err != nil {
			return nil, fmt.Errorf("prefix: %w", err)
		}
		dir, err := parseDirection(v.Dir)
		if err != nil {
			return nil, err
		}
		r, err := decodeBoundPair(v.Low, v.High, dir)
		if err != nil {
			return nil, err
		}
		return &Slice{P: p, S: r}, nil
	default:
		return nil, fmt.Errorf("unknown value kind %q", v.Kind)
	}
}

func decodeWindows1252Hex(s string) (string, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("decode hex: %w", err)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(decoded), nil
}

func parseDirection(s string) (hdlval.Direction, error) {
	switch s {
	case "upto":
		return hdlval.DirUpto, nil
	case "downto", "":
		return hdlval.DirDownto, nil
	default:
		return 0, fmt.Errorf("unknown direction %q, want %q or %q", s, "upto", "downto")
	}
}
