package span

import (
	"github.com/hdlforge/spanalyze/pkg/hdlval"
	"github.com/hdlforge/spanalyze/pkg/spanerr"
)

// evaluateIndex reduces expr - min to a constant, non-negative
// integer. It is the sole bridge between symbolic index expressions
// and the integer partition lattice the rest of the engine operates
// on; both expr and min are cloned before being fed into the
// subtraction so the caller's originals, which min in particular is
// reused across every entry, are left untouched.
func evaluateIndex(expr, min hdlval.Value, sem hdlval.Semantics) (uint64, error) {
	lhs := sem.AssureSyntacticType(expr.Clone())
	diff := sem.Simplify(sem.NewMinus(lhs, min.Clone()))
	if !hdlval.IsConstant(diff) {
		return 0, spanerr.New(spanerr.KindNotConstant, "index does not reduce to a constant")
	}
	iv, ok := transformToInt(diff, sem)
	if !ok {
		return 0, spanerr.New(spanerr.KindNotConstant, "index constant is not integer-representable")
	}
	if iv < 0 {
		return 0, spanerr.New(spanerr.KindOutOfRange, "index reduces to a negative offset")
	}
	return uint64(iv), nil
}

// compareBounds computes b - a and coerces it to a constant integer.
// Only deltas of exactly ±1 denote adjacency to callers; compareBounds
// itself makes no adjacency judgment.
func compareBounds(a, b hdlval.Value, sem hdlval.Semantics) (int64, error) {
	lhs := sem.AssureSyntacticType(b.Clone())
	rhs := sem.AssureSyntacticType(a.Clone())
	diff := sem.Simplify(sem.NewMinus(lhs, rhs))
	if !hdlval.IsConstant(diff) {
		return 0, spanerr.New(spanerr.KindNotConstant, "bound delta is not constant")
	}
	iv, ok := transformToInt(diff, sem)
	if !ok {
		return 0, spanerr.New(spanerr.KindNotConstant, "bound delta is not integer-representable")
	}
	return iv, nil
}

func transformToInt(cv hdlval.Value, sem hdlval.Semantics) (int64, bool) {
	transformed, ok := sem.TransformConstant(cv, sem.IntegerType())
	if !ok || transformed == nil || transformed.Kind() != hdlval.KindIntValue {
		return 0, false
	}
	iv, ok := transformed.(hdlval.IntValue)
	if !ok {
		return 0, false
	}
	return iv.IntVal(), true
}
