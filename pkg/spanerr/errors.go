package spanerr

// Kind classifies an analysis failure so callers can branch on intent
// rather than on error text.
type Kind int

const (
	// KindNoSpan means spanType has no declared span.
	KindNoSpan Kind = iota
	// KindNotConstant means a bound or index could not be reduced to a constant.
	KindNotConstant
	// KindOutOfRange means a reduced index exceeds the declared span width.
	KindOutOfRange
	// KindMissingOthers means a hole exists and no others value was supplied.
	KindMissingOthers
	// KindConcatUndefined means analysis failed, or padding is required
	// without an others value to pad with.
	KindConcatUndefined
)

func (k Kind) String() string {
	switch k {
	case KindNoSpan:
		return "NoSpan"
	case KindNotConstant:
		return "NotConstant"
	case KindOutOfRange:
		return "OutOfRange"
	case KindMissingOthers:
		return "MissingOthers"
	case KindConcatUndefined:
		return "ConcatUndefined"
	default:
		return "Unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind with no underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}
