package listalyze

import "github.com/jacoelho/listalyze/internal/scheme"

// Scheme names a recognized numbering scheme. The identifiers match
// the CSS list-style-type keywords for the supported schemes.
type Scheme string

const (
	// SchemeNone means the labels did not fit any supported scheme.
	SchemeNone Scheme = ""
	// SchemeDecimal is 1, 2, 3, ...
	SchemeDecimal Scheme = "decimal"
	// SchemeLowerAlpha is a, b, ..., z, aa, ab, ...
	SchemeLowerAlpha Scheme = "lower-alpha"
	// SchemeUpperAlpha is A, B, ..., Z, AA, AB, ... Case-insensitive
	// matches are also reported under this name.
	SchemeUpperAlpha Scheme = "upper-alpha"
)

// Result is the outcome of one analysis call.
//
// When a scheme is recognized, Scheme names it, Ordinals holds one
// converted value per input label, and Labels is nil. Otherwise Scheme
// is SchemeNone, Ordinals is nil, and Labels holds the original labels
// with surrounding whitespace trimmed but trailing dots intact, so a
// caller can fall back to rendering them verbatim.
type Result struct {
	Scheme       Scheme
	Ordinals     []int
	Labels       []string
	DefaultOrder bool
}

// Recognized reports whether a numbering scheme was resolved.
func (r Result) Recognized() bool {
	return r.Scheme != SchemeNone
}

func reportedScheme(id scheme.ID) Scheme {
	switch id {
	case scheme.Decimal:
		return SchemeDecimal
	case scheme.LowerAlpha:
		return SchemeLowerAlpha
	default:
		// UpperAlpha, and MixedAlpha coerced to its upper-case variant.
		return SchemeUpperAlpha
	}
}
