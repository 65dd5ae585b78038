// Package scheme defines the supported list-numbering schemes, the
// character sets that identify them, and the conversion from a label
// to its integer ordinal.
package scheme

// ID identifies a numbering scheme.
type ID uint8

const (
	// Decimal counts 1, 2, 3, ...
	Decimal ID = iota
	// LowerAlpha counts a, b, ..., z, aa, ab, ...
	LowerAlpha
	// UpperAlpha counts A, B, ..., Z, AA, AB, ...
	UpperAlpha
	// MixedAlpha is the case-insensitive variant of the alphabetic
	// schemes. It exists only as a fallback for genuinely mixed-case
	// input; callers report it as UpperAlpha.
	MixedAlpha

	numSchemes
)

// String returns the scheme identifier used in results.
func (id ID) String() string {
	switch id {
	case Decimal:
		return "decimal"
	case LowerAlpha:
		return "lower-alpha"
	case UpperAlpha:
		return "upper-alpha"
	case MixedAlpha:
		return "mixed-alpha"
	default:
		return "unknown"
	}
}

// Set is a bitset of candidate schemes.
type Set uint8

// All contains every known scheme.
const All Set = 1<<numSchemes - 1

func of(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		s |= 1 << id
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	return s&(1<<id) != 0
}

// Without returns the set with id removed.
func (s Set) Without(id ID) Set {
	return s &^ (1 << id)
}

// Len returns the number of schemes in the set.
func (s Set) Len() int {
	n := 0
	for s != 0 {
		s &= s - 1
		n++
	}
	return n
}

// Single returns the set's only member. It reports false when the set
// is empty or holds more than one scheme.
func (s Set) Single() (ID, bool) {
	if s == 0 || s&(s-1) != 0 {
		return 0, false
	}
	for id := ID(0); id < numSchemes; id++ {
		if s.Has(id) {
			return id, true
		}
	}
	return 0, false
}

// classCandidates maps a character class to the schemes whose character
// set contains it. MixedAlpha's set is the union of the two exact-case
// alphabetic sets; Decimal's set is disjoint from all of them.
var classCandidates = [...]Set{
	classDigit: of(Decimal),
	classLower: of(LowerAlpha, MixedAlpha),
	classUpper: of(UpperAlpha, MixedAlpha),
	classOther: 0,
}

type charClass uint8

const (
	classDigit charClass = iota
	classLower
	classUpper
	classOther
)

func classify(r rune) charClass {
	switch {
	case r >= '0' && r <= '9':
		return classDigit
	case r >= 'a' && r <= 'z':
		return classLower
	case r >= 'A' && r <= 'Z':
		return classUpper
	default:
		return classOther
	}
}

// Categorize returns the set of schemes whose character set is a
// superset of the characters in label. Membership is purely lexical:
// a label made of digits categorizes as Decimal even if it is not a
// value the scheme would ever emit. A character outside every known
// set (punctuation, non-ASCII, digits mixed with letters) empties the
// result. The label must be non-empty.
func Categorize(label string) Set {
	s := All
	for _, r := range label {
		s &= classCandidates[classify(r)]
		if s == 0 {
			return 0
		}
	}
	return s
}
