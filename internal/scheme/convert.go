package scheme

import "math"

// Convert maps a normalized label to its integer ordinal under the
// scheme. It reports false when the ordinal does not fit in an int;
// callers treat that the same as unrecognized input. The label must be
// non-empty and must have categorized into the scheme, so every
// character is known to be legal.
func Convert(id ID, label string) (int, bool) {
	switch id {
	case Decimal:
		return convertDecimal(label)
	case LowerAlpha:
		return convertAlpha(label, 'a')
	case UpperAlpha:
		return convertAlpha(label, 'A')
	case MixedAlpha:
		return convertMixedAlpha(label)
	default:
		return 0, false
	}
}

func convertDecimal(label string) (int, bool) {
	n := 0
	for i := 0; i < len(label); i++ {
		d := int(label[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// convertAlpha interprets the label as a bijective base-26 numeral:
// letters carry values 1..26 and there is no zero digit, so "z" is 26
// and "aa" is 27, reproducing the a, b, ..., z, aa, ab, ... sequence.
func convertAlpha(label string, base byte) (int, bool) {
	n := 0
	for i := 0; i < len(label); i++ {
		v := int(label[i]-base) + 1
		if n > (math.MaxInt-v)/26 {
			return 0, false
		}
		n = n*26 + v
	}
	return n, true
}

func convertMixedAlpha(label string) (int, bool) {
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		v := int(c-'A') + 1
		if n > (math.MaxInt-v)/26 {
			return 0, false
		}
		n = n*26 + v
	}
	return n, true
}
