// Package listalyze infers which ordinal numbering scheme produced a
// sequence of list-item labels such as "A.", "B.", "D." and converts
// each label to its integer ordinal within that scheme.
//
// Supported schemes are decimal (1, 2, 3, ...), lower-alpha
// (a, b, ..., z, aa, ab, ...), and upper-alpha (A, B, ..., AA, ...);
// alphabetic labels count in bijective base-26, so "z" is 26 and "aa"
// is 27. A renderer can use the resolved scheme to pick a list style,
// the ordinals to override item values, and the default-order flag to
// skip overrides entirely when the sequence is already 1..N.
//
// Labels that fit no supported scheme are not an error: the result
// carries the trimmed original labels instead, for fallback rendering.
// Analysis is a pure function over the input and is safe for
// concurrent use.
package listalyze

import "github.com/jacoelho/listalyze/internal/scheme"

// Analyze analyzes labels with default options: every label must end
// in a period and letter case is significant.
func Analyze(labels []string) Result {
	return AnalyzeWithOptions(labels, NewOptions())
}

// AnalyzeWithOptions analyzes labels with explicit configuration.
//
// An empty input never resolves a scheme: the result has SchemeNone,
// an empty fallback label list, and DefaultOrder false.
func AnalyzeWithOptions(labels []string, opts Options) Result {
	cfg := opts.resolve()

	trimmed, stripped, ok := normalizeLabels(labels, cfg.requireDot)
	if !ok {
		return unrecognized(trimmed)
	}

	id, ok := resolveScheme(stripped, cfg.mixedCase)
	if !ok {
		return unrecognized(trimmed)
	}

	ordinals := make([]int, len(stripped))
	defaultOrder := true
	for i, l := range stripped {
		v, ok := scheme.Convert(id, l)
		if !ok {
			// Ordinal does not fit in an int.
			return unrecognized(trimmed)
		}
		ordinals[i] = v
		if v != i+1 {
			defaultOrder = false
		}
	}

	return Result{
		Scheme:       reportedScheme(id),
		Ordinals:     ordinals,
		DefaultOrder: defaultOrder,
	}
}

func unrecognized(trimmed []string) Result {
	return Result{Labels: trimmed}
}
