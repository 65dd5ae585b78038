package listalyze

import "github.com/jacoelho/listalyze/internal/scheme"

// resolveScheme narrows the candidate schemes to at most one. The
// filter steps run in a fixed order so the tie-break priority stays
// auditable: candidates are intersected across all labels, then the
// case-insensitive scheme is dropped when disabled, then dropped again
// whenever an exact-case scheme also survived. Exactly one survivor
// resolves; zero or several (possible once schemes with overlapping
// character sets exist) fail.
func resolveScheme(labels []string, mixedCase bool) (scheme.ID, bool) {
	candidates := scheme.All
	for _, l := range labels {
		candidates &= scheme.Categorize(l)
		if candidates == 0 {
			return 0, false
		}
	}

	if !mixedCase {
		candidates = candidates.Without(scheme.MixedAlpha)
	}

	if candidates.Len() > 1 && candidates.Has(scheme.MixedAlpha) {
		candidates = candidates.Without(scheme.MixedAlpha)
	}

	return candidates.Single()
}
