package listalyze

import "strings"

// normalizeLabels trims every label and applies the trailing-dot
// policy. trimmed always covers the full input and is what callers
// return when no scheme is recognized; stripped holds the labels ready
// for categorization and conversion. ok is false when the dot policy
// is violated or a label is empty after normalization.
func normalizeLabels(labels []string, requireDot bool) (trimmed, stripped []string, ok bool) {
	trimmed = make([]string, len(labels))
	for i, l := range labels {
		trimmed[i] = strings.TrimSpace(l)
	}

	stripped = make([]string, len(labels))
	if requireDot {
		for i, l := range trimmed {
			// At least one character before the dot.
			if len(l) < 2 || l[len(l)-1] != '.' {
				return trimmed, nil, false
			}
			stripped[i] = l[:len(l)-1]
		}
		return trimmed, stripped, true
	}

	for i, l := range trimmed {
		if l == "" {
			return trimmed, nil, false
		}
		if l[len(l)-1] == '.' {
			l = l[:len(l)-1]
		}
		if l == "" {
			// The label was a bare dot.
			return trimmed, nil, false
		}
		stripped[i] = l
	}
	return trimmed, stripped, true
}
