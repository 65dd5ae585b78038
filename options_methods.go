package listalyze

// NewOptions returns a default, valid options value: a trailing dot is
// required on every label and case-insensitive matching is disabled.
func NewOptions() Options {
	return Options{}
}

// WithRequireDot controls whether every label must carry a trailing
// period. When true, a label without one makes the whole sequence
// unrecognized; when false, trailing periods are stripped if present.
func (o Options) WithRequireDot(value bool) Options {
	o.requireDot = boolOption{value: value, set: true}
	return o
}

// WithMixedCase controls whether alphabetic labels may mix letter
// case. Case-insensitive matches are reported as SchemeUpperAlpha.
func (o Options) WithMixedCase(value bool) Options {
	o.mixedCase = boolOption{value: value, set: true}
	return o
}

func (o Options) resolve() resolvedOptions {
	return resolvedOptions{
		requireDot: o.requireDot.resolvedOr(true),
		mixedCase:  o.mixedCase.resolvedOr(false),
	}
}
