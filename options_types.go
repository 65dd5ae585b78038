package listalyze

type boolOption struct {
	value bool
	set   bool
}

func (o boolOption) resolvedOr(def bool) bool {
	if !o.set {
		return def
	}
	return o.value
}

// Options configures one analysis call.
type Options struct {
	requireDot boolOption
	mixedCase  boolOption
}

// resolvedOptions is Options with defaults applied.
type resolvedOptions struct {
	requireDot bool
	mixedCase  bool
}
