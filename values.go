package listalyze

import (
	"reflect"

	"github.com/jacoelho/listalyze/errors"
)

// AnalyzeValues is AnalyzeWithOptions for dynamically shaped input,
// such as a decoded JSON array. values must be a slice or array whose
// every element is a string; anything else is caller misuse and
// returns a *errors.TypeMismatch naming the offending type and, for
// element failures, its index. Unrecognized numbering schemes are
// reported through the Result, never through the error.
func AnalyzeValues(values any, opts Options) (Result, error) {
	labels, err := stringSequence(values)
	if err != nil {
		return Result{}, err
	}
	return AnalyzeWithOptions(labels, opts), nil
}

func stringSequence(values any) ([]string, error) {
	if labels, ok := values.([]string); ok {
		return labels, nil
	}

	rv := reflect.ValueOf(values)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, errors.NewNotSequence(typeName(values))
	}

	labels := make([]string, rv.Len())
	for i := range labels {
		el := rv.Index(i)
		if el.Kind() == reflect.Interface {
			el = el.Elem()
		}
		if !el.IsValid() {
			return nil, errors.NewElementNotString(i, "nil")
		}
		if el.Kind() != reflect.String {
			return nil, errors.NewElementNotString(i, el.Type().String())
		}
		labels[i] = el.String()
	}
	return labels, nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
