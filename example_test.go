package listalyze_test

import (
	"fmt"

	"github.com/jacoelho/listalyze"
)

func ExampleAnalyze() {
	result := listalyze.Analyze([]string{"A.", "B.", "D."})

	fmt.Println(result.Scheme)
	fmt.Println(result.Ordinals)
	fmt.Println(result.DefaultOrder)
	// Output:
	// upper-alpha
	// [1 2 4]
	// false
}

func ExampleAnalyzeWithOptions() {
	opts := listalyze.NewOptions().
		WithRequireDot(false).
		WithMixedCase(true)

	result := listalyze.AnalyzeWithOptions([]string{"a", "B", "c"}, opts)

	fmt.Println(result.Scheme)
	fmt.Println(result.Ordinals)
	fmt.Println(result.DefaultOrder)
	// Output:
	// upper-alpha
	// [1 2 3]
	// true
}

func ExampleResult_Recognized() {
	result := listalyze.Analyze([]string{"one", "two"})

	if !result.Recognized() {
		fmt.Println("fallback:", result.Labels)
	}
	// Output:
	// fallback: [one two]
}
