package scheme

import (
	"math"
	"strings"
	"testing"
)

func TestConvertDecimal(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{label: "1", want: 1},
		{label: "9", want: 9},
		{label: "10", want: 10},
		{label: "0", want: 0},
		{label: "007", want: 7},
		{label: "1001", want: 1001},
	}

	for _, tc := range tests {
		got, ok := Convert(Decimal, tc.label)
		if !ok {
			t.Fatalf("Convert(Decimal, %q) ok = false", tc.label)
		}
		if got != tc.want {
			t.Fatalf("Convert(Decimal, %q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestConvertAlphaBijectiveBase26(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{label: "a", want: 1},
		{label: "b", want: 2},
		{label: "z", want: 26},
		{label: "aa", want: 27},
		{label: "ab", want: 28},
		{label: "az", want: 52},
		{label: "ba", want: 53},
		{label: "zz", want: 702},
		{label: "aaa", want: 703},
	}

	for _, tc := range tests {
		got, ok := Convert(LowerAlpha, tc.label)
		if !ok {
			t.Fatalf("Convert(LowerAlpha, %q) ok = false", tc.label)
		}
		if got != tc.want {
			t.Fatalf("Convert(LowerAlpha, %q) = %d, want %d", tc.label, got, tc.want)
		}

		upper := strings.ToUpper(tc.label)
		got, ok = Convert(UpperAlpha, upper)
		if !ok {
			t.Fatalf("Convert(UpperAlpha, %q) ok = false", upper)
		}
		if got != tc.want {
			t.Fatalf("Convert(UpperAlpha, %q) = %d, want %d", upper, got, tc.want)
		}
	}
}

func TestConvertMixedAlphaFoldsCase(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{label: "a", want: 1},
		{label: "A", want: 1},
		{label: "aB", want: 28},
		{label: "Ab", want: 28},
		{label: "zZ", want: 702},
	}

	for _, tc := range tests {
		got, ok := Convert(MixedAlpha, tc.label)
		if !ok {
			t.Fatalf("Convert(MixedAlpha, %q) ok = false", tc.label)
		}
		if got != tc.want {
			t.Fatalf("Convert(MixedAlpha, %q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestConvertOverflow(t *testing.T) {
	if _, ok := Convert(Decimal, strings.Repeat("9", 30)); ok {
		t.Fatal("Convert(Decimal) accepted a 30-digit ordinal")
	}
	if _, ok := Convert(LowerAlpha, strings.Repeat("z", 20)); ok {
		t.Fatal("Convert(LowerAlpha) accepted a 20-letter ordinal")
	}
	if _, ok := Convert(MixedAlpha, strings.Repeat("Zz", 10)); ok {
		t.Fatal("Convert(MixedAlpha) accepted a 20-letter ordinal")
	}
}

func TestConvertDecimalMaxInt(t *testing.T) {
	// The largest representable ordinal still converts.
	label := "9223372036854775807"
	if math.MaxInt != math.MaxInt64 {
		t.Skip("test assumes 64-bit int")
	}
	got, ok := Convert(Decimal, label)
	if !ok {
		t.Fatalf("Convert(Decimal, %q) ok = false", label)
	}
	if got != math.MaxInt {
		t.Fatalf("Convert(Decimal, %q) = %d, want %d", label, got, math.MaxInt)
	}
	if _, ok := Convert(Decimal, "9223372036854775808"); ok {
		t.Fatal("Convert(Decimal) accepted MaxInt+1")
	}
}
