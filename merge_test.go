// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeTerms(t *testing.T) {
	t.Parallel()

	a := NewTerms([]string{"Nyet"}, nil, []string{"Da"}, nil)
	b := NewTerms(nil, []string{"nope", "nah"}, nil, []string{"yup"})

	merged := MergeTerms(a, NewTerms(nil, nil, nil, nil), b)
	want := NewTerms(
		[]string{"Nyet"},
		[]string{"nope", "nah"},
		[]string{"Da"},
		[]string{"yup"},
	)

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("MergeTerms mismatch (-want +got):\n%s", diff)
	}

	// Ensure result does not alias input backing arrays.
	b.FalseyLowercase[0] = "mutated"
	if merged.FalseyLowercase[0] != "nope" {
		t.Fatalf("merged terms were unexpectedly aliased")
	}
}

func TestMergeTermsResolvesDefault(t *testing.T) {
	t.Parallel()

	custom := NewTerms(nil, []string{"nyet"}, nil, []string{"da"})
	merged := MergeTerms(custom, Terms{})

	if merged.IsDefault() {
		t.Fatalf("merged terms must be explicit")
	}

	if merged.FalseyLowercase[0] != "nyet" || merged.TrueyLowercase[0] != "da" {
		t.Fatalf("custom terms must come first: %+v", merged)
	}

	for _, s := range []string{"NYET", "Da", "no", "Yes", "0", "1"} {
		if _, ok := StringIsTruthyWith(s, merged); !ok {
			t.Fatalf("StringIsTruthyWith(%q) must be classified by merged terms", s)
		}
	}
}

func TestMergeTermsEmpty(t *testing.T) {
	t.Parallel()

	merged := MergeTerms()
	if merged.IsDefault() {
		t.Fatalf("MergeTerms() must be explicit")
	}

	if _, ok := StringIsTruthyWith("yes", merged); ok {
		t.Fatalf("MergeTerms() must classify nothing")
	}
}

func TestTermsWithStockFalsey(t *testing.T) {
	t.Parallel()

	terms := NewTerms(nil, []string{"nope"}, nil, []string{"yup"}).WithStockFalsey()

	if !isTrueyWith("YUP", terms) {
		t.Fatalf("custom truey terms must be kept")
	}

	if value, ok := StringIsTruthyWith("No", terms); !ok || value {
		t.Fatalf("stock falsey terms must apply")
	}

	if _, ok := StringIsTruthyWith("nope", terms); ok {
		t.Fatalf("custom falsey terms must be replaced")
	}

	if _, ok := StringIsTruthyWith("yes", terms); ok {
		t.Fatalf("stock truey terms must not be added")
	}
}

func TestTermsWithStockTruey(t *testing.T) {
	t.Parallel()

	terms := NewTerms(nil, []string{"nope"}, nil, []string{"yup"}).WithStockTruey()

	if value, ok := StringIsTruthyWith("Nope", terms); !ok || value {
		t.Fatalf("custom falsey terms must be kept")
	}

	if !isTrueyWith("TRUE", terms) {
		t.Fatalf("stock truey terms must apply")
	}

	if _, ok := StringIsTruthyWith("yup", terms); ok {
		t.Fatalf("custom truey terms must be replaced")
	}

	if got := (Terms{}).WithStockTruey(); got.IsDefault() {
		t.Fatalf("WithStockTruey on default must return explicit stock terms")
	}
}

// isTrueyWith reports truey under custom terms.
func isTrueyWith(s string, terms Terms) bool {
	value, ok := StringIsTruthyWith(s, terms)
	return ok && value
}
