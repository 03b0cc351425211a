// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import "slices"

// MergeTerms merges term sets preserving input order.
//
// Default members resolve to the stock terms. Each output list is the
// concatenation of the matching input lists and never aliases them.
func MergeTerms(sets ...Terms) Terms {
	resolved := make([]termLists, len(sets))
	for i := range sets {
		resolved[i] = sets[i].resolve()
	}

	return NewTerms(
		concatLists(resolved, func(l termLists) []string { return l.falseyPrecise }),
		concatLists(resolved, func(l termLists) []string { return l.falseyLowercase }),
		concatLists(resolved, func(l termLists) []string { return l.trueyPrecise }),
		concatLists(resolved, func(l termLists) []string { return l.trueyLowercase }),
	)
}

// WithStockFalsey returns a copy of terms whose falsey lists are the stock ones.
func (t Terms) WithStockFalsey() Terms {
	if t.IsDefault() {
		return StockTermStrings()
	}

	t.FalseyPrecise = slices.Clone(stockFalseyPrecise)
	t.FalseyLowercase = slices.Clone(stockFalseyLowercase)
	return t
}

// WithStockTruey returns a copy of terms whose truey lists are the stock ones.
func (t Terms) WithStockTruey() Terms {
	if t.IsDefault() {
		return StockTermStrings()
	}

	t.TrueyPrecise = slices.Clone(stockTrueyPrecise)
	t.TrueyLowercase = slices.Clone(stockTrueyLowercase)
	return t
}

// concatLists joins one list kind from every resolved set.
func concatLists(sets []termLists, pick func(termLists) []string) []string {
	total := 0
	for _, set := range sets {
		total += len(pick(set))
	}

	out := make([]string, 0, total)
	for _, set := range sets {
		out = append(out, pick(set)...)
	}

	return out
}
