// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import "slices"

// Precise stock lists must stay sorted; they are consumed by binary search.
// Lowercase stock lists are kept in most-likely order.
var (
	stockFalseyPrecise = []string{
		"0",
		"FALSE",
		"False",
		"NO",
		"No",
		"OFF",
		"Off",
		"false",
		"no",
		"off",
	}

	stockTrueyPrecise = []string{
		"1",
		"ON",
		"On",
		"TRUE",
		"True",
		"YES",
		"Yes",
		"on",
		"true",
		"yes",
	}

	stockFalseyLowercase = []string{
		"false",
		"no",
		"off",
		"0",
		"n",
		"f",
	}

	stockTrueyLowercase = []string{
		"true",
		"yes",
		"on",
		"1",
		"y",
		"t",
	}
)

// StockTermStrings returns the built-in terms of the package.
//
// This is handy when providing custom truey terms while relying on the stock
// falsey terms (see Terms.WithStockFalsey). Returned lists are copies and may
// be modified freely.
func StockTermStrings() Terms {
	return NewTerms(
		slices.Clone(stockFalseyPrecise),
		slices.Clone(stockFalseyLowercase),
		slices.Clone(stockTrueyPrecise),
		slices.Clone(stockTrueyLowercase),
	)
}

// stockLists is the resolved view of the default sentinel.
func stockLists() termLists {
	return termLists{
		falseyPrecise:   stockFalseyPrecise,
		falseyLowercase: stockFalseyLowercase,
		trueyPrecise:    stockTrueyPrecise,
		trueyLowercase:  stockTrueyLowercase,
		sortedPrecise:   true,
	}
}
