// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

// termLists is the resolved form of Terms consumed by classify.
type termLists struct {
	falseyPrecise   []string
	falseyLowercase []string
	trueyPrecise    []string
	trueyLowercase  []string
	// sortedPrecise enables binary search over precise lists.
	sortedPrecise bool
}

// resolve returns the concrete lists to match against.
//
// The default sentinel resolves to the stock lists; explicit terms are used verbatim.
func (t Terms) resolve() termLists {
	if t.IsDefault() {
		return stockLists()
	}

	return termLists{
		falseyPrecise:   t.FalseyPrecise,
		falseyLowercase: t.FalseyLowercase,
		trueyPrecise:    t.TrueyPrecise,
		trueyLowercase:  t.TrueyLowercase,
	}
}

// classify applies the matching order to one candidate.
//
// Order, first match wins:
// - falsey precise
// - truey precise
// - falsey lowercase
// - truey lowercase
func classify(s string, lists termLists) (value bool, ok bool) {
	s = trimCandidate(s)

	if containsTerm(lists.falseyPrecise, s, lists.sortedPrecise) {
		return false, true
	}

	if containsTerm(lists.trueyPrecise, s, lists.sortedPrecise) {
		return true, true
	}

	if len(lists.falseyLowercase) == 0 && len(lists.trueyLowercase) == 0 {
		return false, false
	}

	l := asciiLower(s)
	if containsTerm(lists.falseyLowercase, l, false) {
		return false, true
	}

	if containsTerm(lists.trueyLowercase, l, false) {
		return true, true
	}

	return false, false
}

// StringIsFalsey reports whether s, when trimmed, is deemed falsey by the stock terms.
//
// It is NOT guaranteed that StringIsFalsey(x) == !StringIsTruey(x).
func StringIsFalsey(s string) bool {
	value, ok := classify(s, stockLists())
	return ok && !value
}

// StringIsTruey reports whether s, when trimmed, is deemed truey by the stock terms.
//
// It is NOT guaranteed that StringIsTruey(x) == !StringIsFalsey(x).
func StringIsTruey(s string) bool {
	value, ok := classify(s, stockLists())
	return ok && value
}

// StringIsTruthy classifies s against the stock terms.
//
// Returns:
//   - ok == false: s is not classified
//   - value == false, ok == true: s is falsey
//   - value == true, ok == true: s is truey
func StringIsTruthy(s string) (value bool, ok bool) {
	return classify(s, stockLists())
}

// StringIsTruthyWith classifies s against the given terms.
//
// The zero Terms value classifies against the stock terms.
func StringIsTruthyWith(s string, terms Terms) (value bool, ok bool) {
	return classify(s, terms.resolve())
}
