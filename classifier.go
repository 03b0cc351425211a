// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

// Classifier evaluates candidates against compiled terms.
//
// A Classifier is read-only after construction and safe for concurrent use.
type Classifier struct {
	falseyPrecise   map[string]struct{}
	trueyPrecise    map[string]struct{}
	falseyLowercase map[string]struct{}
	trueyLowercase  map[string]struct{}
	terms           Terms
}

// NewClassifier compiles terms into a classifier.
//
// The zero Terms value compiles the stock terms.
func NewClassifier(terms Terms) *Classifier {
	if terms.IsDefault() {
		terms = StockTermStrings()
	}

	return &Classifier{
		falseyPrecise:   compileTermSet(terms.FalseyPrecise),
		trueyPrecise:    compileTermSet(terms.TrueyPrecise),
		falseyLowercase: compileTermSet(terms.FalseyLowercase),
		trueyLowercase:  compileTermSet(terms.TrueyLowercase),
		terms:           terms,
	}
}

// Terms returns the explicit terms the classifier was compiled from.
func (c *Classifier) Terms() Terms {
	return c.terms
}

// Classify returns the decision for one candidate.
//
// Decision policy:
// - candidate is trimmed of surrounding whitespace
// - precise lists are checked before lowercase lists
// - falsey wins over truey at the same precision
func (c *Classifier) Classify(s string) Decision {
	s = trimCandidate(s)

	if _, ok := c.falseyPrecise[s]; ok {
		return newDecision(TermListFalseyPrecise, s)
	}

	if _, ok := c.trueyPrecise[s]; ok {
		return newDecision(TermListTrueyPrecise, s)
	}

	if len(c.falseyLowercase) == 0 && len(c.trueyLowercase) == 0 {
		return Decision{}
	}

	l := asciiLower(s)
	if _, ok := c.falseyLowercase[l]; ok {
		return newDecision(TermListFalseyLowercase, l)
	}

	if _, ok := c.trueyLowercase[l]; ok {
		return newDecision(TermListTrueyLowercase, l)
	}

	return Decision{}
}

// IsTruthy classifies s in comma-ok form.
func (c *Classifier) IsTruthy(s string) (value bool, ok bool) {
	return c.Classify(s).Value()
}

// IsFalsey reports whether s is classed as falsey.
func (c *Classifier) IsFalsey(s string) bool {
	d := c.Classify(s)
	return d.Classified && !d.Truey
}

// IsTruey reports whether s is classed as truey.
func (c *Classifier) IsTruey(s string) bool {
	d := c.Classify(s)
	return d.Classified && d.Truey
}

// compileTermSet builds lookup set from term list.
func compileTermSet(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		set[term] = struct{}{}
	}

	return set
}

// newDecision builds matched decision for list.
func newDecision(list TermList, term string) Decision {
	return Decision{
		Term:       term,
		Truey:      list.truey(),
		Classified: true,
		List:       list,
	}
}
