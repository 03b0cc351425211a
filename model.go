// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TermsKind selects how a Terms value supplies its lists.
type TermsKind uint8

const (
	// TermsDefault selects the stock term strings.
	TermsDefault TermsKind = iota
	// TermsStrings uses the lists carried by the Terms value verbatim.
	TermsStrings
)

// Terms directs custom truthiness behavior.
//
// The zero value is the default sentinel and classifies against the stock
// term strings. Values built with NewTerms, decoded from JSON or YAML, or
// written as a literal with at least one non-nil list carry their own lists. A Terms value shares the backing arrays of the slices it was
// built from; callers must not mutate those slices while the value is in use.
type Terms struct {
	// FalseyPrecise are falsey terms matched with exact, case-sensitive equality.
	FalseyPrecise []string `json:"falsey_precise,omitempty" yaml:"falsey_precise,omitempty"`
	// FalseyLowercase are falsey terms matched against the ASCII-lowercased candidate.
	FalseyLowercase []string `json:"falsey_lowercase,omitempty" yaml:"falsey_lowercase,omitempty"`
	// TrueyPrecise are truey terms matched with exact, case-sensitive equality.
	TrueyPrecise []string `json:"truey_precise,omitempty" yaml:"truey_precise,omitempty"`
	// TrueyLowercase are truey terms matched against the ASCII-lowercased candidate.
	TrueyLowercase []string `json:"truey_lowercase,omitempty" yaml:"truey_lowercase,omitempty"`
	// Kind selects stock or explicit lists.
	Kind TermsKind `json:"-" yaml:"-"`
}

// NewTerms builds explicit terms from four lists.
//
// Lists are used as supplied: no normalization, deduplication or validation.
// Nil and empty lists are accepted.
func NewTerms(falseyPrecise, falseyLowercase, trueyPrecise, trueyLowercase []string) Terms {
	return Terms{
		Kind:            TermsStrings,
		FalseyPrecise:   falseyPrecise,
		FalseyLowercase: falseyLowercase,
		TrueyPrecise:    trueyPrecise,
		TrueyLowercase:  trueyLowercase,
	}
}

// IsDefault reports whether terms is the stock sentinel.
//
// A value is the sentinel only when Kind is not TermsStrings and all four
// lists are nil.
func (t Terms) IsDefault() bool {
	if t.Kind == TermsStrings {
		return false
	}

	return t.FalseyPrecise == nil &&
		t.FalseyLowercase == nil &&
		t.TrueyPrecise == nil &&
		t.TrueyLowercase == nil
}

// termsFields is Terms without its codec methods.
type termsFields Terms

// MarshalJSON implements json.Marshaler.
// The default sentinel encodes as the stock lists.
func (t Terms) MarshalJSON() ([]byte, error) {
	return json.Marshal(termsFields(t.explicit()))
}

// UnmarshalJSON implements json.Unmarshaler.
// Decoded terms are always explicit, even when every list is absent.
func (t *Terms) UnmarshalJSON(data []byte) error {
	var fields termsFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	fields.Kind = TermsStrings
	*t = Terms(fields)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
// The default sentinel encodes as the stock lists.
func (t Terms) MarshalYAML() (any, error) {
	return termsFields(t.explicit()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Decoded terms are always explicit, even when every list is absent.
func (t *Terms) UnmarshalYAML(value *yaml.Node) error {
	var fields termsFields
	if err := value.Decode(&fields); err != nil {
		return err
	}

	fields.Kind = TermsStrings
	*t = Terms(fields)
	return nil
}

// explicit returns t with the sentinel replaced by the stock lists.
func (t Terms) explicit() Terms {
	if t.IsDefault() {
		return StockTermStrings()
	}

	return t
}

// TermList identifies one of the four term lists.
type TermList uint8

const (
	// TermListNone means no list matched.
	TermListNone TermList = iota
	// TermListFalseyPrecise is the case-sensitive falsey list.
	TermListFalseyPrecise
	// TermListTrueyPrecise is the case-sensitive truey list.
	TermListTrueyPrecise
	// TermListFalseyLowercase is the case-insensitive falsey list.
	TermListFalseyLowercase
	// TermListTrueyLowercase is the case-insensitive truey list.
	TermListTrueyLowercase
)

// String returns the list name as used in terms files.
func (l TermList) String() string {
	switch l {
	case TermListFalseyPrecise:
		return "falsey_precise"
	case TermListTrueyPrecise:
		return "truey_precise"
	case TermListFalseyLowercase:
		return "falsey_lowercase"
	case TermListTrueyLowercase:
		return "truey_lowercase"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l TermList) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *TermList) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*l = TermListNone
	case "falsey_precise":
		*l = TermListFalseyPrecise
	case "truey_precise":
		*l = TermListTrueyPrecise
	case "falsey_lowercase":
		*l = TermListFalseyLowercase
	case "truey_lowercase":
		*l = TermListTrueyLowercase
	default:
		return fmt.Errorf("unknown term list %q", text)
	}

	return nil
}

// truey reports whether a match in this list means truey.
func (l TermList) truey() bool {
	return l == TermListTrueyPrecise || l == TermListTrueyLowercase
}

// Decision is a classification produced by Classifier.
type Decision struct {
	// Term is the configured term that matched, empty when unclassified.
	Term string `json:"term,omitempty" yaml:"term,omitempty"`
	// Truey reports truey intent; meaningful only when Classified is set.
	Truey bool `json:"truey" yaml:"truey"`
	// Classified reports whether any list matched.
	Classified bool `json:"classified" yaml:"classified"`
	// List is the list that matched, TermListNone when unclassified.
	List TermList `json:"list" yaml:"list"`
}

// Value returns the decision in comma-ok form.
func (d Decision) Value() (value bool, ok bool) {
	return d.Truey, d.Classified
}

// Label returns "truey", "falsey" or "unclassified".
func (d Decision) Label() string {
	return Label(d.Value())
}

// Label names a comma-ok classification result.
func Label(value bool, ok bool) string {
	switch {
	case !ok:
		return "unclassified"
	case value:
		return "truey"
	default:
		return "falsey"
	}
}
