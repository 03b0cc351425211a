// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// termsDocument is the on-disk terms file layout.
type termsDocument struct {
	FalseyPrecise      []string `yaml:"falsey_precise"`
	FalseyLowercase    []string `yaml:"falsey_lowercase"`
	TrueyPrecise       []string `yaml:"truey_precise"`
	TrueyLowercase     []string `yaml:"truey_lowercase"`
	Falsey             []string `yaml:"falsey"`
	Truey              []string `yaml:"truey"`
	InheritStockFalsey bool     `yaml:"inherit_stock_falsey"`
	InheritStockTruey  bool     `yaml:"inherit_stock_truey"`
}

// ParseTerms parses a YAML (or JSON) terms document from reader.
//
// Semantics:
// - precise and lowercase lists are taken verbatim
// - "falsey" and "truey" words are normalized and appended to lowercase lists
// - "inherit_stock_*" appends the stock lists after the document lists
// - unknown fields are rejected
// - an empty document yields explicit terms with empty lists
func ParseTerms(r io.Reader) (Terms, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc termsDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Terms{}, fmt.Errorf("%w: %w", ErrInvalidTerms, err)
	}

	terms := NewTerms(
		doc.FalseyPrecise,
		append(doc.FalseyLowercase, NormalizeWords(doc.Falsey)...),
		doc.TrueyPrecise,
		append(doc.TrueyLowercase, NormalizeWords(doc.Truey)...),
	)

	if doc.InheritStockFalsey {
		terms.FalseyPrecise = append(terms.FalseyPrecise, stockFalseyPrecise...)
		terms.FalseyLowercase = append(terms.FalseyLowercase, stockFalseyLowercase...)
	}

	if doc.InheritStockTruey {
		terms.TrueyPrecise = append(terms.TrueyPrecise, stockTrueyPrecise...)
		terms.TrueyLowercase = append(terms.TrueyLowercase, stockTrueyLowercase...)
	}

	return terms, nil
}

// ParseTermsString parses terms from string input.
func ParseTermsString(src string) (Terms, error) {
	return ParseTerms(strings.NewReader(src))
}
