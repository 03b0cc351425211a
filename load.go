// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"fmt"
	"os"
)

// LoadTermsFile reads and parses terms from a file.
func LoadTermsFile(path string) (Terms, error) {
	f, err := os.Open(path)
	if err != nil {
		return Terms{}, fmt.Errorf("open terms file: %w", err)
	}
	defer func() { _ = f.Close() }()

	terms, err := ParseTerms(f)
	if err != nil {
		return Terms{}, fmt.Errorf("parse terms file %s: %w", path, err)
	}

	return terms, nil
}

// LoadTermsFiles reads and merges terms from files in the given order.
//
// Returned lists preserve file order and term order inside each file.
func LoadTermsFiles(paths ...string) (Terms, error) {
	sets := make([]Terms, 0, len(paths))
	for _, path := range paths {
		terms, err := LoadTermsFile(path)
		if err != nil {
			return Terms{}, err
		}

		sets = append(sets, terms)
	}

	return MergeTerms(sets...), nil
}
