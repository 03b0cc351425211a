// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"slices"
	"strings"
)

// trimCandidate strips surrounding Unicode whitespace from a candidate.
func trimCandidate(s string) string {
	return strings.TrimSpace(s)
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// containsTerm reports whether terms holds s, using binary search for sorted lists.
func containsTerm(terms []string, s string, sorted bool) bool {
	if sorted {
		_, found := slices.BinarySearch(terms, s)
		return found
	}

	return slices.Contains(terms, s)
}
