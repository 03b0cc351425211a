// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import "strings"

// NormalizeWords converts a word list to lowercase-list form.
//
// Words are trimmed and ASCII-lowercased. Empty values are skipped and input
// order is preserved.
func NormalizeWords(words []string) []string {
	out := make([]string, 0, len(words))
	for _, word := range words {
		word = asciiLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}

		out = append(out, word)
	}

	return out
}
