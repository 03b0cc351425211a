// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

/*
Package truthy classifies strings as expressing a boolean-like intent.

A string is "truey" when it reads as an affirmative value ("yes", "On", "1"),
"falsey" when it reads as a negative value ("no", "OFF", "0"), and
unclassified otherwise. Results use the comma-ok form: (true, true) is truey,
(false, true) is falsey and (false, false) is unclassified.

Basic flow:
  - ask with stock terms (`StringIsTruthy` / `StringIsTruey` / `StringIsFalsey`)
  - supply custom terms (`NewTerms` + `StringIsTruthyWith`)
  - optionally load terms from YAML files (`ParseTerms` / `LoadTermsFile`)
  - compile terms for repeated use (`NewClassifier`)

Matching order, first match wins:
  - falsey precise list (exact, case-sensitive)
  - truey precise list
  - falsey lowercase list (candidate ASCII-lowercased)
  - truey lowercase list

Candidates are trimmed of surrounding whitespace before matching.

Any value that yields a string view gains the same checks through the
`Truthy` interface (`String`, `FromString`, `FromStringer`).

For named term sets stored on disk, use `Provider`:
  - create provider with a profiles directory
  - request a compiled classifier by profile name
  - provider caches compiled classifiers and load errors
*/
package truthy
