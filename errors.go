// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import "errors"

// Sentinel errors for truthy operations.
//
// Classification itself never fails; these errors belong to term loading and
// profile resolution.
var (
	// ErrInvalidTerms indicates malformed or unsupported terms document.
	ErrInvalidTerms = errors.New("invalid terms")
	// ErrInvalidProfileName indicates invalid provider profile name.
	ErrInvalidProfileName = errors.New("invalid profile name")
	// ErrProfileNotFound indicates missing profile file under provider root.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrNilProvider indicates a nil Provider receiver.
	ErrNilProvider = errors.New("provider is nil")
	// ErrProfilePathOutsideRoot indicates resolved profile path escaped provider root.
	ErrProfilePathOutsideRoot = errors.New("profile path is outside provider root")
)
