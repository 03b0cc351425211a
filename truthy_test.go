// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"bytes"
	"testing"
)

type envFlag string

type namedValue struct {
	raw string
}

func (v namedValue) String() string {
	return v.raw
}

// pointerValue implements fmt.Stringer on a pointer receiver.
type pointerValue struct {
	raw string
}

func (v *pointerValue) String() string {
	return v.raw
}

// switchState implements Truthy directly.
type switchState int

func (s switchState) IsTruthy() (bool, bool) {
	switch s {
	case 1:
		return true, true
	case 0:
		return false, true
	default:
		return false, false
	}
}

func TestStringTruthy(t *testing.T) {
	t.Parallel()

	for _, s := range stockFalseyInputs {
		v := String(s)
		if !v.IsFalsey() || v.IsTruey() {
			t.Fatalf("String(%q) must be falsey only", s)
		}
	}

	for _, s := range stockTrueyInputs {
		v := String(s)
		if v.IsFalsey() || !v.IsTruey() {
			t.Fatalf("String(%q) must be truey only", s)
		}
	}

	for _, s := range unclassifiedInputs {
		if _, ok := String(s).IsTruthy(); ok {
			t.Fatalf("String(%q) must be unclassified", s)
		}
	}
}

func TestFromString(t *testing.T) {
	t.Parallel()

	if !FromString(envFlag("Yes")).IsTruey() {
		t.Fatalf("FromString(envFlag(Yes)) must be truey")
	}

	if !FromString(envFlag(" off ")).IsFalsey() {
		t.Fatalf("FromString(envFlag(off)) must be falsey")
	}
}

func TestFromStringer(t *testing.T) {
	t.Parallel()

	if !IsTruey(FromStringer(namedValue{raw: "TRUE"})) {
		t.Fatalf("stringer TRUE must be truey")
	}

	if !IsFalsey(FromStringer(bytes.NewBufferString("No"))) {
		t.Fatalf("stringer No must be falsey")
	}

	if _, ok := FromStringer(nil).IsTruthy(); ok {
		t.Fatalf("nil stringer must be unclassified")
	}
}

func TestFromStringerTypedNil(t *testing.T) {
	t.Parallel()

	if !IsTruey(FromStringer(&pointerValue{raw: "yes"})) {
		t.Fatalf("pointer stringer yes must be truey")
	}

	if _, ok := FromStringer((*pointerValue)(nil)).IsTruthy(); ok {
		t.Fatalf("typed nil pointer stringer must be unclassified")
	}

	if _, ok := FromStringer((*namedValue)(nil)).IsTruthy(); ok {
		t.Fatalf("typed nil pointer to value stringer must be unclassified")
	}

	if _, ok := FromStringer((*bytes.Buffer)(nil)).IsTruthy(); ok {
		t.Fatalf("typed nil *bytes.Buffer must be unclassified")
	}
}

func TestBoolTruthy(t *testing.T) {
	t.Parallel()

	if !IsFalsey(Bool(false)) || IsTruey(Bool(false)) {
		t.Fatalf("Bool(false) must be falsey only")
	}

	if IsFalsey(Bool(true)) || !IsTruey(Bool(true)) {
		t.Fatalf("Bool(true) must be truey only")
	}

	yes, no := true, false
	if !IsTruey(FromBoolPtr(&yes)) || !IsFalsey(FromBoolPtr(&no)) {
		t.Fatalf("FromBoolPtr must follow pointed value")
	}

	if _, ok := FromBoolPtr(nil).IsTruthy(); ok {
		t.Fatalf("FromBoolPtr(nil) must be unclassified")
	}
}

func TestCustomTruthyImplementation(t *testing.T) {
	t.Parallel()

	if !IsTruey(switchState(1)) || !IsFalsey(switchState(0)) {
		t.Fatalf("derived helpers must follow IsTruthy")
	}

	if IsTruey(switchState(7)) || IsFalsey(switchState(7)) {
		t.Fatalf("unclassified value must be neither truey nor falsey")
	}
}

func TestIsTruthyValue(t *testing.T) {
	t.Parallel()

	yes := true
	cases := []struct {
		in        any
		wantValue bool
		wantOK    bool
	}{
		{in: nil},
		{in: "yes", wantValue: true, wantOK: true},
		{in: []byte("OFF"), wantOK: true},
		{in: true, wantValue: true, wantOK: true},
		{in: false, wantOK: true},
		{in: &yes, wantValue: true, wantOK: true},
		{in: (*bool)(nil)},
		{in: String("n"), wantOK: true},
		{in: switchState(1), wantValue: true, wantOK: true},
		{in: namedValue{raw: "On"}, wantValue: true, wantOK: true},
		{in: &pointerValue{raw: "f"}, wantOK: true},
		{in: (*pointerValue)(nil)},
		{in: (*namedValue)(nil)},
		{in: 1},
		{in: 0.5},
		{in: "orange"},
	}

	for _, tc := range cases {
		value, ok := IsTruthyValue(tc.in)
		if value != tc.wantValue || ok != tc.wantOK {
			t.Fatalf("IsTruthyValue(%#v)=(%v,%v), want (%v,%v)", tc.in, value, ok, tc.wantValue, tc.wantOK)
		}
	}
}
