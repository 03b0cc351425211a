// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/truthy

package truthy

import (
	"fmt"
	"reflect"
)

// Truthy provides truthy attributes for an implementing type.
//
// Implementations supply only IsTruthy; IsFalsey and IsTruey derive from it.
type Truthy interface {
	// IsTruthy reports whether the value can be classed as truthy and, if so,
	// whether it is truey (value == true) or falsey (value == false).
	IsTruthy() (value bool, ok bool)
}

// IsFalsey reports whether v is classed as falsey.
func IsFalsey(v Truthy) bool {
	value, ok := v.IsTruthy()
	return ok && !value
}

// IsTruey reports whether v is classed as truey.
func IsTruey(v Truthy) bool {
	value, ok := v.IsTruthy()
	return ok && value
}

// String is a string classified against the stock terms.
type String string

var (
	_ Truthy = String("")
	_ Truthy = Bool(false)
	_ Truthy = stringerTruthy{}
	_ Truthy = boolPtrTruthy{}
)

// FromString converts any string-kinded value to String.
func FromString[S ~string](s S) String {
	return String(s)
}

// IsTruthy implements Truthy.
func (s String) IsTruthy() (value bool, ok bool) {
	return StringIsTruthy(string(s))
}

// IsFalsey reports whether s is classed as falsey.
func (s String) IsFalsey() bool {
	return IsFalsey(s)
}

// IsTruey reports whether s is classed as truey.
func (s String) IsTruey() bool {
	return IsTruey(s)
}

// stringerTruthy classifies the string view of a fmt.Stringer.
type stringerTruthy struct {
	s fmt.Stringer
}

// FromStringer adapts any value yielding a string view to Truthy.
//
// A nil Stringer, including a typed nil pointer, is unclassified.
func FromStringer(s fmt.Stringer) Truthy {
	return stringerTruthy{s: s}
}

func (v stringerTruthy) IsTruthy() (bool, bool) {
	if isNilStringer(v.s) {
		return false, false
	}

	return StringIsTruthy(v.s.String())
}

// isNilStringer reports whether s is nil or wraps a nil reference.
func isNilStringer(s fmt.Stringer) bool {
	if s == nil {
		return true
	}

	rv := reflect.ValueOf(s)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// Bool is a boolean that is always truthy.
type Bool bool

// IsTruthy implements Truthy.
func (b Bool) IsTruthy() (value bool, ok bool) {
	return bool(b), true
}

// boolPtrTruthy is an optional boolean.
type boolPtrTruthy struct {
	b *bool
}

// FromBoolPtr adapts an optional boolean to Truthy; nil is unclassified.
func FromBoolPtr(b *bool) Truthy {
	return boolPtrTruthy{b: b}
}

func (v boolPtrTruthy) IsTruthy() (bool, bool) {
	if v.b == nil {
		return false, false
	}

	return *v.b, true
}

// IsTruthyValue classifies an arbitrary value.
//
// Supported inputs, checked in order:
//   - Truthy implementations
//   - string and []byte, against the stock terms
//   - bool and *bool
//   - fmt.Stringer, against the stock terms
//
// Any other value, including nil, is unclassified.
func IsTruthyValue(v any) (value bool, ok bool) {
	switch x := v.(type) {
	case nil:
		return false, false
	case Truthy:
		return x.IsTruthy()
	case string:
		return StringIsTruthy(x)
	case []byte:
		return StringIsTruthy(string(x))
	case bool:
		return x, true
	case *bool:
		return FromBoolPtr(x).IsTruthy()
	case fmt.Stringer:
		return FromStringer(x).IsTruthy()
	default:
		return false, false
	}
}
