// File: str.go
// Title: String Argument Checks
// Description: Implements the StrArg wrapper for string arguments,
//              including emptiness, blankness, rune-length and format
//              checks. UUID validation delegates to github.com/google/uuid
//              rather than a hand-rolled pattern.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation

package check

import (
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/mbeckett/plinth/core/errors"
)

// StrArg wraps a string argument for a fluent validation chain.
// Construct instances with Str.
type StrArg struct {
	name  string
	value string
	err   error
}

// Str starts a validation chain for a string argument.
func Str(name, value string) StrArg {
	return StrArg{name: name, value: value}
}

// NotEmpty rejects the empty string.
func (a StrArg) NotEmpty() StrArg {
	if a.err == nil && len(a.value) == 0 {
		a.err = errors.NewArgumentEmpty(a.name)
	}
	return a
}

// NotBlank rejects strings that are empty or contain only whitespace.
func (a StrArg) NotBlank() StrArg {
	if a.err != nil {
		return a
	}
	for _, r := range a.value {
		if !unicode.IsSpace(r) {
			return a
		}
	}
	a.err = errors.NewArgumentBlank(a.name)
	return a
}

// MinRunes rejects strings shorter than min runes.
func (a StrArg) MinRunes(min int) StrArg {
	if a.err != nil {
		return a
	}
	if n := utf8.RuneCountInString(a.value); n < min {
		a.err = errors.Newf("argument %s is too short, length %d is below %d", a.name, n, min).
			WithCode(errors.CodeArgumentOutOfRange).
			WithDetail("name", a.name).
			WithDetail("length", n).
			WithDetail("min", min)
	}
	return a
}

// MaxRunes rejects strings longer than max runes.
func (a StrArg) MaxRunes(max int) StrArg {
	if a.err != nil {
		return a
	}
	if n := utf8.RuneCountInString(a.value); n > max {
		a.err = errors.NewArgumentTooLong(a.name, n, max)
	}
	return a
}

// UUID rejects strings that do not parse as an RFC 4122 UUID.
func (a StrArg) UUID() StrArg {
	if a.err != nil {
		return a
	}
	if _, err := uuid.Parse(a.value); err != nil {
		a.err = errors.Newf("argument %s is not a valid UUID", a.name).
			WithCode(errors.CodeInvalidFormat).
			WithDetail("name", a.name).
			WithDetail("value", a.value)
	}
	return a
}

// OneOf rejects values not contained in the allowed set.
func (a StrArg) OneOf(allowed ...string) StrArg {
	if a.err != nil {
		return a
	}
	for _, v := range allowed {
		if a.value == v {
			return a
		}
	}
	a.err = errors.NewInvalidEnum(a.name, a.value)
	return a
}

// Err terminates the chain and returns the first recorded violation, or nil.
func (a StrArg) Err() error {
	return a.err
}

// Must terminates the chain, panicking with the first recorded violation
// and otherwise returning the validated value.
func (a StrArg) Must() string {
	if a.err != nil {
		panic(a.err)
	}
	return a.value
}

// Value returns the wrapped value regardless of recorded violations.
func (a StrArg) Value() string {
	return a.value
}
