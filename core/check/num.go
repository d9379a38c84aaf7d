// File: num.go
// Title: Ordered Argument Checks
// Description: Implements the NumArg wrapper for arguments of ordered
//              types. Range bounds are validated eagerly; calling InRange
//              with an inverted interval is a programmer error and panics.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation

package check

import (
	"cmp"

	"github.com/mbeckett/plinth/core/errors"
)

// NumArg wraps an argument of an ordered type for a fluent validation
// chain. Construct instances with Num.
type NumArg[T cmp.Ordered] struct {
	name  string
	value T
	err   error
}

// Num starts a validation chain for an ordered argument.
func Num[T cmp.Ordered](name string, value T) NumArg[T] {
	return NumArg[T]{name: name, value: value}
}

// Min rejects values below lo.
func (a NumArg[T]) Min(lo T) NumArg[T] {
	if a.err == nil && a.value < lo {
		a.err = errors.Newf("argument %s must be at least %v, got %v", a.name, lo, a.value).
			WithCode(errors.CodeArgumentOutOfRange).
			WithDetail("name", a.name).
			WithDetail("value", a.value).
			WithDetail("min", lo)
	}
	return a
}

// Max rejects values above hi.
func (a NumArg[T]) Max(hi T) NumArg[T] {
	if a.err == nil && a.value > hi {
		a.err = errors.Newf("argument %s must be at most %v, got %v", a.name, hi, a.value).
			WithCode(errors.CodeArgumentOutOfRange).
			WithDetail("name", a.name).
			WithDetail("value", a.value).
			WithDetail("max", hi)
	}
	return a
}

// InRange rejects values outside the closed interval [lo, hi]. An inverted
// interval is a bug in the calling code, not in the argument, and panics
// with an INVALID_RANGE error.
func (a NumArg[T]) InRange(lo, hi T) NumArg[T] {
	if lo > hi {
		panic(errors.NewInvalidRange(lo, hi))
	}
	if a.err == nil && (a.value < lo || a.value > hi) {
		a.err = errors.NewArgumentOutOfRange(a.name, a.value, lo, hi)
	}
	return a
}

// Positive rejects values that are not strictly greater than the zero
// value of T.
func (a NumArg[T]) Positive() NumArg[T] {
	var zero T
	if a.err == nil && a.value <= zero {
		a.err = errors.Newf("argument %s must be positive, got %v", a.name, a.value).
			WithCode(errors.CodeArgumentOutOfRange).
			WithDetail("name", a.name).
			WithDetail("value", a.value)
	}
	return a
}

// NonNegative rejects values below the zero value of T.
func (a NumArg[T]) NonNegative() NumArg[T] {
	var zero T
	if a.err == nil && a.value < zero {
		a.err = errors.NewArgumentNegative(a.name, a.value)
	}
	return a
}

// OneOf rejects values not contained in the allowed set.
func (a NumArg[T]) OneOf(allowed ...T) NumArg[T] {
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
func (a NumArg[T]) Err() error {
	return a.err
}

// Must terminates the chain, panicking with the first recorded violation
// and otherwise returning the validated value.
func (a NumArg[T]) Must() T {
	if a.err != nil {
		panic(a.err)
	}
	return a.value
}

// Value returns the wrapped value regardless of recorded violations.
func (a NumArg[T]) Value() T {
	return a.value
}
