// File: arg.go
// Title: Generic Argument Wrapper
// Description: Implements the generic Arg wrapper and the nil, enum and
//              panic helpers shared by the typed wrappers. An Arg carries
//              an argument name and value through a fluent chain and
//              records at most one violation.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation

package check

import (
	"reflect"

	"github.com/mbeckett/plinth/core/errors"
)

// Validatable is implemented by enum-like types that can report whether
// they hold one of their defined values.
type Validatable interface {
	IsValid() bool
}

// Arg wraps an argument name and value for a fluent validation chain.
// The zero value is not useful; construct instances with Value.
type Arg[T any] struct {
	name  string
	value T
	err   error
}

// Value starts a validation chain for an arbitrarily typed argument.
func Value[T any](name string, value T) Arg[T] {
	return Arg[T]{name: name, value: value}
}

// Name returns the argument name.
func (a Arg[T]) Name() string {
	return a.name
}

// That applies a custom predicate. The want text describes the expected
// condition and is used in the violation message, e.g. "a closed interval".
func (a Arg[T]) That(pred func(T) bool, want string) Arg[T] {
	if a.err != nil {
		return a
	}
	if !pred(a.value) {
		a.err = errors.Newf("argument %s must be %s", a.name, want).
			WithCode(errors.CodeInvalidInput).
			WithDetail("name", a.name)
	}
	return a
}

// NotNil rejects nil values, including typed nil pointers, maps, slices,
// channels, functions and interfaces.
func (a Arg[T]) NotNil() Arg[T] {
	if a.err != nil {
		return a
	}
	if isNil(a.value) {
		a.err = errors.NewArgumentNil(a.name)
	}
	return a
}

// Valid rejects enum-like values whose IsValid reports false. Values that
// do not implement Validatable pass unchanged.
func (a Arg[T]) Valid() Arg[T] {
	if a.err != nil {
		return a
	}
	if v, ok := any(a.value).(Validatable); ok && !v.IsValid() {
		a.err = errors.NewInvalidEnum(a.name, a.value)
	}
	return a
}

// Err terminates the chain and returns the first recorded violation, or nil.
func (a Arg[T]) Err() error {
	return a.err
}

// Must terminates the chain, panicking with the first recorded violation
// and otherwise returning the validated value.
func (a Arg[T]) Must() T {
	if a.err != nil {
		panic(a.err)
	}
	return a.value
}

// Value returns the wrapped value regardless of recorded violations.
func (a Arg[T]) Value() T {
	return a.value
}

// NotNil reports a nil argument as an error without building a chain.
func NotNil(name string, value any) error {
	if isNil(value) {
		return errors.NewArgumentNil(name)
	}
	return nil
}

// ValidEnum reports an invalid enum-like argument as an error.
func ValidEnum[T Validatable](name string, value T) error {
	if !value.IsValid() {
		return errors.NewInvalidEnum(name, value)
	}
	return nil
}

// Must panics when err is non-nil. It is the terminal for callers that
// treat argument violations as programmer errors.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustValue panics when err is non-nil and otherwise returns v. It adapts
// two-value returns for use in variable initializers.
func MustValue[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// isNil handles both untyped nil and typed nil values carried in a
// non-nil interface.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
