// File: mathx.go
// Title: Generic Range and Comparison Helpers
// Description: Implements generic minimum, maximum, clamping and range
//              checks over ordered types. Clamp treats an inverted
//              interval as a programmer error and panics; ClampChecked
//              reports it as an error instead.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-02-23
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation

package mathx

import (
	"cmp"

	"github.com/mbeckett/plinth/core/errors"
)

// Real covers the built-in signed numeric types for which Abs is defined.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Min returns the smaller of a and b.
func Min[T cmp.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Clamp constrains v to the closed interval [lo, hi]. For every v the
// result satisfies lo <= Clamp(v, lo, hi) <= hi. An interval with
// lo > hi is a bug in the calling code and panics with an INVALID_RANGE
// error.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if lo > hi {
		panic(errors.NewInvalidRange(lo, hi))
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampChecked behaves like Clamp but reports an inverted interval as an
// error instead of panicking.
func ClampChecked[T cmp.Ordered](v, lo, hi T) (T, error) {
	if lo > hi {
		var zero T
		return zero, errors.NewInvalidRange(lo, hi)
	}
	return Clamp(v, lo, hi), nil
}

// InRange reports whether v lies in the closed interval [lo, hi]. An
// interval with lo > hi contains no values.
func InRange[T cmp.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}

// Abs returns the absolute value of v. The minimum value of a signed
// integer type has no positive counterpart and is returned unchanged.
func Abs[T Real](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
