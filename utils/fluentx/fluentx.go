// File: fluentx.go
// Title: Fluent Chaining Helpers
// Description: Implements generic helpers for expression-style call
//              chaining: function piping, side-effect taps, in-place
//              configuration and zero-value fallbacks. All helpers are
//              pure apart from the callbacks they are handed.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-27
// Modified: 2026-03-27
//
// Change History:
// - 2026-03-27 v0.1.0: Initial implementation

package fluentx

// Pipe applies f to v. It reads left to right where nested calls would
// read inside out.
func Pipe[T, U any](v T, f func(T) U) U {
	return f(v)
}

// Pipe2 applies f then g to v.
func Pipe2[T, U, V any](v T, f func(T) U, g func(U) V) V {
	return g(f(v))
}

// Pipe3 applies f, g then h to v.
func Pipe3[T, U, V, W any](v T, f func(T) U, g func(U) V, h func(V) W) W {
	return h(g(f(v)))
}

// Tap invokes fn with v for its side effect and returns v unchanged.
func Tap[T any](v T, fn func(T)) T {
	fn(v)
	return v
}

// With applies each fn to v in order, threading the result through.
func With[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Default returns v unless it is the zero value of T, in which case it
// returns fallback.
func Default[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

// DefaultFunc returns v unless it is the zero value of T, in which case
// it returns the result of calling fallback. Use it when computing the
// fallback is expensive.
func DefaultFunc[T comparable](v T, fallback func() T) T {
	var zero T
	if v == zero {
		return fallback()
	}
	return v
}

// Ptr returns a pointer to v. It lifts literals and call results into
// optional struct fields.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns *p, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
