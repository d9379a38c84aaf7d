// File: errors.go
// Title: Core Error Implementation
// Description: Implements the structured Error type with codes, severities,
//              causes and a detail map. The type satisfies the standard
//              error interface, supports errors.Is/errors.As via Unwrap,
//              and offers a fluent API for attaching context.
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-02-09
// Modified: 2026-08-30
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation
// - 2026-08-30 v0.1.1: Wrap carries code and severity across foreign wrappers

package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Code is a stable, machine-readable error identifier.
type Code string

// Common codes shared by all modules. Module-specific codes for the
// argument-error family live in catalog_gen.go.
const (
	CodeUnknown       Code = "UNKNOWN"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeNotFound      Code = "NOT_FOUND"
)

// Error is a structured error with a code, a severity and optional details.
// The zero value is not useful; construct instances with New or Wrap.
type Error struct {
	message  string
	code     Code
	severity Severity
	cause    error
	details  map[string]any
}

// New creates an Error with the given message, CodeUnknown and
// SeverityMedium.
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
	}
}

// Newf creates an Error with a formatted message.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an additional message. The code and
// severity of the nearest *Error in the chain are carried over, even when
// intermediate wrappers (fmt.Errorf with %w, for example) sit in between,
// so GetCode stays consistent with HasCode across wrapping. Wrap returns
// nil when err is nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		cause:    err,
	}
	for c := err; c != nil; c = unwrapOnce(c) {
		if inner, ok := c.(*Error); ok {
			wrapped.code = inner.code
			wrapped.severity = inner.severity
			break
		}
	}
	return wrapped
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the error severity.
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches a single key-value detail.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value
	return e
}

// WithDetails attaches multiple key-value details.
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// Code returns the error code.
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity.
func (e *Error) Severity() Severity {
	return e.severity
}

// Detail returns a single detail value and whether it was set.
func (e *Error) Detail(key string) (any, bool) {
	v, ok := e.details[key]
	return v, ok
}

// Details returns a copy of the detail map. Mutating the returned map does
// not affect the error.
func (e *Error) Details() map[string]any {
	if len(e.details) == 0 {
		return nil
	}
	out := make(map[string]any, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// String returns a verbose representation including code, severity and
// details, with detail keys in deterministic order.
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [code=%s severity=%s", e.message, e.code, e.severity)
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" details={")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString("}")
	}
	b.WriteString("]")
	if e.cause != nil {
		fmt.Fprintf(&b, ": %s", e.cause.Error())
	}
	return b.String()
}

// HasCode reports whether err, or any error in its chain, is an *Error
// carrying the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if pe, ok := err.(*Error); ok && pe.code == code {
			return true
		}
		err = unwrapOnce(err)
	}
	return false
}

// GetCode returns the code of the outermost *Error in the chain, or
// CodeUnknown when the chain contains none.
func GetCode(err error) Code {
	for err != nil {
		if pe, ok := err.(*Error); ok {
			return pe.code
		}
		err = unwrapOnce(err)
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error in the chain, or
// SeverityMedium when the chain contains none.
func GetSeverity(err error) Severity {
	for err != nil {
		if pe, ok := err.(*Error); ok {
			return pe.severity
		}
		err = unwrapOnce(err)
	}
	return SeverityMedium
}

func unwrapOnce(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}
