// File: errors_test.go
// Title: Unit Tests for Structured Errors
// Description: Tests for the Error type, code and severity propagation
//              through wrapping, standard-library interoperability and the
//              generated argument-error constructors.
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-02-09
// Modified: 2026-08-30
//
// Change History:
// - 2026-02-09 v0.1.0: Initial test implementation
// - 2026-08-30 v0.1.1: Wrap coverage for codes buried behind foreign wrappers

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewAndError(t *testing.T) {
	err := New("something failed")
	if err.Error() != "something failed" {
		t.Errorf("Error() = %q; want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %q; want %q", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v; want nil", got)
		}
	})

	t.Run("wraps standard error", func(t *testing.T) {
		cause := stderrors.New("root cause")
		err := Wrap(cause, "operation failed")
		if err.Error() != "operation failed: root cause" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !stderrors.Is(err, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("carries code and severity through wrapping", func(t *testing.T) {
		inner := New("bad input").WithCode(CodeInvalidInput).WithSeverity(SeverityLow)
		err := Wrap(inner, "request rejected")
		if err.Code() != CodeInvalidInput {
			t.Errorf("Code() = %q; want %q", err.Code(), CodeInvalidInput)
		}
		if err.Severity() != SeverityLow {
			t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityLow)
		}
	})

	t.Run("carries code across foreign wrappers", func(t *testing.T) {
		inner := New("missing entry").WithCode(CodeNotFound).WithSeverity(SeverityHigh)
		mid := fmt.Errorf("lookup failed: %w", inner)
		err := Wrap(mid, "request rejected")
		if err.Code() != CodeNotFound {
			t.Errorf("Code() = %q; want %q", err.Code(), CodeNotFound)
		}
		if err.Severity() != SeverityHigh {
			t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityHigh)
		}
		if GetCode(err) != CodeNotFound || !HasCode(err, CodeNotFound) {
			t.Error("GetCode and HasCode should agree after wrapping")
		}
	})
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"nil error", nil, CodeInvalidInput, false},
		{"matching code", New("x").WithCode(CodeNotFound), CodeNotFound, true},
		{"non-matching code", New("x").WithCode(CodeNotFound), CodeInvalidInput, false},
		{"standard error", stderrors.New("plain"), CodeInvalidInput, false},
		{"code deeper in chain", Wrapf(New("x").WithCode(CodeNotFound), "outer"), CodeNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("HasCode() = %v; want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %q; want %q", got, CodeUnknown)
	}
	if got := GetSeverity(nil); got != SeverityMedium {
		t.Errorf("GetSeverity(nil) = %v; want %v", got, SeverityMedium)
	}
	err := New("x").WithCode(CodeInvalidFormat).WithSeverity(SeverityHigh)
	if got := GetCode(err); got != CodeInvalidFormat {
		t.Errorf("GetCode() = %q; want %q", got, CodeInvalidFormat)
	}
	if got := GetSeverity(err); got != SeverityHigh {
		t.Errorf("GetSeverity() = %v; want %v", got, SeverityHigh)
	}
}

func TestDetails(t *testing.T) {
	err := New("x").WithDetail("field", "count").WithDetails(map[string]any{"value": 7})

	if v, ok := err.Detail("field"); !ok || v != "count" {
		t.Errorf("Detail(field) = %v, %v", v, ok)
	}

	copied := err.Details()
	copied["field"] = "mutated"
	if v, _ := err.Detail("field"); v != "count" {
		t.Error("Details() copy should be independent of the error")
	}
}

func TestStringDeterministicDetailOrder(t *testing.T) {
	err := New("x").
		WithDetail("zeta", 1).
		WithDetail("alpha", 2).
		WithDetail("mid", 3)

	s := err.String()
	if strings.Index(s, "alpha") > strings.Index(s, "mid") ||
		strings.Index(s, "mid") > strings.Index(s, "zeta") {
		t.Errorf("String() details not sorted: %s", s)
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Severity
		ok       bool
	}{
		{"low", "low", SeverityLow, true},
		{"medium", "medium", SeverityMedium, true},
		{"high", "high", SeverityHigh, true},
		{"critical", "critical", SeverityCritical, true},
		{"unknown falls back to medium", "severe", SeverityMedium, false},
		{"empty", "", SeverityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSeverity(tt.input)
			if got != tt.expected || ok != tt.ok {
				t.Errorf("ParseSeverity(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestGeneratedConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		code     Code
		severity Severity
		message  string
	}{
		{
			"argument nil",
			NewArgumentNil("writer"),
			CodeArgumentNil,
			SeverityMedium,
			"argument writer must not be nil",
		},
		{
			"argument blank",
			NewArgumentBlank("title"),
			CodeArgumentBlank,
			SeverityLow,
			"argument title must not be blank",
		},
		{
			"argument out of range",
			NewArgumentOutOfRange("count", 12, 0, 10),
			CodeArgumentOutOfRange,
			SeverityMedium,
			"argument count is out of range, 12 is not in [0, 10]",
		},
		{
			"argument too long",
			NewArgumentTooLong("label", 300, 255),
			CodeArgumentTooLong,
			SeverityLow,
			"argument label is too long, length 300 exceeds 255",
		},
		{
			"invalid enum",
			NewInvalidEnum("mode", 99),
			CodeInvalidEnum,
			SeverityMedium,
			"argument mode holds invalid enum value 99",
		},
		{
			"invalid range",
			NewInvalidRange(10, 3),
			CodeInvalidRange,
			SeverityHigh,
			"invalid range, min 10 is greater than max 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %q; want %q", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v; want %v", tt.err.Severity(), tt.severity)
			}
			if tt.err.Error() != tt.message {
				t.Errorf("Error() = %q; want %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestGeneratedConstructorDetails(t *testing.T) {
	err := NewArgumentOutOfRange("count", 12, 0, 10)
	for key, want := range map[string]any{"name": "count", "value": 12, "min": 0, "max": 10} {
		if v, ok := err.Detail(key); !ok || v != want {
			t.Errorf("Detail(%q) = %v, %v; want %v", key, v, ok, want)
		}
	}
}
