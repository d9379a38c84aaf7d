// File: severity.go
// Title: Error Severity Levels
// Description: Defines the severity scale attached to structured errors.
//              Severity expresses how urgently a caller should react to an
//              error and feeds into logging and reporting decisions.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-09
// Modified: 2026-02-09
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation

package errors

// Severity classifies how serious an error is.
type Severity int

const (
	// SeverityLow marks recoverable conditions such as rejected user input.
	SeverityLow Severity = iota
	// SeverityMedium is the default for operational failures.
	SeverityMedium
	// SeverityHigh marks failures that likely require intervention.
	SeverityHigh
	// SeverityCritical marks failures after which continuing is unsafe.
	SeverityCritical
)

// String returns the lowercase name of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name into a Severity value.
// It accepts the lowercase names produced by String.
func ParseSeverity(name string) (Severity, bool) {
	switch name {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityMedium, false
	}
}
