// Package timex implements date-oriented time utilities.
//
// Package: timex
// Title: Date and Time Utilities
// Description: Helpers for the date arithmetic that time.Time leaves to
//              the caller: tolerant date parsing, calendar boundary
//              calculations (day, ISO week, month, year), calendar
//              differences and ages, relative-day predicates, ordering
//              helpers and compact duration formatting. All functions
//              respect the location carried by their inputs.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-10
// Modified: 2026-03-10
//
// Change History:
// - 2026-03-10 v0.1.0: Initial implementation
package timex
