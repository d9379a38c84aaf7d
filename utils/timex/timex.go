// File: timex.go
// Title: Date and Time Utilities
// Description: Implements date-oriented time helpers: tolerant date
//              parsing, day/week/month/year boundary calculations,
//              calendar differences, relative-day predicates, ordering
//              helpers and compact duration formatting.
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-03-10
// Modified: 2026-08-30
//
// Change History:
// - 2026-03-10 v0.1.0: Initial implementation
// - 2026-08-30 v0.1.1: DaysBetween rebuilt in UTC to survive DST days

package timex

import (
	"fmt"
	"strings"
	"time"

	"github.com/mbeckett/plinth/core/errors"
)

// Common layouts accepted by ParseDate, in the order they are tried.
const (
	ISODate     = "2006-01-02"
	ISODateTime = "2006-01-02T15:04:05"
	EuroDate    = "02.01.2006"
	SlashDate   = "01/02/2006"
	CompactDate = "20060102"
)

var dateLayouts = []string{
	time.RFC3339,
	ISODateTime,
	ISODate,
	EuroDate,
	SlashDate,
	CompactDate,
}

// ParseDate parses a date string, trying the supported layouts in order.
// The location of the result is whatever the matched layout implies.
func ParseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.NewArgumentBlank("value")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Newf("unrecognized date %q", value).
		WithCode(errors.CodeInvalidFormat).
		WithDetail("value", value)
}

// StartOfDay returns t with the time-of-day cleared, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek returns the start of t's ISO week, which begins on Monday.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// EndOfWeek returns the last instant of t's ISO week, which ends on Sunday.
func EndOfWeek(t time.Time) time.Time {
	return EndOfDay(StartOfWeek(t).AddDate(0, 0, 6))
}

// StartOfMonth returns the first instant of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return EndOfDay(StartOfMonth(t).AddDate(0, 1, -1))
}

// StartOfYear returns the first instant of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last instant of t's year.
func EndOfYear(t time.Time) time.Time {
	return EndOfDay(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
}

// DaysBetween returns the number of calendar days from start to end,
// ignoring the time of day. The dates are rebuilt in UTC before
// subtracting, so DST transitions in the inputs' locations cannot
// shorten a day below 24 hours. The result is negative when end
// precedes start.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

// Age returns the number of whole years between birthDate and reference,
// accounting for whether the anniversary has been reached.
func Age(birthDate, reference time.Time) int {
	years := reference.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if anniversary.After(reference) {
		years--
	}
	return years
}

// IsSameDay reports whether a and b fall on the same calendar day in
// their respective locations.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the current local day.
func IsToday(t time.Time) bool {
	return IsSameDay(t, time.Now())
}

// IsYesterday reports whether t falls on the previous local day.
func IsYesterday(t time.Time) bool {
	return IsSameDay(t, time.Now().AddDate(0, 0, -1))
}

// IsTomorrow reports whether t falls on the next local day.
func IsTomorrow(t time.Time) bool {
	return IsSameDay(t, time.Now().AddDate(0, 0, 1))
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	return !IsWeekend(t)
}

// Min returns the earlier of a and b.
func Min(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b.
func Max(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// Clamp constrains t to the closed interval [lo, hi]. An interval with
// lo after hi is a bug in the calling code and panics with an
// INVALID_RANGE error.
func Clamp(t, lo, hi time.Time) time.Time {
	if lo.After(hi) {
		panic(errors.NewInvalidRange(lo, hi))
	}
	if t.Before(lo) {
		return lo
	}
	if t.After(hi) {
		return hi
	}
	return t
}

// FormatDurationCompact formats d in the compact "1d 2h 30m 4s" form.
// Zero components are omitted; a zero duration is "0s". Negative
// durations carry a leading minus sign.
func FormatDurationCompact(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return sign + strings.Join(parts, " ")
}
