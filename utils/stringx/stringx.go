// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements common string helpers that extend the Go
//              standard library: emptiness and blankness checks,
//              Unicode-safe truncation and padding, and default-value
//              selection. All functions are pure and allocation-conscious.
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-02-16
// Modified: 2026-08-30
//
// Change History:
// - 2026-02-16 v0.1.0: Initial implementation
// - 2026-08-30 v0.1.1: Added Center

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty reports whether s has length zero.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate shortens s to at most maxRunes runes, appending ellipsis when
// content was removed. The cut never splits a multi-byte character. When
// the ellipsis itself does not fit, the bare truncated string is returned.
func Truncate(s string, maxRunes int, ellipsis string) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	ellipsisRunes := utf8.RuneCountInString(ellipsis)
	if ellipsisRunes >= maxRunes {
		return s[:runeIndex(s, maxRunes)]
	}
	return s[:runeIndex(s, maxRunes-ellipsisRunes)] + ellipsis
}

// PadLeft left-pads s with pad runes until it is width runes long.
// Strings already at least width runes long are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	return padded(s, width, pad, true)
}

// PadRight right-pads s with pad runes until it is width runes long.
// Strings already at least width runes long are returned unchanged.
func PadRight(s string, width int, pad rune) string {
	return padded(s, width, pad, false)
}

// Center pads s on both sides with pad runes until it is width runes
// long, putting the extra rune on the right when the padding is odd.
// Strings already at least width runes long are returned unchanged.
func Center(s string, width int, pad rune) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	var b strings.Builder
	b.Grow(len(s) + missing*utf8.RuneLen(pad))
	for i := 0; i < left; i++ {
		b.WriteRune(pad)
	}
	b.WriteString(s)
	for i := left; i < missing; i++ {
		b.WriteRune(pad)
	}
	return b.String()
}

func padded(s string, width int, pad rune, left bool) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + missing*utf8.RuneLen(pad))
	if !left {
		b.WriteString(s)
	}
	for i := 0; i < missing; i++ {
		b.WriteRune(pad)
	}
	if left {
		b.WriteString(s)
	}
	return b.String()
}

// FirstNonBlank returns the first candidate that is not blank, or the
// empty string when all are.
func FirstNonBlank(candidates ...string) string {
	for _, s := range candidates {
		if !IsBlank(s) {
			return s
		}
	}
	return ""
}

// DefaultIfEmpty returns s unless it is empty, in which case it returns
// fallback.
func DefaultIfEmpty(s, fallback string) string {
	if len(s) == 0 {
		return fallback
	}
	return s
}
