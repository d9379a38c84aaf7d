// File: clip.go
// Title: Clipped Literal Encoders
// Description: Renders long strings as literals that keep a head and tail
//              of the original content, joined by an ellipsis inside the
//              quotes. Clipping happens on rune boundaries and never splits
//              a multi-byte character. Exact length counterparts hold the
//              same agreement invariant as the full encoders.
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-05-07
// Modified: 2026-08-30
//
// Change History:
// - 2026-05-07 v0.1.0: Initial implementation
// - 2026-08-30 v0.1.1: Checked variants reporting negative lengths as errors

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/mbeckett/plinth/core/check"
)

// Ellipsis joins the head and tail of a clipped literal.
const Ellipsis = "…"

const ellipsisRune = '…'

// ClippedQuotedLiteral renders s as a double-quoted literal, keeping at
// most headLen leading and tailLen trailing runes when clipping shortens
// the content. Negative lengths are treated as zero. A string whose
// elided middle would be a single rune is rendered in full, since the
// ellipsis would not shorten it.
func ClippedQuotedLiteral(s string, headLen, tailLen int) string {
	var b strings.Builder
	AppendClippedQuotedLiteral(&b, s, headLen, tailLen)
	return b.String()
}

// AppendClippedQuotedLiteral appends the clipped double-quoted literal
// form of s to b.
func AppendClippedQuotedLiteral(b *strings.Builder, s string, headLen, tailLen int) {
	head, tail, clipped := clipSegments(s, headLen, tailLen)
	if !clipped {
		AppendQuotedLiteral(b, s)
		return
	}
	b.Grow(ClippedQuotedLiteralLen(s, headLen, tailLen))
	b.WriteByte(quote)
	appendQuotedBody(b, head, ellipsisRune)
	b.WriteString(Ellipsis)
	appendQuotedBody(b, tail, noFollow)
	b.WriteByte(quote)
}

// ClippedQuotedLiteralLen returns len(ClippedQuotedLiteral(s, headLen,
// tailLen)) without allocating.
func ClippedQuotedLiteralLen(s string, headLen, tailLen int) int {
	head, tail, clipped := clipSegments(s, headLen, tailLen)
	if !clipped {
		return QuotedLiteralLen(s)
	}
	return 2 + quotedBodyLen(head, ellipsisRune) + len(Ellipsis) + quotedBodyLen(tail, noFollow)
}

// ClippedQuotedLiteralChecked behaves like ClippedQuotedLiteral but
// reports a negative headLen or tailLen as an argument error instead of
// clamping it to zero.
func ClippedQuotedLiteralChecked(s string, headLen, tailLen int) (string, error) {
	if err := clipLengthsErr(headLen, tailLen); err != nil {
		return "", err
	}
	return ClippedQuotedLiteral(s, headLen, tailLen), nil
}

// ClippedVerbatimLiteral renders s as an @"..." literal with the same
// head/tail clipping rules as ClippedQuotedLiteral.
func ClippedVerbatimLiteral(s string, headLen, tailLen int) string {
	var b strings.Builder
	AppendClippedVerbatimLiteral(&b, s, headLen, tailLen)
	return b.String()
}

// AppendClippedVerbatimLiteral appends the clipped verbatim literal form
// of s to b.
func AppendClippedVerbatimLiteral(b *strings.Builder, s string, headLen, tailLen int) {
	head, tail, clipped := clipSegments(s, headLen, tailLen)
	if !clipped {
		AppendVerbatimLiteral(b, s)
		return
	}
	b.Grow(ClippedVerbatimLiteralLen(s, headLen, tailLen))
	b.WriteByte('@')
	b.WriteByte(quote)
	appendVerbatimBody(b, head)
	b.WriteString(Ellipsis)
	appendVerbatimBody(b, tail)
	b.WriteByte(quote)
}

// ClippedVerbatimLiteralLen returns len(ClippedVerbatimLiteral(s, headLen,
// tailLen)) without allocating.
func ClippedVerbatimLiteralLen(s string, headLen, tailLen int) int {
	head, tail, clipped := clipSegments(s, headLen, tailLen)
	if !clipped {
		return VerbatimLiteralLen(s)
	}
	return 3 + len(head) + strings.Count(head, `"`) + len(Ellipsis) +
		len(tail) + strings.Count(tail, `"`)
}

// ClippedVerbatimLiteralChecked behaves like ClippedVerbatimLiteral but
// reports a negative headLen or tailLen as an argument error instead of
// clamping it to zero.
func ClippedVerbatimLiteralChecked(s string, headLen, tailLen int) (string, error) {
	if err := clipLengthsErr(headLen, tailLen); err != nil {
		return "", err
	}
	return ClippedVerbatimLiteral(s, headLen, tailLen), nil
}

func clipLengthsErr(headLen, tailLen int) error {
	if err := check.Num("headLen", headLen).NonNegative().Err(); err != nil {
		return err
	}
	return check.Num("tailLen", tailLen).NonNegative().Err()
}

// clipSegments splits s into its kept head and tail. clipped is false when
// the whole string should be rendered instead: clipping only pays off when
// it elides at least two runes. Invalid UTF-8 bytes count as one rune
// each, matching utf8.RuneCountInString.
func clipSegments(s string, headLen, tailLen int) (head, tail string, clipped bool) {
	if headLen < 0 {
		headLen = 0
	}
	if tailLen < 0 {
		tailLen = 0
	}
	count := utf8.RuneCountInString(s)
	if count <= headLen+tailLen+1 {
		return "", "", false
	}
	return s[:runeIndex(s, headLen)], s[runeIndex(s, count-tailLen):], true
}

// runeIndex returns the byte offset of the n-th rune of s. n must not
// exceed the rune count.
func runeIndex(s string, n int) int {
	i := 0
	for ; n > 0; n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
