// File: literal.go
// Title: Quoted and Verbatim Literal Encoders
// Description: Renders arbitrary strings as source-code string literals.
//              Quoted literals escape control characters, quotes and
//              non-printable runes using short, hexadecimal or Unicode
//              escape forms; verbatim literals only double quotes. Each
//              encoder has an exact length counterpart, and the pair is
//              guaranteed to agree for every input.
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-03-02
// Modified: 2026-05-07
//
// Change History:
// - 2026-03-02 v0.1.0: Initial encoder and length implementation
// - 2026-05-07 v0.1.1: Shared body encoder with the clipped variants

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

const (
	quote     = '"'
	backslash = '\\'

	// noFollow marks the end of an encoded segment, where the next output
	// character is a quote or an ellipsis and never a hex digit.
	noFollow rune = -1
)

const hexDigits = "0123456789ABCDEF"

// QuotedLiteral renders s as a double-quoted source literal.
func QuotedLiteral(s string) string {
	var b strings.Builder
	AppendQuotedLiteral(&b, s)
	return b.String()
}

// AppendQuotedLiteral appends the double-quoted literal form of s to b.
// The builder is grown once, sized by QuotedLiteralLen.
func AppendQuotedLiteral(b *strings.Builder, s string) {
	b.Grow(QuotedLiteralLen(s))
	b.WriteByte(quote)
	appendQuotedBody(b, s, noFollow)
	b.WriteByte(quote)
}

// QuotedLiteralLen returns len(QuotedLiteral(s)) without allocating.
func QuotedLiteralLen(s string) int {
	return 2 + quotedBodyLen(s, noFollow)
}

// VerbatimLiteral renders s as an @"..." literal where quotes are doubled
// and every other byte passes through unchanged.
func VerbatimLiteral(s string) string {
	var b strings.Builder
	AppendVerbatimLiteral(&b, s)
	return b.String()
}

// AppendVerbatimLiteral appends the verbatim literal form of s to b.
func AppendVerbatimLiteral(b *strings.Builder, s string) {
	b.Grow(VerbatimLiteralLen(s))
	b.WriteByte('@')
	b.WriteByte(quote)
	appendVerbatimBody(b, s)
	b.WriteByte(quote)
}

// VerbatimLiteralLen returns len(VerbatimLiteral(s)) without allocating.
func VerbatimLiteralLen(s string) int {
	return 3 + len(s) + strings.Count(s, `"`)
}

// appendQuotedBody encodes s between the quotes. follow is the rune the
// caller will emit directly after this segment, or noFollow when the next
// output is structural (a closing quote or an ellipsis); it feeds the
// hex-escape ambiguity check at the segment boundary.
func appendQuotedBody(b *strings.Builder, s string, follow rune) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte, escaped as its raw value.
			appendByteEscape(b, s[i], hexFollows(s, i+1, follow))
			i++
			continue
		}
		i += size
		if e, ok := shortEscape(r); ok {
			b.WriteByte(backslash)
			b.WriteByte(e)
			continue
		}
		if printable(r) {
			b.WriteRune(r)
			continue
		}
		switch {
		case r <= 0xFF:
			appendByteEscape(b, byte(r), hexFollows(s, i, follow))
		case r <= 0xFFFF:
			appendUnicodeEscape(b, uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			appendUnicodeEscape(b, uint16(hi))
			appendUnicodeEscape(b, uint16(lo))
		}
	}
}

// quotedBodyLen mirrors appendQuotedBody, returning the encoded length of
// the body without allocating. The two functions must agree for every
// input and every follow rune.
func quotedBodyLen(s string, follow rune) int {
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			n += byteEscapeLen(hexFollows(s, i+1, follow))
			i++
			continue
		}
		i += size
		if _, ok := shortEscape(r); ok {
			n += 2
			continue
		}
		if printable(r) {
			n += size
			continue
		}
		switch {
		case r <= 0xFF:
			n += byteEscapeLen(hexFollows(s, i, follow))
		case r <= 0xFFFF:
			n += 6
		default:
			n += 12
		}
	}
	return n
}

func appendVerbatimBody(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		b.WriteByte(c)
		if c == quote {
			b.WriteByte(quote)
		}
	}
}

// shortEscape returns the single-letter escape for r, if one exists.
func shortEscape(r rune) (byte, bool) {
	switch r {
	case 0:
		return '0', true
	case '\a':
		return 'a', true
	case '\b':
		return 'b', true
	case '\f':
		return 'f', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '\t':
		return 't', true
	case '\v':
		return 'v', true
	case quote:
		return '"', true
	case backslash:
		return '\\', true
	default:
		return 0, false
	}
}

// printable reports whether r passes through the encoder verbatim. Quotes
// and backslashes never reach this check; they are short-escaped first.
func printable(r rune) bool {
	return unicode.IsPrint(r)
}

// hexFollows reports whether the character emitted after position i would
// be a verbatim hex digit. A \xHH escape directly followed by a verbatim
// hex digit would change meaning, so the encoder widens to \u00HH in that
// case. Escaped characters always start with a backslash and are safe.
func hexFollows(s string, i int, follow rune) bool {
	var r rune
	if i < len(s) {
		var size int
		r, size = utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
	} else {
		r = follow
	}
	if r < 0 {
		return false
	}
	if _, ok := shortEscape(r); ok {
		return false
	}
	if !printable(r) {
		return false
	}
	return isHexDigit(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// appendByteEscape writes \xHH, widening to \u00HH when a verbatim hex
// digit follows.
func appendByteEscape(b *strings.Builder, c byte, wide bool) {
	b.WriteByte(backslash)
	if wide {
		b.WriteByte('u')
		b.WriteByte('0')
		b.WriteByte('0')
	} else {
		b.WriteByte('x')
	}
	b.WriteByte(hexDigits[c>>4])
	b.WriteByte(hexDigits[c&0xF])
}

func byteEscapeLen(wide bool) int {
	if wide {
		return 6
	}
	return 4
}

// appendUnicodeEscape writes \uHHHH for a single UTF-16 code unit.
func appendUnicodeEscape(b *strings.Builder, u uint16) {
	b.WriteByte(backslash)
	b.WriteByte('u')
	b.WriteByte(hexDigits[u>>12&0xF])
	b.WriteByte(hexDigits[u>>8&0xF])
	b.WriteByte(hexDigits[u>>4&0xF])
	b.WriteByte(hexDigits[u&0xF])
}
