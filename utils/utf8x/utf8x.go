// File: utf8x.go
// Title: UTF-8 Byte-Budget Counting
// Description: Computes how much of a UTF-16 sequence or a Go string fits
//              into a fixed number of UTF-8 bytes. Surrogate pairs encode
//              to four bytes and are consumed atomically; unpaired
//              surrogates encode as the three-byte replacement character.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-19
// Modified: 2026-03-19
//
// Change History:
// - 2026-03-19 v0.1.0: Initial implementation

package utf8x

import (
	"unicode/utf8"

	"github.com/mbeckett/plinth/core/errors"
)

// UTF-16 surrogate boundaries.
const (
	surrHigh = 0xD800
	surrLow  = 0xDC00
	surrEnd  = 0xE000
)

// replacementLen is the UTF-8 length of U+FFFD, the encoding cost of an
// unpaired surrogate.
const replacementLen = 3

// MaxCharsInBytes returns the length, in UTF-16 code units, of the longest
// prefix of units whose UTF-8 encoding fits into maxBytes bytes.
//
// A surrogate pair is consumed as a unit costing four bytes; when the pair
// does not fit, neither of its units is counted. An unpaired surrogate,
// including a high surrogate that is the last unit of the sequence, costs
// three bytes for the replacement character. maxBytes must not be
// negative.
func MaxCharsInBytes(units []uint16, maxBytes int) int {
	check(maxBytes)

	used := 0
	i := 0
	for i < len(units) {
		cost, width := unitCost(units, i)
		if used+cost > maxBytes {
			break
		}
		used += cost
		i += width
	}
	return i
}

// EncodedLen returns the number of bytes the UTF-8 encoding of units
// occupies, applying the same surrogate rules as MaxCharsInBytes.
func EncodedLen(units []uint16) int {
	n := 0
	for i := 0; i < len(units); {
		cost, width := unitCost(units, i)
		n += cost
		i += width
	}
	return n
}

// unitCost returns the UTF-8 byte cost of the code point starting at
// units[i] and the number of UTF-16 units it spans.
func unitCost(units []uint16, i int) (cost, width int) {
	u := units[i]
	switch {
	case u < 0x80:
		return 1, 1
	case u < 0x800:
		return 2, 1
	case u >= surrHigh && u < surrLow:
		if i+1 < len(units) && units[i+1] >= surrLow && units[i+1] < surrEnd {
			return 4, 2
		}
		return replacementLen, 1
	default:
		// Three-byte BMP range; unpaired low surrogates land here too,
		// costed as U+FFFD which is also three bytes.
		return 3, 1
	}
}

// ClipString returns the longest prefix of s that fits into maxBytes bytes
// without splitting a multi-byte rune. The result is a prefix of s itself;
// invalid UTF-8 bytes are kept as-is and cost one byte each. maxBytes must
// not be negative.
func ClipString(s string, maxBytes int) string {
	check(maxBytes)

	if len(s) <= maxBytes {
		return s
	}
	i := 0
	for i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		if i+size > maxBytes {
			break
		}
		i += size
	}
	return s[:i]
}

// RuneBudget returns the number of leading runes of s whose combined
// UTF-8 encoding fits into maxBytes bytes. Invalid bytes count as one
// rune of one byte. maxBytes must not be negative.
func RuneBudget(s string, maxBytes int) int {
	check(maxBytes)

	count := 0
	i := 0
	for i < len(s) {
		_, size := utf8.DecodeRuneInString(s[i:])
		if i+size > maxBytes {
			break
		}
		i += size
		count++
	}
	return count
}

func check(maxBytes int) {
	if maxBytes < 0 {
		panic(errors.NewArgumentNegative("maxBytes", maxBytes))
	}
}
