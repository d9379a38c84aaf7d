// File: utf8x_test.go
// Title: Unit Tests for UTF-8 Byte-Budget Counting
// Description: Tests for MaxCharsInBytes, EncodedLen, ClipString and
//              RuneBudget, with emphasis on surrogate-pair boundaries,
//              unpaired surrogates and the budget-exhaustion property.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-19
// Modified: 2026-03-19
//
// Change History:
// - 2026-03-19 v0.1.0: Initial test implementation

package utf8x

import (
	"testing"
	"unicode/utf16"
)

// units encodes s as UTF-16 for test inputs built from valid strings.
func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestMaxCharsInBytes(t *testing.T) {
	emoji := units("\U0001F600") // one surrogate pair, 4 UTF-8 bytes

	tests := []struct {
		name     string
		units    []uint16
		maxBytes int
		expected int
	}{
		{"empty input", nil, 10, 0},
		{"zero budget", units("abc"), 0, 0},
		{"ascii fits", units("abc"), 3, 3},
		{"ascii clipped", units("abcdef"), 4, 4},
		{"two-byte runes", units("äöü"), 4, 2},
		{"three-byte runes", units("こんにちは"), 7, 2},
		{"pair fits exactly", emoji, 4, 2},
		{"pair does not fit", emoji, 3, 0},
		{"pair after ascii", units("ab\U0001F600"), 5, 2},
		{"pair after ascii fits", units("ab\U0001F600"), 6, 4},
		{"unpaired high surrogate", []uint16{0xD834}, 3, 1},
		{"unpaired high surrogate no budget", []uint16{0xD834}, 2, 0},
		{"unpaired low surrogate", []uint16{0xDD73}, 3, 1},
		{"high surrogate then ascii", []uint16{0xD834, 'x'}, 4, 2},
		{"trailing high surrogate after content", append(units("ab"), 0xD834), 5, 3},
		{"trailing high surrogate clipped", append(units("ab"), 0xD834), 4, 2},
		{"mixed", append(units("aä"), 0xD83D, 0xDE00, 'z'), 8, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaxCharsInBytes(tt.units, tt.maxBytes)
			if got != tt.expected {
				t.Errorf("MaxCharsInBytes(%v, %d) = %d; want %d", tt.units, tt.maxBytes, got, tt.expected)
			}
		})
	}
}

// The prefix returned by MaxCharsInBytes must fit the budget, and the next
// code point the counter would consume must not.
func TestMaxCharsInBytesBudgetProperty(t *testing.T) {
	inputs := [][]uint16{
		units("plain ascii text"),
		units("größenänderung"),
		units("こんにちは世界"),
		units("mixed 日本 and \U0001F600\U0001F601 emoji"),
		{0xD834, 0xDD73, 0xD834, 'a', 0xDC00, 'b'},
		{'a', 0xD800, 0xD800, 0xDC00, 0xDFFF},
	}

	for _, in := range inputs {
		total := EncodedLen(in)
		for budget := 0; budget <= total+2; budget++ {
			n := MaxCharsInBytes(in, budget)
			used := EncodedLen(in[:n])
			if used > budget {
				t.Fatalf("prefix %d of %v uses %d bytes, budget %d", n, in, used, budget)
			}
			if n < len(in) {
				cost, width := unitCost(in, n)
				if used+cost <= budget {
					t.Fatalf("next code point (%d bytes, %d units) would still fit: %v budget %d prefix %d",
						cost, width, in, budget, n)
				}
			}
		}
	}
}

func TestEncodedLen(t *testing.T) {
	tests := []struct {
		name     string
		units    []uint16
		expected int
	}{
		{"empty", nil, 0},
		{"ascii", units("abc"), 3},
		{"two byte", units("ä"), 2},
		{"three byte", units("あ"), 3},
		{"surrogate pair", units("\U0001F600"), 4},
		{"unpaired high", []uint16{0xD834}, 3},
		{"unpaired low", []uint16{0xDD73}, 3},
		{"pair then unpaired", []uint16{0xD83D, 0xDE00, 0xD834}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodedLen(tt.units); got != tt.expected {
				t.Errorf("EncodedLen(%v) = %d; want %d", tt.units, got, tt.expected)
			}
		})
	}
}

func TestMaxCharsInBytesNegativeBudgetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("negative budget should panic")
		}
	}()
	MaxCharsInBytes(units("x"), -1)
}

func TestClipString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxBytes int
		expected string
	}{
		{"empty", "", 5, ""},
		{"fits", "abc", 3, "abc"},
		{"clip ascii", "abcdef", 4, "abcd"},
		{"zero budget", "abc", 0, ""},
		{"never splits rune", "aä", 2, "a"},
		{"three byte boundary", "あい", 5, "あ"},
		{"four byte boundary", "\U0001F600x", 3, ""},
		{"invalid bytes kept", "a\xFFb", 2, "a\xFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClipString(tt.input, tt.maxBytes); got != tt.expected {
				t.Errorf("ClipString(%q, %d) = %q; want %q", tt.input, tt.maxBytes, got, tt.expected)
			}
		})
	}
}

func TestRuneBudget(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxBytes int
		expected int
	}{
		{"empty", "", 4, 0},
		{"ascii", "abcd", 3, 3},
		{"multibyte", "あいう", 7, 2},
		{"all fits", "あいう", 9, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuneBudget(tt.input, tt.maxBytes); got != tt.expected {
				t.Errorf("RuneBudget(%q, %d) = %d; want %d", tt.input, tt.maxBytes, got, tt.expected)
			}
		})
	}
}
