// File: literal_test.go
// Title: Unit Tests for Literal Encoders
// Description: Tests for the quoted and verbatim literal encoders. The
//              central property is the agreement between every encoder and
//              its length counterpart, exercised over a corpus of control
//              characters, quotes, invalid UTF-8, astral runes and
//              hex-escape boundary cases.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-05-07
//
// Change History:
// - 2026-03-02 v0.1.0: Initial test implementation
// - 2026-05-07 v0.1.1: Corpus shared with the clipped variants

package stringx

import (
	"strings"
	"testing"
)

// literalCorpus is shared by every encoder/length agreement test.
var literalCorpus = []string{
	"",
	"hello",
	"say \"hi\"",
	"back\\slash",
	"line\nbreak\ttab",
	"\x00\a\b\f\n\r\t\v",
	"\x00" + "0",
	"\x1B",
	"\x1B1",
	"\x1BZ",
	"\x1B\n",
	"\x1B\x1B",
	"\x7F",
	"\x7Ff",
	"\x7FF",
	"\x7Fg",
	"café",
	"",
	" ",
	"​",
	"​а",
	"こんにちは",
	"\U0001F600",
	"\U0001D173",
	"\U0001D173abc",
	"\xFF",
	"\xFFf",
	"\xFF\xFE",
	"\xED\xA0\x80",
	"a\xC0b",
	"mixed \x01 and ￿ and \U0001F600 and \xFE end",
	strings.Repeat("x", 300),
	strings.Repeat("\x1Bf", 50),
}

func TestQuotedLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", `""`},
		{"plain ascii", "hello", `"hello"`},
		{"embedded quotes", `say "hi"`, `"say \"hi\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline and tab", "a\n\tb", `"a\n\tb"`},
		{"nul", "\x00", `"\0"`},
		{"nul before digit", "\x000", `"\00"`},
		{"bell backspace", "\a\b", `"\a\b"`},
		{"escape char", "\x1B", `"\x1B"`},
		{"escape char before hex digit", "\x1B1", `"\u001B1"`},
		{"escape char before non-hex", "\x1BZ", `"\x1BZ"`},
		{"escape char before escape", "\x1B\n", `"\x1B\n"`},
		{"delete before lowercase hex", "\x7Ff", `"\u007Ff"`},
		{"delete before uppercase hex", "\x7FF", `"\u007FF"`},
		{"delete before non-hex", "\x7Fg", `"\x7Fg"`},
		{"printable unicode", "café", `"café"`},
		{"next line control", "", `"\x85"`},
		{"no-break space", " ", `"\xA0"`},
		{"zero width space", "\u200b", `"\u200B"`},
		{"emoji passes through", "\U0001F600", `"` + "\U0001F600" + `"`},
		{"astral format char", "\U0001D173", `"\uD834\uDD73"`},
		{"invalid byte", "\xFF", `"\xFF"`},
		{"invalid byte before hex digit", "\xFFf", `"\u00FFf"`},
		{"invalid byte run", "\xFF\xFE", `"\xFF\xFE"`},
		{"surrogate bytes", "\xED\xA0\x80", `"\xED\xA0\x80"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QuotedLiteral(tt.input); got != tt.expected {
				t.Errorf("QuotedLiteral(%q) = %s; want %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQuotedLiteralLenAgreement(t *testing.T) {
	for _, s := range literalCorpus {
		got := QuotedLiteralLen(s)
		want := len(QuotedLiteral(s))
		if got != want {
			t.Errorf("QuotedLiteralLen(%q) = %d; encoder produced %d bytes", s, got, want)
		}
	}
}

func TestVerbatimLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", `@""`},
		{"plain", "hello", `@"hello"`},
		{"quotes doubled", `say "hi"`, `@"say ""hi"""`},
		{"backslash unchanged", `a\b`, `@"a\b"`},
		{"newline unchanged", "a\nb", "@\"a\nb\""},
		{"control unchanged", "\x1B", "@\"\x1B\""},
		{"invalid bytes unchanged", "\xFF\xFE", "@\"\xFF\xFE\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerbatimLiteral(tt.input); got != tt.expected {
				t.Errorf("VerbatimLiteral(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestVerbatimLiteralLenAgreement(t *testing.T) {
	for _, s := range literalCorpus {
		got := VerbatimLiteralLen(s)
		want := len(VerbatimLiteral(s))
		if got != want {
			t.Errorf("VerbatimLiteralLen(%q) = %d; encoder produced %d bytes", s, got, want)
		}
	}
}

func TestAppendQuotedLiteralAppends(t *testing.T) {
	var b strings.Builder
	b.WriteString("prefix ")
	AppendQuotedLiteral(&b, "x")
	if b.String() != `prefix "x"` {
		t.Errorf("builder = %q", b.String())
	}
}
