// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and
//              tests, demonstrating literal encoding, clipping and the
//              basic string helpers.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-02
// Modified: 2026-03-02
//
// Change History:
// - 2026-03-02 v0.1.0: Initial example implementation

package stringx_test

import (
	"fmt"

	"github.com/mbeckett/plinth/utils/stringx"
)

func ExampleQuotedLiteral() {
	fmt.Println(stringx.QuotedLiteral("say \"hi\"\n"))
	fmt.Println(stringx.QuotedLiteral("tab\there"))
	// Output:
	// "say \"hi\"\n"
	// "tab\there"
}

func ExampleQuotedLiteralLen() {
	s := "caf\u00e9\n"
	lit := stringx.QuotedLiteral(s)

	fmt.Println(lit)
	fmt.Println(len(lit) == stringx.QuotedLiteralLen(s))
	// Output:
	// "café\n"
	// true
}

func ExampleVerbatimLiteral() {
	fmt.Println(stringx.VerbatimLiteral(`C:\temp\out.log`))
	fmt.Println(stringx.VerbatimLiteral(`say "hi"`))
	// Output:
	// @"C:\temp\out.log"
	// @"say ""hi"""
}

func ExampleClippedQuotedLiteral() {
	s := "abcdefghijklmnop"

	fmt.Println(stringx.ClippedQuotedLiteral(s, 4, 3))
	fmt.Println(stringx.ClippedQuotedLiteral("short", 4, 3))
	// Output:
	// "abcd…nop"
	// "short"
}

func ExampleTruncate() {
	text := "This is a long text that needs to be shortened"

	fmt.Println(stringx.Truncate(text, 20, "..."))
	fmt.Println(stringx.Truncate("short", 20, "..."))
	// Output:
	// This is a long te...
	// short
}

func ExamplePadLeft() {
	fmt.Println(stringx.PadLeft("42", 6, '0'))
	fmt.Println(stringx.PadRight("id", 6, '.'))
	// Output:
	// 000042
	// id....
}

func ExampleFirstNonBlank() {
	fmt.Println(stringx.FirstNonBlank("", "   ", "fallback", "later"))
	// Output:
	// fallback
}
