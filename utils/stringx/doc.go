// Package stringx implements string utilities and the source-literal
// rendering engine for plinth.
//
// Package: stringx
// Title: Extended String Utilities and Literal Rendering
// Description: This package extends the Go standard library with common
//              string helpers (emptiness and blankness checks, truncation,
//              padding) and implements the quoted/verbatim literal encoder
//              used to render arbitrary strings as source-code string
//              literals in diagnostics and generated code.
// Author: mbeckett
// Version: v0.2.0
// Created: 2026-02-16
// Modified: 2026-05-07
//
// Change History:
// - 2026-02-16 v0.1.0: Initial implementation with core utilities
// - 2026-03-02 v0.1.1: Quoted and verbatim literal encoders with exact
//                      length pre-computation
// - 2026-05-07 v0.2.0: Clipped literal variants with head/tail retention
//
// # Literal rendering
//
// QuotedLiteral renders a string as a double-quoted literal with backslash
// escapes; VerbatimLiteral renders the @"..." form where only quotes are
// doubled. Every encoder has an exact length counterpart that computes the
// encoded length without allocating:
//
//	len(QuotedLiteral(s)) == QuotedLiteralLen(s)   for every s
//
// The length functions let callers size buffers exactly; the Append
// variants use them to grow the target builder once. Encoding is
// one-directional: the output is meant for human eyes and generated
// source, not for parsing back.
//
// The clipped variants keep the head and tail of long strings and join
// them with an ellipsis inside the quotes, preserving the same length
// invariant.
package stringx
