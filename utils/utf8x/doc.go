// Package utf8x implements UTF-8 byte-budget counting for plinth.
//
// Package: utf8x
// Title: UTF-8 Byte-Budget Utilities
// Description: This package answers the question "how much of this text
//              fits into N bytes of UTF-8" for two input shapes: UTF-16
//              code-unit sequences (as received from Windows APIs or
//              JavaScript interop) and native Go strings. Surrogate pairs
//              are consumed atomically and unpaired surrogates are costed
//              as the replacement character, so the answer is always a
//              valid cut point.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-19
// Modified: 2026-03-19
//
// Change History:
// - 2026-03-19 v0.1.0: Initial implementation
//
// The guarantee behind MaxCharsInBytes: the returned prefix encodes to at
// most the budget, and the code point the counter would consume next does
// not fit. Callers can therefore truncate text for byte-limited sinks
// (fixed-size columns, datagram payloads, log fields) without producing
// broken encodings.
package utf8x
