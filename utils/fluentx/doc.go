// Package fluentx implements generic helpers for fluent call chaining.
//
// Package: fluentx
// Title: Fluent Chaining Helpers
// Description: Expression-style helpers that keep data flowing left to
//              right: Pipe for function application, Tap for side
//              effects, With for configuration chains and Default/Deref
//              for fallback selection.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-03-27
// Modified: 2026-03-27
//
// Change History:
// - 2026-03-27 v0.1.0: Initial implementation
package fluentx
