// Package mathx implements generic range and comparison helpers.
//
// Package: mathx
// Title: Range Helpers for Ordered Types
// Description: Small generic helpers over ordered types: Min, Max, Clamp,
//              ClampChecked, InRange and Abs. Clamp panics on inverted
//              intervals because an interval is part of the calling
//              contract, not of the data.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-23
// Modified: 2026-02-23
//
// Change History:
// - 2026-02-23 v0.1.0: Initial implementation
package mathx
