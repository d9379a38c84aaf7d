// Package check implements fluent argument validation for plinth.
//
// Package: check
// Title: Fluent Argument Validation
// Description: This package provides small value-type wrappers that carry an
//              argument name and value for the duration of a single fluent
//              call chain. Checks record only the first violation; the
//              terminal Err method reports it as a structured error from
//              core/errors, and the terminal Must method panics with it.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-02-12
// Modified: 2026-02-12
//
// Change History:
// - 2026-02-12 v0.1.0: Initial implementation
//
// # Overview
//
// Wrappers exist only for the duration of one expression and carry no
// lifecycle beyond it:
//
//	func NewBuffer(name string, size int) (*Buffer, error) {
//	    if err := check.Str("name", name).NotBlank().MaxRunes(64).Err(); err != nil {
//	        return nil, err
//	    }
//	    if err := check.Num("size", size).InRange(1, maxSize).Err(); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// Construction-time programmer errors use the Must terminal instead:
//
//	size := check.Num("size", size).Positive().Must()
//
// All checks are side-effect-free; a chain that passes performs no
// allocation beyond the stack-allocated wrapper itself.
package check
