// File: doc.go
// Title: Package Documentation for gen
// Description: Package overview for the plinthgen generator engine.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-04-14
// Modified: 2026-04-14
//
// Change History:
// - 2026-04-14 v0.1.0: Initial implementation

// Package gen implements the engine behind the plinthgen command: it
// loads a declarative error catalog from YAML or TOML, validates it
// structurally and renders the constructor family as formatted Go
// source.
//
// A catalog declares a version, a target package and a list of error
// definitions. Each definition names an exported constructor, an
// UPPER_SNAKE error code, a severity, a message template and typed
// fields. Message templates reference fields as {field}; at render
// time each reference becomes a fmt verb chosen by the field type, and
// every field is also attached to the resulting error as a detail
// entry.
//
// Rendering is deterministic and the output is gofmt-formatted, so a
// regenerated file is byte-identical when the catalog is unchanged.
// The generated file for this module's own catalog lives at
// core/errors/catalog_gen.go and is checked in.
package gen
