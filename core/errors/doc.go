// Package errors implements the structured error type used across plinth.
//
// Package: errors
// Title: Structured Errors with Codes and Severity
// Description: This package provides the Error type shared by all plinth
//              modules. An Error carries a human-readable message, a
//              machine-readable Code, a Severity, an optional cause and a
//              detail map, while remaining fully compatible with the
//              standard library error interfaces (errors.Is, errors.As,
//              errors.Unwrap).
// Author: mbeckett
// Version: v0.1.1
// Created: 2026-02-09
// Modified: 2026-04-18
//
// Change History:
// - 2026-02-09 v0.1.0: Initial implementation with codes and severities
// - 2026-04-18 v0.1.1: Argument-error constructors moved to the generated
//                      catalog (see catalog.yaml and catalog_gen.go)
//
// # Overview
//
// Errors are created with New or Wrap and refined with the fluent With*
// methods:
//
//	err := errors.New("catalog entry rejected").
//	    WithCode(errors.CodeInvalidInput).
//	    WithDetail("entry", name)
//
// The argument-error constructor family (NewArgumentNil, NewArgumentBlank,
// NewArgumentOutOfRange, ...) is boilerplate and is therefore generated by
// the plinthgen tool from catalog.yaml. The generated file is checked in;
// regenerate it after editing the catalog.
package errors

//go:generate go run github.com/mbeckett/plinth/cmd/plinthgen generate --catalog catalog.yaml --out catalog_gen.go
