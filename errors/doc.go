// Package errors provides structured error types for the lua-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, want/got type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRead, errors.KindTypeMismatch).
//		Path("config", "port").
//		Want("integer").
//		Got("string").
//		Detail("stack index %d", idx).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseRead, path, "integer", "string")
//	err := errors.BadSequenceKey(errors.PhaseRead, path, key, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
