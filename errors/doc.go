// Package errors provides structured error types for the classifier-bridge
// library.
//
// Errors are categorized by Phase (which boundary operation was running) and
// Kind (error category). The Error type includes rich context: field path,
// the engine's status code, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindResolution).
//		Path("options", "getMaxResults").
//		Detail("no such member").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Resolution(path, "go type *Options has no method GetLocale")
//	err := errors.EngineFailure(errors.PhaseInit, status, message)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
