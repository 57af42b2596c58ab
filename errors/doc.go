// Package errors provides structured error types for the greetmem module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the memory-map context that matters when
// a bounded operation is refused: the region involved and the requested
// versus available byte counts.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCombine, errors.KindOutOfBounds).
//		Region("message").
//		Need(99).
//		Avail(96).
//		Detail("combined length exceeds message region").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseCombine, "message", need, avail)
//	err := errors.InvalidRegion("greeting")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
