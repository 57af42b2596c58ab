package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseInit    Phase = "init"    // arena or instance initialization
	PhaseCombine Phase = "combine" // the bounded combine path
	PhaseEncode  Phase = "encode"  // wasm binary emission
	PhaseLoad    Phase = "load"    // guest module loading
	PhaseHost    Phase = "host"    // host-side region access
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidRegion  Kind = "invalid_region"
	KindInvalidInput   Kind = "invalid_input"
	KindMemoryGrowth   Kind = "memory_growth"
	KindNotFound       Kind = "not_found"
	KindNotInitialized Kind = "not_initialized"
	KindInstantiation  Kind = "instantiation"
	KindInvalidData    Kind = "invalid_data"
)

// Error is the structured error type used throughout the module
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Region string
	Detail string
	Need   int
	Avail  int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Region != "" {
		b.WriteString(" in region ")
		b.WriteString(e.Region)
	}

	if e.Need != 0 || e.Avail != 0 {
		fmt.Fprintf(&b, ": need %d bytes, have %d", e.Need, e.Avail)
	}

	if e.Detail != "" {
		if e.Need != 0 || e.Avail != 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Region sets the memory region the error relates to
func (b *Builder) Region(name string) *Builder {
	b.err.Region = name
	return b
}

// Need sets the number of bytes the operation required
func (b *Builder) Need(n int) *Builder {
	b.err.Need = n
	return b
}

// Avail sets the number of bytes actually available
func (b *Builder) Avail(n int) *Builder {
	b.err.Avail = n
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds creates an out of bounds error for a region access
func OutOfBounds(phase Phase, region string, need, avail int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Region: region,
		Need:   need,
		Avail:  avail,
	}
}

// InvalidRegion creates an error for a lookup of an unknown region name
func InvalidRegion(name string) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindInvalidRegion,
		Detail: fmt.Sprintf("unknown region %q", name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// MemoryGrowth reports a capacity violation: the block changed size.
// This is a defect in the guest, never a recoverable caller mistake.
func MemoryGrowth(before, after uint32) *Error {
	return &Error{
		Phase:  PhaseCombine,
		Kind:   KindMemoryGrowth,
		Detail: fmt.Sprintf("memory grew from %d to %d bytes during combine", before, after),
	}
}

// NotFound creates a missing export error
func NotFound(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: what,
	}
}

// NotInitialized creates a not initialized error
func NotInitialized(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: what + " not initialized",
	}
}

// Load wraps a module loading failure
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInstantiation,
		Detail: detail,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
