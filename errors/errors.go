package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which boundary operation the error occurred in
type Phase string

const (
	PhaseMarshal  Phase = "marshal"  // managed options to native configuration
	PhaseFrame    Phase = "frame"    // frame descriptor construction
	PhaseInit     Phase = "init"     // engine instance creation
	PhaseClassify Phase = "classify" // inference call
	PhaseResults  Phase = "results"  // native result to managed objects
	PhaseRelease  Phase = "release"  // engine instance destruction
)

// Kind categorizes the error
type Kind string

const (
	KindResolution     Kind = "resolution"      // reflective member lookup failed
	KindTypeMismatch   Kind = "type_mismatch"   // member exists with wrong signature
	KindFieldMissing   Kind = "field_missing"   // required configuration field unreadable
	KindBufferUnmapped Kind = "buffer_unmapped" // byte buffer has no raw address
	KindEngine         Kind = "engine"          // failure reported by the native engine
	KindInvalidHandle  Kind = "invalid_handle"  // handle resolves to no live instance
	KindNilValue       Kind = "nil_value"       // required reference was nil
)

// Status is the native engine's numeric failure code, carried through
// untouched so the managed side can inspect it.
type Status int32

const (
	StatusOK       Status = 0
	StatusInternal Status = 1
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Status Status
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
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

// Message returns the diagnostic text that must reach the managed caller
// verbatim. For engine failures that is the engine's own message; otherwise
// it is the formatted error.
func (e *Error) Message() string {
	if e.Kind == KindEngine && e.Detail != "" {
		return e.Detail
	}
	return e.Error()
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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Status sets the engine status code
func (b *Builder) Status(s Status) *Builder {
	b.err.Status = s
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

// Resolution creates a reflective lookup failure. Lookup failures are
// integration faults, never recoverable conditions.
func Resolution(path []string, detail string) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindResolution,
		Path:   path,
		Detail: detail,
	}
}

// TypeMismatch creates an error for a member resolved with the wrong signature
func TypeMismatch(path []string, want, got string) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindTypeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("signature mismatch: want %s, got %s", want, got),
	}
}

// FieldMissing creates a missing configuration field error
func FieldMissing(path []string, fieldName string) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// BufferUnmapped creates an error for a byte buffer with no raw address
func BufferUnmapped(detail string) *Error {
	return &Error{
		Phase:  PhaseFrame,
		Kind:   KindBufferUnmapped,
		Detail: detail,
	}
}

// EngineFailure wraps a status and message reported by the native engine.
// The message is carried verbatim; translation layers must not rewrite it.
func EngineFailure(phase Phase, status Status, message string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEngine,
		Status: status,
		Detail: message,
	}
}

// InvalidHandle creates an error for a handle with no live engine instance
func InvalidHandle(phase Phase, handle uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidHandle,
		Detail: fmt.Sprintf("no engine instance for handle %d", handle),
	}
}

// NilValue creates an error for a required reference that was nil
func NilValue(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilValue,
		Detail: fmt.Sprintf("%s is nil", what),
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// From coerces err into a structured *Error. Errors already structured pass
// through; anything else becomes an engine failure in the given phase, its
// text preserved as the message.
func From(phase Phase, err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return EngineFailure(phase, StatusInternal, err.Error())
}
