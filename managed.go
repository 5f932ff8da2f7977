package classifierbridge

// ErrorClass identifies which managed exception type a failure maps to.
// The set mirrors the exception classes the embedding runtimes recognize.
type ErrorClass string

const (
	AssertionError            ErrorClass = "assertion-error"
	IllegalArgumentError      ErrorClass = "illegal-argument"
	IllegalStateError         ErrorClass = "illegal-state"
	UnsupportedOperationError ErrorClass = "unsupported-operation"
)

// Thrower is the managed runtime's exception mechanism. The bridge calls
// Throw instead of returning a result whenever an operation fails; the
// managed side turns the call into whatever its runtime raises.
//
// The bridge throws at most once per exported operation.
type Thrower interface {
	Throw(class ErrorClass, message string)
}

// ByteBuffer is a direct, memory-mapped managed buffer. Bytes returns the
// backing memory without copying; a nil return means the buffer cannot be
// mapped to a raw address. The returned slice is borrowed: the bridge never
// retains it past the call it was obtained in, and the caller must keep the
// backing memory unmoved for that call's duration.
type ByteBuffer interface {
	Bytes() []byte
}

// List is an ordered managed collection. The bridge reads allow/deny lists
// through Len and At, and builds result collections through Append.
// Implementations preserve insertion order.
type List interface {
	Len() int
	At(i int) any
	Append(v any)
}

// ObjectModel constructs the managed value objects a classification result
// marshals into. NewList must honor the capacity hint so result collections
// are allocated to their exact final size.
type ObjectModel interface {
	NewList(capacity int) List
	NewCategory(label string, score float32) any
	NewClassifications(categories List, headIndex int) any
}

// Env is the per-call managed environment: the exception mechanism plus the
// object factory for results. One Env must not be shared between concurrent
// calls.
type Env interface {
	Thrower
	ObjectModel
}
