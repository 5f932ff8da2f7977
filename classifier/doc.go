// Package classifier exposes the bridge surface the managed caller drives.
//
// A Bridge owns a handle table and an engine factory and provides the three
// boundary operations:
//
//	Initialize(env, fd, length, offset, options) -> Handle
//	Classify(env, handle, buffer, width, height) -> List
//	Release(handle)
//
// # Handle Lifecycle
//
// Each handle moves through a strictly linear state machine:
//
//	uninitialized -> created -> (classify)* -> destroyed
//
// Initialize mints the handle, Release destroys it. At most one Release per
// handle; no operation is valid after it. Classify and Release must never
// run concurrently on the same handle, and an engine instance is never
// recreated under an old handle.
//
// # Failure Translation
//
// The internal operations are ordinary error-returning Go; only the
// exported surface translates. On failure an operation performs the
// two-step boundary protocol: raise through the env's Thrower with an
// assertion-error class and a fixed prefix naming the operation, the
// engine's diagnostic preserved verbatim, then yield the invalid-handle
// sentinel (Initialize) or a nil result (Classify). Each call throws at
// most once; the first failure wins and remaining work is abandoned.
// Release never throws, including on the invalid sentinel.
//
// # Logging
//
// Lifecycle events are logged through the layer's zap logger (see
// engine.SetLogger), each instance tagged with a correlation ID.
package classifier
