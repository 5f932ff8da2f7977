// Package classifierbridge bridges a managed, garbage-collected caller to a
// native, handle-based image classification engine.
//
// The managed side drives classification through three operations: initialize
// an engine instance from a configuration object and a model descriptor,
// classify raw RGB frames against the returned handle, and release the handle
// when done. The native side is consumed through a narrow engine contract and
// never sees managed memory outside the call that produced it.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	classifierbridge/    Root package with managed-side boundary contracts
//	├── classifier/      High-level bridge API (initialize, classify, release)
//	├── engine/          Native engine contract and option/result value types
//	├── marshal/         Boundary marshalling in both directions
//	├── accessor/        Reflective member resolution over opaque caller objects
//	├── frame/           Zero-copy RGB frame descriptor
//	├── resource/        Handle table mapping opaque handles to engine instances
//	└── errors/          Structured error types for boundary failures
//
// # Quick Start
//
// Construct a bridge over an engine factory and drive it:
//
//	b := classifier.New(myEngineFactory)
//
//	env := classifierbridge.NewEnv()
//	h := b.Initialize(env, fd, length, offset, options)
//	if h == resource.Invalid {
//	    log.Fatal(env.Err())
//	}
//	defer b.Release(h)
//
//	results := b.Classify(env, h, pixels, width, height)
//
// # Memory Model
//
// Two incompatible memory models meet here. The managed caller owns every
// byte buffer and result object; the native engine owns its instance state
// behind an opaque handle. Nothing native retains a managed reference past
// the call that produced it, and nothing managed sees native layout. Frame
// descriptors alias caller memory without copying and are valid only for the
// duration of one classify call; the caller must keep the backing buffer
// pinned for that duration.
//
// # Failure Model
//
// Exported bridge operations never return partial results. On any failure
// the operation raises through the caller's Thrower exactly once, with a
// fixed prefix naming the operation and the engine's diagnostic message
// preserved verbatim, and yields the invalid-handle sentinel (initialize) or
// an absent result (classify). Release never raises.
//
// # Thread Safety
//
// The bridge and its handle table are safe for concurrent use across
// distinct handles. A single engine instance is not thread-safe: callers
// must serialize classify calls per handle and must never release a handle
// while a classify on it is in flight.
package classifierbridge
