// Package engine defines the native classification engine contract and the
// value types that cross it.
//
// The engine itself lives outside this module: model loading, pixel-format
// conversion and the inference algorithm are all behind the Engine interface
// and the Factory that constructs instances from Options. This package only
// fixes the shapes exchanged with it.
//
// # Contract
//
//	Factory(options) -> Engine | error      construct from configuration
//	Engine.Classify(frame) -> result | error
//	Engine.Close() -> error                 destroy, at most once
//
// Engines report failures as errors carrying a status and a diagnostic
// message; the bridge preserves that message verbatim on its way to the
// managed caller.
//
// An Engine instance is not thread-safe. Callers serialize access per
// instance and never close an instance with a classify in flight.
package engine
