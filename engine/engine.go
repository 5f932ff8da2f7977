package engine

import (
	"github.com/wippyai/classifier-bridge/frame"
)

// Engine is one native classifier instance. Instances are constructed by a
// Factory, used by exactly one caller at a time, and closed exactly once.
type Engine interface {
	// Classify runs inference over the frame and returns the structured
	// result, or an error carrying the engine's status and diagnostic
	// message. The frame is borrowed for the duration of the call only.
	Classify(f *frame.Buffer) (*ClassificationResult, error)

	// Close destroys the instance. Calling any method after Close is
	// undefined by the engine contract.
	Close() error
}

// Factory constructs an engine instance from options, performing model
// loading and validation. A nil Engine with a nil error is a contract
// violation.
type Factory func(opts Options) (Engine, error)
