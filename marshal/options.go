package marshal

import (
	"github.com/wippyai/classifier-bridge/accessor"
	"github.com/wippyai/classifier-bridge/engine"
	"github.com/wippyai/classifier-bridge/errors"
)

// Getter member names on the managed configuration object. These form the
// contract the caller's options type must satisfy; a missing or mistyped
// member is a version mismatch, not a recoverable condition.
const (
	memberDisplayNamesLocale  = "GetDisplayNamesLocale"
	memberMaxResults          = "GetMaxResults"
	memberIsScoreThresholdSet = "GetIsScoreThresholdSet"
	memberScoreThreshold      = "GetScoreThreshold"
	memberClassNameAllowList  = "GetClassNameAllowList"
	memberClassNameDenyList   = "GetClassNameDenyList"
)

// Options reads the managed configuration object into a native engine
// configuration. The marshal is atomic: on any failure the zero Options and
// the error are returned, never a partially filled configuration.
func Options(acc *accessor.Accessor, obj any) (engine.Options, error) {
	var opts engine.Options

	if obj == nil {
		return engine.Options{}, errors.NilValue(errors.PhaseMarshal, "options object")
	}

	locale, err := acc.String(obj, memberDisplayNamesLocale)
	if err != nil {
		return engine.Options{}, err
	}
	opts.DisplayNamesLocale = locale

	// Pass-through, including negative "unbounded" sentinels. Range
	// validation is the engine's concern.
	maxResults, err := acc.Int(obj, memberMaxResults)
	if err != nil {
		return engine.Options{}, err
	}
	opts.MaxResults = int32(maxResults)

	// The explicit flag is read before the value so that "set to zero"
	// and "never set" stay distinct states.
	thresholdSet, err := acc.Bool(obj, memberIsScoreThresholdSet)
	if err != nil {
		return engine.Options{}, err
	}
	if thresholdSet {
		threshold, err := acc.Float32(obj, memberScoreThreshold)
		if err != nil {
			return engine.Options{}, err
		}
		opts.ScoreThreshold = &threshold
	}

	allow, err := acc.Strings(obj, memberClassNameAllowList)
	if err != nil {
		return engine.Options{}, err
	}
	opts.ClassNameAllowList = allow

	deny, err := acc.Strings(obj, memberClassNameDenyList)
	if err != nil {
		return engine.Options{}, err
	}
	opts.ClassNameDenyList = deny

	return opts, nil
}
