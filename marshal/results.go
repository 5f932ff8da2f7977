package marshal

import (
	bridge "github.com/wippyai/classifier-bridge"
	"github.com/wippyai/classifier-bridge/engine"
	"github.com/wippyai/classifier-bridge/errors"
)

// Results transcribes the native classification result into the caller's
// object model. The transcription is structural: group order, category order
// and head indices come out exactly as the engine produced them, and every
// collection is preallocated to its final size.
func Results(model bridge.ObjectModel, res *engine.ClassificationResult) (bridge.List, error) {
	if model == nil {
		return nil, errors.NilValue(errors.PhaseResults, "object model")
	}
	if res == nil {
		return nil, errors.NilValue(errors.PhaseResults, "classification result")
	}

	groups := model.NewList(len(res.Classifications))
	for _, c := range res.Classifications {
		categories := model.NewList(len(c.Classes))
		for _, class := range c.Classes {
			categories.Append(model.NewCategory(resolveLabel(class), class.Score))
		}
		groups.Append(model.NewClassifications(categories, int(c.HeadIndex)))
	}
	return groups, nil
}

// resolveLabel prefers the display name, falling back to the class name when
// the display name is empty. An empty class name passes through as an empty
// label; nothing is substituted.
func resolveLabel(c engine.Class) string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.ClassName
}
