package engine

// FileDescriptorMeta locates the model inside an already-open file. The
// descriptor is an opaque pass-through to the engine; this module never
// reads from it.
type FileDescriptorMeta struct {
	FD     int
	Length int64
	Offset int64
}

// Options is the native engine configuration. Field semantics follow the
// engine contract:
//
//   - MaxResults passes through unchanged; negative values mean unbounded.
//   - ScoreThreshold is nil when the caller never set a threshold. A non-nil
//     pointer to zero is "explicitly set to 0" and must stay distinct from nil.
//   - Allow and deny lists are ordered and may both be populated; mutual
//     exclusivity is enforced engine-side, not here.
type Options struct {
	DisplayNamesLocale string
	MaxResults         int32
	ScoreThreshold     *float32
	ClassNameAllowList []string
	ClassNameDenyList  []string
	ModelFile          FileDescriptorMeta
}

// Class is one labeled score as produced by the engine.
type Class struct {
	ClassName   string
	DisplayName string
	Score       float32
}

// Classifications is the ordered output of one classification head. The
// order of Classes encodes ranking and must be preserved by every layer
// above.
type Classifications struct {
	Classes   []Class
	HeadIndex int32
}

// ClassificationResult is the full engine output, one Classifications per
// output head, in head order.
type ClassificationResult struct {
	Classifications []Classifications
}
