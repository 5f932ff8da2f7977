// Package marshal converts values across the managed/native boundary.
//
// Two directions, mirroring the two halves of a classification call:
//
//	Options   managed configuration object → native engine.Options
//	Results   native classification result → managed collection graph
//
// # Options
//
// The managed configuration object is read through the reflective accessor,
// member by member. The score threshold is gated on an explicit "is set"
// flag so that a threshold of zero stays distinct from no threshold at all.
// Allow and deny lists are iterated element by element with order preserved.
// Any unreadable member fails the whole marshal; no partial configuration is
// ever returned.
//
// # Results
//
// The native result is transcribed structurally: one managed list entry per
// classification group, one per category, in exactly the engine-produced
// order, with collections preallocated to their final sizes. Labels resolve
// to the display name when non-empty, falling back to the class name; empty
// strings pass through unmodified. No score normalization and no re-sorting
// happens here.
package marshal
