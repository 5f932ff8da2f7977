// Package accessor resolves and invokes getter members on opaque managed
// objects.
//
// The bridge has no compiled dependency on the caller's configuration type.
// Instead it reads typed values out of whatever object the caller passes,
// going through a reflective lookup protocol: resolve the member by name,
// check its signature, invoke it, convert the result.
//
// Resolution is cached per (dynamic type, member name) pair, so the lookup
// cost is paid exactly once per distinct pair per Accessor. A failed lookup
// is an integration fault (a version mismatch between caller and bridge),
// surfaced immediately as a hard error and never retried or defaulted.
//
// Typed reads:
//
//	acc := accessor.New()
//	locale, err := acc.String(opts, "GetDisplayNamesLocale")
//	max, err := acc.Int(opts, "GetMaxResults")
//	set, err := acc.Bool(opts, "GetIsScoreThresholdSet")
//	allow, err := acc.Strings(opts, "GetClassNameAllowList")
//
// Strings accepts either a plain []string return or a classifierbridge.List
// of string elements, iterating element by element with order preserved.
package accessor
