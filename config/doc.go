// Package config materializes validated configuration data as a
// hierarchical instance tree.
//
// Build validates raw decoded input (as produced by a codec) against a
// compiled schema and returns an Instance. The instance records, per
// field, whether the value came from input or from a synthesized
// default; Diff uses that bookkeeping to rebuild a minimal save mapping
// that omits untouched defaults.
//
// # Field access
//
// Get accepts a navigation path using colon (:) as the separator for
// nested fields:
//
//	"nested:port"  -> instance field "nested", then its field "port"
//	"limits:cpu"   -> mapping field "limits", then key "cpu"
//
// Instances are mutated only through Set, which validates through the
// same engine, so a constructed instance always satisfies its schema.
// A single Instance is not safe for concurrent mutation; treat it as
// immutable after construction or serialize writes externally. The
// compiled schema behind an instance is read-only and may be shared by
// any number of instances.
package config
