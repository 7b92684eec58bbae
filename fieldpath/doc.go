// Package fieldpath tracks the location of a value inside a nested
// configuration document.
//
// A Path is an immutable sequence of segments. Each validation frame
// extends its own copy, so sibling frames never observe each other's
// segments:
//
//	p := fieldpath.Root("Config")
//	q := p.Field("extensions").Index(2)
//	q.String() // "Config.extensions[2]"
//
// Segment kinds mirror the shapes a configuration value can nest in:
// a struct field, a sequence index, a map key, and a union member.
package fieldpath
