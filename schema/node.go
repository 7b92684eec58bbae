package schema

import "github.com/0xalexb/typedcfg/fieldpath"

// Options carries validation policy through every recursive frame.
type Options struct {
	// Strict rejects input keys that are not declared by an object
	// schema instead of ignoring them.
	Strict bool
}

// Node is one unit of a compiled schema. Every node can synthesize its
// own default and decide validation without context beyond the path.
//
// Validate returns the coerced value on success. The value argument may
// be the Missing sentinel, in which case nodes produce their default.
// Implementations never mutate the input.
type Node interface {
	// Default synthesizes the node's default value. Containers are
	// freshly allocated on every call, never aliased.
	Default() any

	// Validate matches value against the node, returning the coerced
	// value or an error located at the given path.
	Validate(value any, at fieldpath.Path, opts Options) (any, error)

	// Describe returns the human-readable shape, e.g. "list[string]".
	Describe() string
}
