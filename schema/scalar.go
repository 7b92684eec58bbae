package schema

import "github.com/0xalexb/typedcfg/fieldpath"

// scalarNode validates a single primitive kind.
type scalarNode struct {
	kind Kind
}

func (n scalarNode) Default() any { return n.kind.zero() }

func (n scalarNode) Validate(value any, at fieldpath.Path, _ Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	coerced, ok := n.kind.coerce(value)
	if !ok {
		return nil, &ValidationError{
			Path:     at,
			Expected: n.kind.String(),
			Actual:   describeValue(value),
		}
	}

	return coerced, nil
}

func (n scalarNode) Describe() string { return n.kind.String() }
