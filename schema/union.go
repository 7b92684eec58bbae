package schema

import (
	"strings"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// unionNode tries its members strictly in declaration order; the first
// member that validates wins. Order is load-bearing: declaring the more
// specific member first is how ambiguity is resolved.
type unionNode struct {
	members []Node
}

// Default is the first member's default.
func (n unionNode) Default() any { return n.members[0].Default() }

func (n unionNode) Validate(value any, at fieldpath.Path, opts Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	// Each attempt is a plain result; only the outer boundary turns
	// total failure into an error.
	for i, member := range n.members {
		coerced, err := member.Validate(value, at.Member(i), opts)
		if err == nil {
			return coerced, nil
		}
	}

	return nil, &ValidationError{
		Path:     at,
		Expected: "one of " + n.Describe(),
		Actual:   describeValue(value),
	}
}

func (n unionNode) Describe() string {
	parts := make([]string, len(n.members))
	for i, member := range n.members {
		parts[i] = member.Describe()
	}

	return strings.Join(parts, " | ")
}
