package schema

import (
	"fmt"
	"strings"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// literalNode validates exact membership in an ordered set of values.
// The first value doubles as the default.
type literalNode struct {
	values []any
}

func (n literalNode) Default() any { return cloneValue(n.values[0]) }

func (n literalNode) Validate(value any, at fieldpath.Path, _ Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	if !containsValue(n.values, value) {
		return nil, &ValidationError{
			Path:     at,
			Expected: "one of " + describeValues(n.values),
			Actual:   describeValue(value),
		}
	}

	return value, nil
}

func (n literalNode) Describe() string {
	return fmt.Sprintf("literal[%s]", describeValues(n.values))
}

// optionSetNode validates membership like a literal, but the default is
// declared explicitly and type mismatches are reported separately from
// value mismatches: a value whose kind matches none of the allowed
// values is a type error first.
type optionSetNode struct {
	values []any
	def    any
}

func (n optionSetNode) Default() any { return cloneValue(n.def) }

func (n optionSetNode) Validate(value any, at fieldpath.Path, _ Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	if !n.kindAllowed(value) {
		return nil, &ValidationError{
			Path:     at,
			Expected: "one of the allowed type(s): " + strings.Join(n.kinds(), ", "),
			Actual:   describeValue(value),
		}
	}

	if !containsValue(n.values, value) {
		return nil, &ValidationError{
			Path:     at,
			Expected: "one of the allowed values: " + describeValues(n.values),
			Actual:   describeValue(value),
		}
	}

	return value, nil
}

func (n optionSetNode) Describe() string {
	return fmt.Sprintf("options[%s]", describeValues(n.values))
}

// kinds returns the distinct primitive kinds of the allowed values, in
// first-seen order.
func (n optionSetNode) kinds() []string {
	var out []string

	seen := map[string]struct{}{}

	for _, v := range n.values {
		name := kindName(v)
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

func (n optionSetNode) kindAllowed(value any) bool {
	name := kindName(value)
	for _, allowed := range n.kinds() {
		if name == allowed {
			return true
		}

		// Integral input is acceptable where floats are allowed.
		if name == "int" && allowed == "float" {
			return true
		}
	}

	return false
}

// kindName classifies a concrete value into its primitive kind name.
// Integral floats count as int, since JSON decoding produces float64
// for every number.
func kindName(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case nil:
		return "null"
	}

	if _, ok := intValue(value); ok {
		return "int"
	}

	if _, ok := floatValue(value); ok {
		return "float"
	}

	return fmt.Sprintf("%T", value)
}
