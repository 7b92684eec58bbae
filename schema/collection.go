package schema

import (
	"fmt"
	"strings"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// listNode validates a homogeneous sequence.
type listNode struct {
	elem Node
}

func (n listNode) Default() any { return []any{} }

func (n listNode) Validate(value any, at fieldpath.Path, opts Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	seq, ok := asSequence(value)
	if !ok {
		return nil, &ValidationError{
			Path:     at,
			Expected: n.Describe(),
			Actual:   describeValue(value),
		}
	}

	out := make([]any, len(seq))

	for i, item := range seq {
		coerced, err := n.elem.Validate(item, at.Index(i), opts)
		if err != nil {
			return nil, err
		}

		out[i] = coerced
	}

	return out, nil
}

func (n listNode) Describe() string {
	return fmt.Sprintf("list[%s]", n.elem.Describe())
}

// setNode validates like a list and then de-duplicates by value
// equality, keeping the first occurrence of each value.
type setNode struct {
	elem Node
}

func (n setNode) Default() any { return []any{} }

func (n setNode) Validate(value any, at fieldpath.Path, opts Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	seq, ok := asSequence(value)
	if !ok {
		return nil, &ValidationError{
			Path:     at,
			Expected: n.Describe(),
			Actual:   describeValue(value),
		}
	}

	out := make([]any, 0, len(seq))

	for i, item := range seq {
		coerced, err := n.elem.Validate(item, at.Index(i), opts)
		if err != nil {
			return nil, err
		}

		duplicate := false

		for _, existing := range out {
			if equalValues(existing, coerced) {
				duplicate = true

				break
			}
		}

		if !duplicate {
			out = append(out, coerced)
		}
	}

	return out, nil
}

func (n setNode) Describe() string {
	return fmt.Sprintf("set[%s]", n.elem.Describe())
}

// tupleNode validates a fixed-arity sequence, one shape per position.
type tupleNode struct {
	elems []Node
}

// Default is the empty tuple; compile guarantees this is only reachable
// for zero-arity tuples or fields with a declared default.
func (n tupleNode) Default() any { return []any{} }

func (n tupleNode) Validate(value any, at fieldpath.Path, opts Options) (any, error) {
	if IsMissing(value) {
		if len(n.elems) == 0 {
			return n.Default(), nil
		}

		return nil, &ValidationError{
			Path:     at,
			Expected: n.Describe(),
			Actual:   "nothing",
		}
	}

	seq, ok := asSequence(value)
	if !ok {
		return nil, &ValidationError{
			Path:     at,
			Expected: n.Describe(),
			Actual:   describeValue(value),
		}
	}

	if len(seq) != len(n.elems) {
		return nil, &ValidationError{
			Path:     at,
			Expected: fmt.Sprintf("%d items", len(n.elems)),
			Actual:   fmt.Sprintf("%d items", len(seq)),
		}
	}

	out := make([]any, len(seq))

	for i, item := range seq {
		coerced, err := n.elems[i].Validate(item, at.Index(i), opts)
		if err != nil {
			return nil, err
		}

		out[i] = coerced
	}

	return out, nil
}

func (n tupleNode) Describe() string {
	parts := make([]string, len(n.elems))
	for i, elem := range n.elems {
		parts[i] = elem.Describe()
	}

	return fmt.Sprintf("tuple[%s]", strings.Join(parts, ", "))
}

// mapNode validates a string-keyed mapping with a uniform value shape.
type mapNode struct {
	value Node
}

func (n mapNode) Default() any { return map[string]any{} }

func (n mapNode) Validate(value any, at fieldpath.Path, opts Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	mapping, ok := asMapping(value)
	if !ok {
		return nil, &ValidationError{
			Path:     at,
			Expected: n.Describe(),
			Actual:   describeValue(value),
		}
	}

	out := make(map[string]any, len(mapping))

	for key, item := range mapping {
		coerced, err := n.value.Validate(item, at.Key(key), opts)
		if err != nil {
			return nil, err
		}

		out[key] = coerced
	}

	return out, nil
}

func (n mapNode) Describe() string {
	return fmt.Sprintf("map[string]%s", n.value.Describe())
}
