package config

import (
	"github.com/0xalexb/typedcfg/fieldpath"
	"github.com/0xalexb/typedcfg/schema"
)

// Option configures how an Instance is built.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict rejects input keys that are not declared by the schema.
// Without it unknown keys are ignored.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Build validates raw input against a compiled schema and returns the
// resulting instance tree. Absent fields are filled from the schema's
// defaults; the instance remembers which fields were supplied
// explicitly. Raw input is never mutated.
func Build(s *schema.Schema, raw map[string]any, opts ...Option) (*Instance, error) {
	var o options
	for _, apply := range opts {
		apply(&o)
	}

	return build(s, raw, fieldpath.Root(s.Name()), o, nil)
}

// build constructs one subtree. defaults, when non-nil, is the declared
// default mapping an enclosing field supplied for this subtree; absent
// fields fill from it instead of their own synthesized defaults, and
// Diff measures against it.
func build(s *schema.Schema, raw map[string]any, at fieldpath.Path, o options, defaults map[string]any) (*Instance, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	if o.strict {
		for key := range raw {
			if _, declared := s.Field(key); !declared {
				return nil, &schema.UnknownKeyError{Path: at, Key: key}
			}
		}
	}

	inst := &Instance{
		schema:   s,
		at:       at,
		strict:   o.strict,
		defaults: defaults,
		values:   make(map[string]any, len(s.Fields())),
		explicit: make(map[string]struct{}),
	}

	validateOpts := schema.Options{Strict: o.strict}

	for _, field := range s.Fields() {
		sub, nested := field.Node.(*schema.Schema)
		if !nested {
			if base, covered := defaultFor(defaults, field.Name); covered {
				if _, present := raw[field.Name]; !present {
					// The enclosing declared default covers this
					// field, required ones included: the declared
					// mapping was validated whole at compile time.
					inst.values[field.Name] = cloneValue(base)

					continue
				}
			}

			value, fromInput, err := s.ValidateField(field, raw, at, validateOpts)
			if err != nil {
				return nil, err
			}

			inst.values[field.Name] = value

			if fromInput {
				inst.explicit[field.Name] = struct{}{}
			}

			continue
		}

		// Nested config fields become their own subtree. Input for
		// them must be a raw mapping; already-built instances are
		// never accepted.
		rawValue, present := raw[field.Name]
		if !present {
			if field.Required {
				return nil, &schema.ValidationError{
					Path:     at.Field(field.Name),
					Expected: "required " + sub.Describe(),
					Actual:   "nothing",
				}
			}

			child, err := build(sub, nil, at.Field(field.Name), o, childDefaults(field, defaults))
			if err != nil {
				return nil, err
			}

			inst.values[field.Name] = child

			continue
		}

		mapping, err := nestedMapping(rawValue, sub, at.Field(field.Name))
		if err != nil {
			return nil, err
		}

		child, err := build(sub, mapping, at.Field(field.Name), o, childDefaults(field, defaults))
		if err != nil {
			return nil, err
		}

		inst.values[field.Name] = child
		inst.explicit[field.Name] = struct{}{}
	}

	return inst, nil
}

// defaultFor looks a field up in an enclosing declared default mapping.
func defaultFor(defaults map[string]any, name string) (any, bool) {
	if defaults == nil {
		return nil, false
	}

	value, ok := defaults[name]

	return value, ok
}

// childDefaults resolves the default mapping a nested subtree measures
// itself against: the enclosing declared default when it covers the
// field, else the field's own declared default, else nothing.
func childDefaults(field schema.CompiledField, defaults map[string]any) map[string]any {
	if value, ok := defaultFor(defaults, field.Name); ok {
		if mapping, isMapping := asMapping(value); isMapping {
			return mapping
		}
	}

	if value, ok := field.DeclaredDefault(); ok {
		if mapping, isMapping := asMapping(value); isMapping {
			return mapping
		}
	}

	return nil
}

// nestedMapping requires a nested config value to arrive as a plain
// mapping. One consistent contract: pre-built instances are rejected,
// whatever state they are in.
func nestedMapping(value any, sub *schema.Schema, at fieldpath.Path) (map[string]any, error) {
	if _, isInstance := value.(*Instance); isInstance {
		return nil, &schema.ValidationError{
			Path:     at,
			Expected: sub.Describe() + " as a raw mapping, not a built instance",
			Actual:   "a config instance",
		}
	}

	mapping, ok := asMapping(value)
	if !ok {
		return nil, &schema.ValidationError{
			Path:     at,
			Expected: sub.Describe(),
			Actual:   describeRaw(value),
		}
	}

	return mapping, nil
}
