package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/0xalexb/typedcfg/fieldpath"
	"github.com/0xalexb/typedcfg/schema"
)

// ErrNoSuchField is returned when a Get path names a field or key the
// instance does not hold.
var ErrNoSuchField = errors.New("no such field")

// Instance is one node of a validated configuration tree. It owns its
// field values exclusively; nested config fields hold their own
// *Instance subtree.
type Instance struct {
	schema   *schema.Schema
	at       fieldpath.Path
	strict   bool
	defaults map[string]any // enclosing declared default, nil for most trees
	values   map[string]any
	explicit map[string]struct{}
}

// Schema returns the compiled schema this instance was built from.
func (i *Instance) Schema() *schema.Schema { return i.schema }

// Path returns the instance's location in the configuration tree; the
// root instance sits at the schema name.
func (i *Instance) Path() fieldpath.Path { return i.at }

// Get resolves a colon-separated navigation path, e.g. "nested:port".
// Intermediate segments traverse nested instances and string-keyed
// mappings.
func (i *Instance) Get(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNoSuchField)
	}

	segments := strings.Split(path, ":")

	var current any = i

	for n, segment := range segments {
		switch node := current.(type) {
		case *Instance:
			value, ok := node.values[segment]
			if !ok {
				return nil, fmt.Errorf("%w: %q has no field %q",
					ErrNoSuchField, node.at, segment)
			}

			current = value
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("%w: no key %q under %q",
					ErrNoSuchField, segment, strings.Join(segments[:n], ":"))
			}

			current = value
		default:
			return nil, fmt.Errorf("%w: %q is not traversable",
				ErrNoSuchField, strings.Join(segments[:n], ":"))
		}
	}

	if child, ok := current.(*Instance); ok {
		return child, nil
	}

	return cloneValue(current), nil
}

// Set assigns one field, validating the value through the engine so the
// instance can never leave its schema. Nested config fields accept a
// raw mapping, which is rebuilt as a fresh subtree.
func (i *Instance) Set(field string, value any) error {
	f, ok := i.schema.Field(field)
	if !ok {
		return &schema.UnknownKeyError{Path: i.at, Key: field}
	}

	if sub, nested := f.Node.(*schema.Schema); nested {
		mapping, err := nestedMapping(value, sub, i.at.Field(field))
		if err != nil {
			return err
		}

		child, err := build(sub, mapping, i.at.Field(field), options{strict: i.strict}, childDefaults(f, i.defaults))
		if err != nil {
			return err
		}

		i.values[field] = child
		i.explicit[field] = struct{}{}

		return nil
	}

	coerced, err := f.Node.Validate(value, i.at.Field(field), schema.Options{Strict: i.strict})
	if err != nil {
		return err
	}

	i.values[field] = coerced
	i.explicit[field] = struct{}{}

	return nil
}

// IsExplicit reports whether the field's value came from input (or a
// later Set) rather than from a synthesized default.
func (i *Instance) IsExplicit(field string) bool {
	_, ok := i.explicit[field]

	return ok
}

// IsDefault reports whether the field currently holds its synthesized
// default value, regardless of where the value came from.
func (i *Instance) IsDefault(field string) (bool, error) {
	f, ok := i.schema.Field(field)
	if !ok {
		return false, &schema.UnknownKeyError{Path: i.at, Key: field}
	}

	value := i.values[field]
	if child, nested := value.(*Instance); nested {
		return len(child.Diff(false)) == 0, nil
	}

	return reflect.DeepEqual(value, i.fieldDefault(f)), nil
}

// fieldDefault is the default this instance measures a field against:
// the enclosing declared default when one covers the field, else the
// field's own synthesized default.
func (i *Instance) fieldDefault(f schema.CompiledField) any {
	if value, ok := defaultFor(i.defaults, f.Name); ok {
		return cloneValue(value)
	}

	return f.Default()
}

// AsMap projects the full tree to a plain nested mapping, defaults
// included. The result is independently owned.
func (i *Instance) AsMap() map[string]any {
	out := make(map[string]any, len(i.values))

	for _, f := range i.schema.Fields() {
		value := i.values[f.Name]
		if child, nested := value.(*Instance); nested {
			out[f.Name] = child.AsMap()

			continue
		}

		out[f.Name] = cloneValue(value)
	}

	return out
}

// Diff rebuilds a save mapping. A field is included only when its
// current value differs from its synthesized default, or when
// includeDefaults is set. Nested instances contribute only when they
// have any non-default content of their own (or are forced by
// includeDefaults), so a freshly-built untouched tree diffs to an
// empty mapping.
func (i *Instance) Diff(includeDefaults bool) map[string]any {
	out := map[string]any{}

	for _, f := range i.schema.Fields() {
		value := i.values[f.Name]

		if child, nested := value.(*Instance); nested {
			sub := child.Diff(includeDefaults)
			if len(sub) > 0 || includeDefaults {
				out[f.Name] = sub
			}

			continue
		}

		if includeDefaults || !reflect.DeepEqual(value, i.fieldDefault(f)) {
			out[f.Name] = cloneValue(value)
		}
	}

	return out
}
