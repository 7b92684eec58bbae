package schema

import (
	"fmt"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// FieldDecl describes one declared field: its name, type shape, and the
// optional default, doc string, and required flag. FieldDecl is a
// value; the chained setters return modified copies.
type FieldDecl struct {
	name       string
	typ        Type
	def        any
	hasDefault bool
	required   bool
	doc        string
}

// Field declares a field with the given name and type shape.
func Field(name string, typ Type) FieldDecl {
	return FieldDecl{name: name, typ: typ}
}

// Default sets a literal default for the field. The default is
// validated against the field's shape at compile time.
func (f FieldDecl) Default(value any) FieldDecl {
	f.def = value
	f.hasDefault = true

	return f
}

// Required marks the field as mandatory: absent input is a validation
// error instead of a synthesized default.
func (f FieldDecl) Required() FieldDecl {
	f.required = true

	return f
}

// Doc attaches a documentation string to the field.
func (f FieldDecl) Doc(doc string) FieldDecl {
	f.doc = doc

	return f
}

// Object declares a named object schema: an ordered list of fields.
// An Object is itself a Type, so it can be nested inline; use Ref to
// refer to an Object registered under a Registry instead.
type Object struct {
	name   string
	fields []FieldDecl
}

// NewObject declares an object schema with the given name and fields.
func NewObject(name string, fields ...FieldDecl) *Object {
	return &Object{name: name, fields: fields}
}

// Name returns the declared schema name.
func (o *Object) Name() string { return o.name }

// Schema is a compiled object schema. It is immutable after Compile and
// safe to share across any number of configuration instances.
type Schema struct {
	name   string
	fields []CompiledField
	byName map[string]int
}

// CompiledField is one compiled field of a Schema.
type CompiledField struct {
	Name     string
	Node     Node
	Doc      string
	Required bool

	hasDefault bool
	def        any
}

// Default synthesizes the field's default value: the declared literal
// default if one was given, otherwise the node's own default. Container
// defaults are freshly allocated on every call.
func (f CompiledField) Default() any {
	if f.hasDefault {
		return cloneValue(f.def)
	}

	return f.Node.Default()
}

// DeclaredDefault returns the literal default declared on the field, in
// its compile-coerced form, and whether one was declared at all.
func (f CompiledField) DeclaredDefault() (any, bool) {
	if !f.hasDefault {
		return nil, false
	}

	return cloneValue(f.def), true
}

// Name returns the compiled schema name.
func (s *Schema) Name() string { return s.name }

// Fields returns the compiled fields in declaration order.
func (s *Schema) Fields() []CompiledField {
	out := make([]CompiledField, len(s.fields))
	copy(out, s.fields)

	return out
}

// Field looks up a compiled field by name.
func (s *Schema) Field(name string) (CompiledField, bool) {
	i, ok := s.byName[name]
	if !ok {
		return CompiledField{}, false
	}

	return s.fields[i], true
}

// Default synthesizes the fully-defaulted mapping for the schema.
func (s *Schema) Default() any {
	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = f.Default()
	}

	return out
}

// Defaults is Default with a concrete mapping type, for callers that
// want to serialize or inspect the defaulted form directly.
func (s *Schema) Defaults() map[string]any {
	out, _ := s.Default().(map[string]any)

	return out
}

// Validate matches a raw mapping against the schema, producing a fully
// defaulted, coerced mapping. Used when a schema appears as an element
// inside another shape; the configuration tree in package config walks
// fields itself to keep per-field provenance.
func (s *Schema) Validate(value any, at fieldpath.Path, opts Options) (any, error) {
	if IsMissing(value) {
		value = map[string]any{}
	}

	mapping, ok := asMapping(value)
	if !ok {
		return nil, &ValidationError{
			Path:     at,
			Expected: s.Describe(),
			Actual:   describeValue(value),
		}
	}

	if opts.Strict {
		for key := range mapping {
			if _, declared := s.byName[key]; !declared {
				return nil, &UnknownKeyError{Path: at, Key: key}
			}
		}
	}

	out := make(map[string]any, len(s.fields))

	for _, f := range s.fields {
		coerced, _, err := s.ValidateField(f, mapping, at, opts)
		if err != nil {
			return nil, err
		}

		out[f.Name] = coerced
	}

	return out, nil
}

// ValidateField validates one declared field against the raw mapping it
// was (or was not) supplied in. The second result reports whether the
// value came from input rather than a synthesized default.
func (s *Schema) ValidateField(f CompiledField, mapping map[string]any, at fieldpath.Path, opts Options) (any, bool, error) {
	raw, present := mapping[f.Name]
	if !present {
		if f.Required {
			return nil, false, &ValidationError{
				Path:     at.Field(f.Name),
				Expected: fmt.Sprintf("required %s", f.Node.Describe()),
				Actual:   "nothing",
			}
		}

		if f.hasDefault {
			return cloneValue(f.def), false, nil
		}

		coerced, err := f.Node.Validate(Missing, at.Field(f.Name), opts)
		if err != nil {
			return nil, false, err
		}

		return coerced, false, nil
	}

	coerced, err := f.Node.Validate(raw, at.Field(f.Name), opts)
	if err != nil {
		return nil, false, err
	}

	return coerced, true, nil
}

// Describe returns the schema name.
func (s *Schema) Describe() string { return s.name }
