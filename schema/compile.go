package schema

import (
	"fmt"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// Compile turns an object declaration into an immutable Schema. The
// compiler is purely structural: declarations are data and nothing is
// evaluated. References (Ref) resolve through reg; passing a nil
// registry makes any reference a definition error.
func Compile(obj *Object, reg *Registry) (*Schema, error) {
	if obj == nil {
		return nil, &DefinitionError{Msg: "nil object declaration"}
	}

	if obj.name == "" {
		return nil, &DefinitionError{Msg: "object declaration must be named"}
	}

	return (&compiler{reg: reg}).compileObject(obj, fieldpath.Root(obj.name))
}

// MustCompile is Compile, panicking on error. Intended for well-known
// schemas declared at package level.
func MustCompile(obj *Object, reg *Registry) *Schema {
	s, err := Compile(obj, reg)
	if err != nil {
		panic(err)
	}

	return s
}

type compiler struct {
	reg *Registry
}

func (c *compiler) compileObject(obj *Object, at fieldpath.Path) (*Schema, error) {
	s := &Schema{
		name:   obj.name,
		fields: make([]CompiledField, 0, len(obj.fields)),
		byName: make(map[string]int, len(obj.fields)),
	}

	for _, decl := range obj.fields {
		if decl.name == "" {
			return nil, &DefinitionError{Path: at, Msg: "field must be named"}
		}

		if _, dup := s.byName[decl.name]; dup {
			return nil, &DefinitionError{
				Path: at.Field(decl.name),
				Msg:  "duplicate field name",
			}
		}

		fieldPath := at.Field(decl.name)

		if decl.typ == nil {
			return nil, &DefinitionError{Path: fieldPath, Msg: "field has no declared type"}
		}

		node, err := c.compileType(decl.typ, fieldPath)
		if err != nil {
			return nil, err
		}

		field := CompiledField{
			Name:       decl.name,
			Node:       node,
			Doc:        decl.doc,
			Required:   decl.required,
			hasDefault: decl.hasDefault,
			def:        decl.def,
		}

		// A fixed-arity tuple has no meaningful empty default: the
		// field must either declare one or be required. The same hole
		// opens when a union would synthesize its default from such a
		// tuple, so the check follows default synthesis, not the
		// node's outermost variant.
		if defaultsToFixedTuple(node) {
			if !field.hasDefault && !field.Required {
				return nil, &DefinitionError{
					Path: fieldPath,
					Msg:  "fixed-arity tuple field must declare a default or be required",
				}
			}
		}

		if field.hasDefault {
			coerced, err := node.Validate(field.def, fieldPath, Options{})
			if err != nil {
				return nil, &DefinitionError{
					Path: fieldPath,
					Msg:  fmt.Sprintf("declared default does not match field type: %v", err),
				}
			}

			field.def = coerced
		}

		s.byName[field.Name] = len(s.fields)
		s.fields = append(s.fields, field)
	}

	return s, nil
}

// defaultsToFixedTuple reports whether the node's synthesized default
// would come from a fixed-arity tuple, which cannot validate its own
// empty default. Unions delegate default synthesis to their first
// member, so the check recurses there.
func defaultsToFixedTuple(n Node) bool {
	switch node := n.(type) {
	case tupleNode:
		return len(node.elems) > 0
	case unionNode:
		return defaultsToFixedTuple(node.members[0])
	default:
		return false
	}
}

//nolint:ireturn // Node is the closed variant interface the compiler produces.
func (c *compiler) compileType(t Type, at fieldpath.Path) (Node, error) {
	switch typ := t.(type) {
	case scalarType:
		return c.compileScalar(typ, at)
	case literalType:
		return c.compileLiteral(typ, at)
	case optionSetType:
		return c.compileOptionSet(typ, at)
	case unionType:
		return c.compileUnion(typ, at)
	case listType:
		elem, err := c.compileType(typ.elem, at)
		if err != nil {
			return nil, err
		}

		return listNode{elem: elem}, nil
	case setType:
		elem, err := c.compileType(typ.elem, at)
		if err != nil {
			return nil, err
		}

		return setNode{elem: elem}, nil
	case tupleType:
		return c.compileTuple(typ, at)
	case mapType:
		return c.compileMap(typ, at)
	case customType:
		return c.compileCustom(typ, at)
	case refType:
		return c.compileRef(typ, at)
	case namedParam:
		return c.compileType(typ.typ, at)
	case *Object:
		return c.compileObject(typ, at)
	default:
		return nil, &DefinitionError{
			Path: at,
			Msg:  fmt.Sprintf("unknown declared shape %T", t),
		}
	}
}

func (c *compiler) compileScalar(t scalarType, at fieldpath.Path) (Node, error) {
	if t.kind == KindInvalid {
		return nil, &DefinitionError{Path: at, Msg: "invalid scalar kind"}
	}

	return scalarNode{kind: t.kind}, nil
}

func (c *compiler) compileLiteral(t literalType, at fieldpath.Path) (Node, error) {
	if len(t.values) == 0 {
		return nil, &DefinitionError{Path: at, Msg: "literal must declare at least one value"}
	}

	return literalNode{values: t.values}, nil
}

func (c *compiler) compileOptionSet(t optionSetType, at fieldpath.Path) (Node, error) {
	if len(t.values) == 0 {
		return nil, &DefinitionError{Path: at, Msg: "option set must declare at least one value"}
	}

	if !containsValue(t.values, t.def) {
		return nil, &DefinitionError{
			Path: at,
			Msg:  "option set default must be one of the declared values",
		}
	}

	return optionSetNode{values: t.values, def: t.def}, nil
}

func (c *compiler) compileUnion(t unionType, at fieldpath.Path) (Node, error) {
	if len(t.members) == 0 {
		return nil, &DefinitionError{Path: at, Msg: "union must declare at least one member"}
	}

	members := make([]Node, len(t.members))

	for i, member := range t.members {
		node, err := c.compileType(member, at.Member(i))
		if err != nil {
			return nil, err
		}

		members[i] = node
	}

	return unionNode{members: members}, nil
}

func (c *compiler) compileTuple(t tupleType, at fieldpath.Path) (Node, error) {
	elems := make([]Node, len(t.elems))

	for i, elem := range t.elems {
		node, err := c.compileType(elem, at.Index(i))
		if err != nil {
			return nil, err
		}

		elems[i] = node
	}

	return tupleNode{elems: elems}, nil
}

func (c *compiler) compileMap(t mapType, at fieldpath.Path) (Node, error) {
	if t.key != KindString {
		return nil, &DefinitionError{
			Path: at,
			Msg:  fmt.Sprintf("mapping keys must be string, declared %s", t.key),
		}
	}

	value, err := c.compileType(t.value, at)
	if err != nil {
		return nil, err
	}

	return mapNode{value: value}, nil
}

func (c *compiler) compileCustom(t customType, at fieldpath.Path) (Node, error) {
	spec := t.spec
	if spec == nil || spec.Func == nil {
		return nil, &DefinitionError{Path: at, Msg: "custom validator must supply a function"}
	}

	switch {
	case len(t.args) < len(spec.Params):
		return nil, &DefinitionError{
			Path: at,
			Msg: fmt.Sprintf("%s expects %d argument(s), got %d",
				spec.Name, len(spec.Params), len(t.args)),
		}
	case len(t.args) > len(spec.Params) && spec.Vararg == nil:
		return nil, &DefinitionError{
			Path: at,
			Msg: fmt.Sprintf("%s expects %d argument(s), got %d",
				spec.Name, len(spec.Params), len(t.args)),
		}
	}

	// Bound arguments are checked once, here, never per validation.
	for i, arg := range t.args {
		var paramType Type
		if i < len(spec.Params) {
			paramType = spec.Params[i]
		} else {
			paramType = spec.Vararg
		}

		paramNode, err := c.compileType(paramType, at.Index(i))
		if err != nil {
			return nil, err
		}

		if _, err := paramNode.Validate(arg, at.Index(i), Options{}); err != nil {
			return nil, &DefinitionError{
				Path: at.Index(i),
				Msg: fmt.Sprintf("%s argument %d does not match its declared type: %v",
					spec.Name, i, err),
			}
		}
	}

	if spec.Default.mode == defaultFromArg {
		if spec.Default.argIndex < 0 || spec.Default.argIndex >= len(t.args) {
			return nil, &DefinitionError{
				Path: at,
				Msg: fmt.Sprintf("%s default refers to argument %d, but %d argument(s) are bound",
					spec.Name, spec.Default.argIndex, len(t.args)),
			}
		}
	}

	return customNode{spec: spec, args: t.args}, nil
}

func (c *compiler) compileRef(t refType, at fieldpath.Path) (Node, error) {
	if c.reg == nil {
		return nil, &DefinitionError{
			Path: at,
			Msg:  fmt.Sprintf("reference %q requires a registry", t.name),
		}
	}

	return c.reg.compileNamed(t.name, at)
}
