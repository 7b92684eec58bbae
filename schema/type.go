package schema

// Type is a declared type shape: the pure-data description a schema is
// built from. A Type carries no behavior of its own; Compile turns it
// into a Node that can validate and synthesize defaults.
//
// The set of shapes is closed: scalars, literals, option sets, unions,
// lists, sets, tuples, string-keyed mappings, custom validators, nested
// objects, and named references.
type Type interface {
	isType()
}

type scalarType struct {
	kind Kind
}

type literalType struct {
	values []any
}

type optionSetType struct {
	values []any
	def    any
}

type unionType struct {
	members []Type
}

type listType struct {
	elem Type
}

type setType struct {
	elem Type
}

type tupleType struct {
	elems []Type
}

type mapType struct {
	key   Kind
	value Type
}

type customType struct {
	spec *ValidatorSpec
	args []any
}

type refType struct {
	name string
}

// namedParam attaches a name to a validator parameter shape so a
// CustomError can refer to the parameter by name.
type namedParam struct {
	name string
	typ  Type
}

func (scalarType) isType()    {}
func (literalType) isType()   {}
func (optionSetType) isType() {}
func (unionType) isType()     {}
func (listType) isType()      {}
func (setType) isType()       {}
func (tupleType) isType()     {}
func (mapType) isType()       {}
func (customType) isType()    {}
func (refType) isType()       {}
func (namedParam) isType()    {}
func (*Object) isType()       {}

// String declares a string scalar.
func String() Type { return scalarType{kind: KindString} }

// Int declares an integer scalar.
func Int() Type { return scalarType{kind: KindInt} }

// Float declares a float scalar.
func Float() Type { return scalarType{kind: KindFloat} }

// Bool declares a boolean scalar.
func Bool() Type { return scalarType{kind: KindBool} }

// Literal declares an ordered set of allowed values. Input must match
// one of them exactly; the first value is the default.
func Literal(values ...any) Type {
	return literalType{values: values}
}

// OptionSet declares an explicit set of allowed values with a declared
// default. Unlike Literal, the default is chosen by the caller and must
// be a member of the set.
func OptionSet(values []any, defaultValue any) Type {
	return optionSetType{values: values, def: defaultValue}
}

// Union declares an ordered list of member shapes. Members are tried in
// declaration order and the first match wins, so the more specific
// member should be declared first.
func Union(members ...Type) Type {
	return unionType{members: members}
}

// List declares a homogeneous sequence.
func List(elem Type) Type { return listType{elem: elem} }

// Set declares a homogeneous sequence de-duplicated by value equality.
func Set(elem Type) Type { return setType{elem: elem} }

// Tuple declares a fixed-arity sequence with one shape per position.
func Tuple(elems ...Type) Type { return tupleType{elems: elems} }

// Map declares a string-keyed mapping with a uniform value shape. Keys
// must be declared as KindString; any other key kind is a definition
// error at compile time.
func Map(key Kind, value Type) Type {
	return mapType{key: key, value: value}
}

// Custom declares an application of a custom validator with concrete
// bound arguments. The arguments are checked against the validator's
// declared parameter types once, at compile time.
func Custom(spec *ValidatorSpec, args ...any) Type {
	return customType{spec: spec, args: args}
}

// Ref declares a forward reference to a named object schema, resolved
// through the Registry at compile time.
func Ref(name string) Type { return refType{name: name} }

// Param names a validator parameter shape. A CustomError carrying the
// same name is mapped back to the parameter's position.
func Param(name string, typ Type) Type {
	return namedParam{name: name, typ: typ}
}
