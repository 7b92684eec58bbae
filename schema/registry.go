package schema

import (
	"fmt"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// Registry resolves named schema references. Declarations are added up
// front, then compiled on demand; forward references between them are
// resolved at compile time and cycles are rejected as definition
// errors.
//
// A Registry is caller-owned with construction-time lifetime. It is not
// safe for concurrent use while declarations are still being added or
// compiled; compiled schemas it hands out are immutable and freely
// shareable.
type Registry struct {
	decls      map[string]*Object
	compiled   map[string]*Schema
	inProgress map[string]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		decls:      make(map[string]*Object),
		compiled:   make(map[string]*Schema),
		inProgress: make(map[string]bool),
	}
}

// Add registers an object declaration under its name.
func (r *Registry) Add(obj *Object) error {
	if obj == nil {
		return &DefinitionError{Msg: "nil object declaration"}
	}

	if obj.name == "" {
		return &DefinitionError{Msg: "object declaration must be named"}
	}

	if _, dup := r.decls[obj.name]; dup {
		return &DefinitionError{
			Path: fieldpath.Root(obj.name),
			Msg:  "duplicate schema name",
		}
	}

	r.decls[obj.name] = obj

	return nil
}

// MustAdd is Add, panicking on error. Intended for package-level schema
// declarations.
func (r *Registry) MustAdd(obj *Object) {
	if err := r.Add(obj); err != nil {
		panic(err)
	}
}

// Compile compiles the named declaration, resolving references through
// the registry. Results are cached, so compiling a root schema compiles
// each referenced schema exactly once.
func (r *Registry) Compile(name string) (*Schema, error) {
	return r.compileNamed(name, fieldpath.Root(name))
}

// MustCompile is Compile, panicking on error.
func (r *Registry) MustCompile(name string) *Schema {
	s, err := r.Compile(name)
	if err != nil {
		panic(err)
	}

	return s
}

func (r *Registry) compileNamed(name string, at fieldpath.Path) (*Schema, error) {
	if s, ok := r.compiled[name]; ok {
		return s, nil
	}

	decl, ok := r.decls[name]
	if !ok {
		return nil, &DefinitionError{
			Path: at,
			Msg:  fmt.Sprintf("unknown schema reference %q", name),
		}
	}

	if r.inProgress[name] {
		return nil, &DefinitionError{
			Path: at,
			Msg:  fmt.Sprintf("cyclic schema reference %q", name),
		}
	}

	r.inProgress[name] = true
	defer delete(r.inProgress, name)

	s, err := (&compiler{reg: r}).compileObject(decl, fieldpath.Root(name))
	if err != nil {
		return nil, err
	}

	r.compiled[name] = s

	return s, nil
}
