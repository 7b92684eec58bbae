package schema

import (
	"errors"
	"fmt"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// ErrDefinition is wrapped by every DefinitionError.
var ErrDefinition = errors.New("schema definition error")

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation error")

// ErrUnknownKey is wrapped by every UnknownKeyError.
var ErrUnknownKey = errors.New("unknown key")

// DefinitionError reports an ill-formed schema: bad arity, an unresolved
// or cyclic reference, mismatched custom-validator arguments. It is
// always raised at compile time, never during validation.
type DefinitionError struct {
	Path fieldpath.Path
	Msg  string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// Kind returns the stable error-kind tag.
func (e *DefinitionError) Kind() string { return "definition" }

func (e *DefinitionError) Unwrap() error { return ErrDefinition }

// ValidationError reports a value that does not match its schema node.
// It carries the full path to the offending value plus an expected-shape
// and actual-value description, so a presentation layer can format it
// without re-deriving context.
type ValidationError struct {
	Path     fieldpath.Path
	Expected string
	Actual   string
	Err      error // optional underlying cause, e.g. a CustomError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Path, e.Expected, e.Actual)
}

// Kind returns the stable error-kind tag.
func (e *ValidationError) Kind() string { return "validation" }

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrValidation, e.Err}
	}

	return []error{ErrValidation}
}

// UnknownKeyError reports a strict-mode input key that is not declared by
// the schema.
type UnknownKeyError struct {
	Path fieldpath.Path
	Key  string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: unknown key %q", e.Path, e.Key)
}

// Kind returns the stable error-kind tag.
func (e *UnknownKeyError) Kind() string { return "unknown-key" }

func (e *UnknownKeyError) Unwrap() error { return ErrUnknownKey }

// CustomError is how a validator function rejects a value for domain
// reasons. Arg may name one of the validator's declared parameters; the
// engine then points the resulting ValidationError at that argument
// instead of the value itself.
type CustomError struct {
	Msg string
	Arg string
}

func (e *CustomError) Error() string { return e.Msg }

// Kind returns the stable error-kind tag.
func (e *CustomError) Kind() string { return "custom" }
