package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/typedcfg/fieldpath"
)

// ValidatorFunc is the match/coercion logic of a custom validator. It
// receives the input value followed by the bound arguments, and returns
// the coerced value or an error. Domain rejections should be returned
// as *CustomError so the engine can point at the offending argument.
type ValidatorFunc func(value any, args ...any) (any, error)

// DefaultPolicy decides what a custom validator produces for an absent
// field: a literal constant, the bound argument at some index, or the
// zero value of the validator's result kind.
type DefaultPolicy struct {
	mode     defaultMode
	value    any
	argIndex int
}

type defaultMode int

const (
	defaultZero defaultMode = iota
	defaultLiteral
	defaultFromArg
)

// DefaultValue makes an absent field default to a literal constant.
func DefaultValue(v any) DefaultPolicy {
	return DefaultPolicy{mode: defaultLiteral, value: v}
}

// DefaultFromArg makes an absent field default to the bound argument at
// the given position.
func DefaultFromArg(i int) DefaultPolicy {
	return DefaultPolicy{mode: defaultFromArg, argIndex: i}
}

// ValidatorSpec declares a reusable custom validator: its name, logic,
// parameter shapes, and default policy. Specs are data; bind one to
// concrete arguments with Custom.
type ValidatorSpec struct {
	// Name identifies the validator in error messages.
	Name string
	// Func performs the validation. Required.
	Func ValidatorFunc
	// Params are the declared positional parameter shapes. Bound
	// arguments are checked against them once, at compile time.
	Params []Type
	// Vararg, when set, types any bound arguments beyond Params.
	Vararg Type
	// Result is the kind produced by the validator, used when the
	// default policy falls back to a zero value.
	Result Kind
	// Default decides the value synthesized for an absent field.
	Default DefaultPolicy
}

// customNode is a validator spec bound to compile-checked arguments.
type customNode struct {
	spec *ValidatorSpec
	args []any
}

func (n customNode) Default() any {
	switch n.spec.Default.mode {
	case defaultLiteral:
		return cloneValue(n.spec.Default.value)
	case defaultFromArg:
		return cloneValue(n.args[n.spec.Default.argIndex])
	default:
		return n.spec.Result.zero()
	}
}

func (n customNode) Validate(value any, at fieldpath.Path, _ Options) (any, error) {
	if IsMissing(value) {
		return n.Default(), nil
	}

	coerced, err := n.spec.Func(value, n.args...)
	if err == nil {
		return coerced, nil
	}

	var customErr *CustomError
	if errors.As(err, &customErr) {
		return nil, &ValidationError{
			Path:     n.argPath(at, customErr.Arg),
			Expected: n.Describe(),
			Actual:   customErr.Msg,
			Err:      customErr,
		}
	}

	return nil, &ValidationError{
		Path:     at,
		Expected: n.Describe(),
		Actual:   err.Error(),
		Err:      err,
	}
}

// argPath maps a rejected argument name back to its position in the
// bound argument list; an unknown or empty name points at the value.
func (n customNode) argPath(at fieldpath.Path, arg string) fieldpath.Path {
	if arg == "" {
		return at
	}

	for i, param := range n.spec.Params {
		if named, ok := param.(namedParam); ok && named.name == arg {
			return at.Index(i)
		}
	}

	return at
}

func (n customNode) Describe() string {
	parts := make([]string, len(n.args))
	for i, arg := range n.args {
		parts[i] = fmt.Sprintf("%v", arg)
	}

	return fmt.Sprintf("%s(%s)", n.spec.Name, strings.Join(parts, ", "))
}
