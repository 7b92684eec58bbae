package schema

import (
	"fmt"
	"os"
	"strings"
)

// Builtin custom validators. Each is a ValidatorSpec bound through the
// same Custom mechanism user-supplied validators use.

var greaterThanSpec = &ValidatorSpec{
	Name:    "greater_than",
	Func:    greaterThanFunc,
	Params:  []Type{Param("min", Int())},
	Result:  KindInt,
	Default: DefaultFromArg(0),
}

var lessThanSpec = &ValidatorSpec{
	Name:    "less_than",
	Func:    lessThanFunc,
	Params:  []Type{Param("max", Int())},
	Result:  KindInt,
	Default: DefaultFromArg(0),
}

var rangeSpec = &ValidatorSpec{
	Name:    "range",
	Func:    rangeFunc,
	Params:  []Type{Param("min", Int()), Param("max", Int())},
	Result:  KindInt,
	Default: DefaultFromArg(0),
}

var pathStringSpec = &ValidatorSpec{
	Name:    "path",
	Func:    pathStringFunc,
	Params:  []Type{Param("exists", Bool())},
	Result:  KindString,
	Default: DefaultValue("."),
}

// GreaterThan declares an int that must be strictly greater than min.
// Absent fields default to min.
func GreaterThan(min int) Type {
	return Custom(greaterThanSpec, min)
}

// LessThan declares an int that must be strictly less than max. Absent
// fields default to max.
func LessThan(max int) Type {
	return Custom(lessThanSpec, max)
}

// Range declares an int in the half-open interval [min, max). Absent
// fields default to min.
func Range(min, max int) Type {
	return Custom(rangeSpec, min, max)
}

// PathString declares a path value: a string whose separators are
// normalized to forward slashes, with any trailing slash removed. When
// mustExist is set, the normalized path is also checked against the
// filesystem. Absent fields default to ".".
func PathString(mustExist bool) Type {
	return Custom(pathStringSpec, mustExist)
}

func greaterThanFunc(value any, args ...any) (any, error) {
	v, ok := intValue(value)
	if !ok {
		return nil, &CustomError{Msg: fmt.Sprintf("expected int, found %s", describeValue(value))}
	}

	min, _ := intValue(args[0])
	if v <= min {
		return nil, &CustomError{Msg: fmt.Sprintf("expected value > %d, found %d", min, v)}
	}

	return v, nil
}

func lessThanFunc(value any, args ...any) (any, error) {
	v, ok := intValue(value)
	if !ok {
		return nil, &CustomError{Msg: fmt.Sprintf("expected int, found %s", describeValue(value))}
	}

	max, _ := intValue(args[0])
	if v >= max {
		return nil, &CustomError{Msg: fmt.Sprintf("expected value < %d, found %d", max, v)}
	}

	return v, nil
}

func rangeFunc(value any, args ...any) (any, error) {
	v, ok := intValue(value)
	if !ok {
		return nil, &CustomError{Msg: fmt.Sprintf("expected int, found %s", describeValue(value))}
	}

	min, _ := intValue(args[0])

	max, _ := intValue(args[1])
	if v < min || v >= max {
		return nil, &CustomError{Msg: fmt.Sprintf("expected %d <= value < %d, found %d", min, max, v)}
	}

	return v, nil
}

func pathStringFunc(value any, args ...any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, &CustomError{Msg: fmt.Sprintf("expected string, found %s", describeValue(value))}
	}

	p := normalizePath(s)

	mustExist, _ := args[0].(bool)
	if mustExist {
		if _, err := os.Stat(p); err != nil {
			return nil, &CustomError{
				Msg: fmt.Sprintf("path %q does not exist", p),
				Arg: "exists",
			}
		}
	}

	return p, nil
}

// normalizePath rewrites backslash separators to forward slashes,
// collapses duplicate separators, and strips any trailing slash except
// on the root path.
func normalizePath(s string) string {
	s = strings.ReplaceAll(s, `\`, "/")

	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}

	if len(s) > 1 {
		s = strings.TrimSuffix(s, "/")
	}

	return s
}
