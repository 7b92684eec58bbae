package schema

import (
	"fmt"
	"reflect"
	"strings"
)

type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing marks a field for which no input was supplied. It is distinct
// from every legitimate configuration value, including nil: a decoded
// null stays nil and never compares equal to Missing.
var Missing any = missing{}

// IsMissing reports whether value is the Missing sentinel.
func IsMissing(value any) bool {
	_, ok := value.(missing)

	return ok
}

// describeValue renders a value for the "found ..." half of an error.
// Scalars include the value itself; containers only their shape.
func describeValue(value any) string {
	if IsMissing(value) {
		return "nothing"
	}

	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case bool:
		return fmt.Sprintf("bool (%v)", v)
	}

	if i, ok := intValue(value); ok {
		return fmt.Sprintf("int (%d)", i)
	}

	if f, ok := floatValue(value); ok {
		return fmt.Sprintf("float (%v)", f)
	}

	if _, ok := asSequence(value); ok {
		return "a list"
	}

	if _, ok := asMapping(value); ok {
		return "a mapping"
	}

	return fmt.Sprintf("%T", value)
}

// describeValues renders a comma-separated list of values.
func describeValues(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		if s, ok := v.(string); ok {
			parts[i] = fmt.Sprintf("%q", s)
		} else {
			parts[i] = fmt.Sprintf("%v", v)
		}
	}

	return strings.Join(parts, ", ")
}

// asSequence normalizes any slice or array value to []any. Decoders
// produce typed slices for homogeneous input (e.g. []map[string]any for
// TOML table arrays), so a reflective fallback is required.
func asSequence(value any) ([]any, bool) {
	if IsMissing(value) || value == nil {
		return nil, false
	}

	if seq, ok := value.([]any); ok {
		return seq, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	if _, isBytes := value.([]byte); isBytes {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}

	return out, true
}

// asMapping normalizes any string-keyed map value to map[string]any.
func asMapping(value any) (map[string]any, bool) {
	if IsMissing(value) || value == nil {
		return nil, false
	}

	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// equalValues compares two values with numeric normalization, so an int
// declared in a schema matches the float64 a JSON decoder produced for
// the same number.
func equalValues(a, b any) bool {
	if af, aok := floatValue(a); aok {
		bf, bok := floatValue(b)

		return bok && af == bf
	}

	return reflect.DeepEqual(a, b)
}

// containsValue reports membership of value in values under equalValues.
func containsValue(values []any, value any) bool {
	for _, v := range values {
		if equalValues(v, value) {
			return true
		}
	}

	return false
}

// cloneValue deep-copies container values so synthesized defaults are
// never aliased between calls or instances.
func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}

		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return value
	}
}
