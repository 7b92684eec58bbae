package schema

import "math"

// Kind identifies a primitive scalar shape.
type Kind int

const (
	// KindInvalid is the zero Kind; it never validates.
	KindInvalid Kind = iota
	// KindString matches string values.
	KindString
	// KindInt matches integral numeric values and coerces them to int.
	KindInt
	// KindFloat matches numeric values and coerces them to float64.
	KindFloat
	// KindBool matches boolean values.
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// zero returns the kind's zero value.
func (k Kind) zero() any {
	switch k {
	case KindString:
		return ""
	case KindInt:
		return 0
	case KindFloat:
		return float64(0)
	case KindBool:
		return false
	default:
		return nil
	}
}

// coerce normalizes a decoded value to the kind's canonical Go type.
// Decoders disagree on numeric representation (JSON gives float64, YAML
// and TOML give int64/uint64), so integral floats are accepted for
// KindInt and any numeric is accepted for KindFloat.
func (k Kind) coerce(value any) (any, bool) {
	switch k {
	case KindString:
		s, ok := value.(string)

		return s, ok
	case KindInt:
		return intValue(value)
	case KindFloat:
		return floatValue(value)
	case KindBool:
		b, ok := value.(bool)

		return b, ok
	default:
		return nil, false
	}
}

// intValue extracts an int from any integral numeric representation.
func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		if v > math.MaxInt {
			return 0, false
		}

		return int(v), true
	case float32:
		if float32(int(v)) == v {
			return int(v), true
		}

		return 0, false
	case float64:
		if float64(int(v)) == v {
			return int(v), true
		}

		return 0, false
	default:
		return 0, false
	}
}

// floatValue extracts a float64 from any numeric representation.
func floatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		i, ok := intValue(value)
		if !ok {
			return 0, false
		}

		return float64(i), true
	}
}
