package schema_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/0xalexb/typedcfg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreaterThan(t *testing.T) {
	t.Parallel()

	s := compile(t, schema.NewObject("Config",
		schema.Field("workers", schema.GreaterThan(0)),
	))

	t.Run("value above the bound passes", func(t *testing.T) {
		t.Parallel()

		out, err := validate(t, s, map[string]any{"workers": float64(4)})
		require.NoError(t, err)
		assert.Equal(t, 4, out["workers"])
	})

	t.Run("the bound itself is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := validate(t, s, map[string]any{"workers": 0})
		require.Error(t, err)
		assert.EqualError(t, err,
			"Config.workers: expected greater_than(0), found expected value > 0, found 0")
	})

	t.Run("absent field defaults to the bound", func(t *testing.T) {
		t.Parallel()

		out, err := validate(t, s, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, 0, out["workers"])
	})
}

func TestLessThan(t *testing.T) {
	t.Parallel()

	s := compile(t, schema.NewObject("Config",
		schema.Field("retries", schema.LessThan(5)),
	))

	out, err := validate(t, s, map[string]any{"retries": 4})
	require.NoError(t, err)
	assert.Equal(t, 4, out["retries"])

	_, err = validate(t, s, map[string]any{"retries": 5})
	require.Error(t, err)
	assert.ErrorContains(t, err, "expected value < 5, found 5")
}

func TestRange(t *testing.T) {
	t.Parallel()

	s := compile(t, schema.NewObject("Config",
		schema.Field("count", schema.Range(0, 10)),
	))

	testCases := []struct {
		name     string
		input    any
		expected any
		errMsg   string
	}{
		{name: "lower bound is inclusive", input: 0, expected: 0},
		{name: "interior value passes", input: 5, expected: 5},
		{name: "upper bound is exclusive", input: 10,
			errMsg: "expected 0 <= value < 10, found 10"},
		{name: "value above the range", input: 15,
			errMsg: "expected 0 <= value < 10, found 15"},
		{name: "value below the range", input: -1,
			errMsg: "expected 0 <= value < 10, found -1"},
		{name: "non-integer input", input: "many",
			errMsg: `expected int, found "many"`},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := validate(t, s, map[string]any{"count": testCase.input})
			if testCase.errMsg != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, testCase.errMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, out["count"])
		})
	}

	t.Run("absent field defaults to the lower bound", func(t *testing.T) {
		t.Parallel()

		out, err := validate(t, s, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, 0, out["count"])
	})
}

func TestPathString(t *testing.T) {
	t.Parallel()

	s := compile(t, schema.NewObject("Config",
		schema.Field("dir", schema.PathString(false)),
	))

	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "forward slashes pass through", input: "a/b/c", expected: "a/b/c"},
		{name: "backslashes normalize", input: `a\b\c`, expected: "a/b/c"},
		{name: "duplicate separators collapse", input: "a//b///c", expected: "a/b/c"},
		{name: "trailing slash is stripped", input: "a/b/", expected: "a/b"},
		{name: "root path keeps its slash", input: "/", expected: "/"},
		{name: "absolute paths are preserved", input: "/etc/app", expected: "/etc/app"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			out, err := validate(t, s, map[string]any{"dir": testCase.input})
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, out["dir"])
		})
	}

	t.Run("absent field defaults to dot", func(t *testing.T) {
		t.Parallel()

		out, err := validate(t, s, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, ".", out["dir"])
	})

	t.Run("non-string input is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := validate(t, s, map[string]any{"dir": 7})
		require.Error(t, err)
		assert.ErrorContains(t, err, "expected string, found int (7)")
	})
}

func TestPathStringExistsCheck(t *testing.T) {
	t.Parallel()

	s := compile(t, schema.NewObject("Config",
		schema.Field("dir", schema.PathString(true)),
	))

	t.Run("existing path passes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		out, err := validate(t, s, map[string]any{"dir": dir})
		require.NoError(t, err)
		assert.Equal(t, dir, out["dir"])
	})

	t.Run("missing path points at the exists argument", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope")

		_, err := validate(t, s, map[string]any{"dir": missing})
		require.Error(t, err)
		assert.ErrorContains(t, err, "Config.dir[0]:")
		assert.ErrorContains(t, err, fmt.Sprintf("path %q does not exist", missing))
	})

	t.Run("existence is checked after normalization", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		out, err := validate(t, s, map[string]any{"dir": dir + "//"})
		require.NoError(t, err)
		assert.Equal(t, dir, out["dir"])
	})
}

func TestCustomValidatorCoercesValue(t *testing.T) {
	t.Parallel()

	upper := &schema.ValidatorSpec{
		Name: "upper",
		Func: func(value any, _ ...any) (any, error) {
			s, ok := value.(string)
			if !ok {
				return nil, &schema.CustomError{Msg: "expected string"}
			}

			out := make([]byte, len(s))
			for i := 0; i < len(s); i++ {
				c := s[i]
				if 'a' <= c && c <= 'z' {
					c -= 'a' - 'A'
				}

				out[i] = c
			}

			return string(out), nil
		},
		Result:  schema.KindString,
		Default: schema.DefaultValue("NONE"),
	}

	s := compile(t, schema.NewObject("Config",
		schema.Field("code", schema.Custom(upper)),
	))

	out, err := validate(t, s, map[string]any{"code": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "ABC", out["code"])

	out, err = validate(t, s, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "NONE", out["code"])
}

func TestCustomErrorPointsAtNamedArgument(t *testing.T) {
	t.Parallel()

	divisible := &schema.ValidatorSpec{
		Name: "divisible_by",
		Func: func(value any, args ...any) (any, error) {
			v, _ := value.(int)

			d, _ := args[0].(int)
			if d == 0 {
				return nil, &schema.CustomError{Msg: "divisor must not be zero", Arg: "divisor"}
			}

			if v%d != 0 {
				return nil, &schema.CustomError{Msg: "not divisible"}
			}

			return v, nil
		},
		Params: []schema.Type{schema.Param("divisor", schema.Int())},
		Result: schema.KindInt,
	}

	s := compile(t, schema.NewObject("Config",
		schema.Field("v", schema.Custom(divisible, 0)),
	))

	_, err := validate(t, s, map[string]any{"v": 4})
	require.Error(t, err)
	// The named argument maps back to its bound position.
	assert.ErrorContains(t, err, "Config.v[0]:")
	assert.ErrorContains(t, err, "divisor must not be zero")
}
