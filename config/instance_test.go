package config_test

import (
	"testing"

	"github.com/0xalexb/typedcfg/config"
	"github.com/0xalexb/typedcfg/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetNavigatesColonPaths(t *testing.T) {
	t.Parallel()

	s, err := schema.Compile(schema.NewObject("Config",
		schema.Field("port", schema.Int()).Default(8080),
		schema.Field("limits", schema.Map(schema.KindString, schema.Int())),
		schema.Field("nested", schema.NewObject("Nested",
			schema.Field("host", schema.String()).Default("localhost"),
		)),
	), nil)
	require.NoError(t, err)

	inst, err := config.Build(s, map[string]any{
		"limits": map[string]any{"cpu": 4},
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		path     string
		expected any
	}{
		{name: "top-level field", path: "port", expected: 8080},
		{name: "nested field", path: "nested:host", expected: "localhost"},
		{name: "mapping key", path: "limits:cpu", expected: 4},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := inst.Get(testCase.path)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}

	t.Run("missing field", func(t *testing.T) {
		t.Parallel()

		_, err := inst.Get("ports")
		require.ErrorIs(t, err, config.ErrNoSuchField)
	})

	t.Run("missing nested field", func(t *testing.T) {
		t.Parallel()

		_, err := inst.Get("nested:hots")
		require.ErrorIs(t, err, config.ErrNoSuchField)
	})

	t.Run("missing mapping key", func(t *testing.T) {
		t.Parallel()

		_, err := inst.Get("limits:mem")
		require.ErrorIs(t, err, config.ErrNoSuchField)
	})

	t.Run("traversing through a scalar", func(t *testing.T) {
		t.Parallel()

		_, err := inst.Get("port:deeper")
		require.ErrorIs(t, err, config.ErrNoSuchField)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := inst.Get("")
		require.ErrorIs(t, err, config.ErrNoSuchField)
	})
}

func TestGetReturnsCopies(t *testing.T) {
	t.Parallel()

	s, err := schema.Compile(schema.NewObject("Config",
		schema.Field("tags", schema.List(schema.String())),
	), nil)
	require.NoError(t, err)

	inst, err := config.Build(s, map[string]any{"tags": []any{"a", "b"}})
	require.NoError(t, err)

	got, err := inst.Get("tags")
	require.NoError(t, err)

	tags, ok := got.([]any)
	require.True(t, ok)

	tags[0] = "mutated"

	again, err := inst.Get("tags")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, again, "instance state should be isolated from callers")
}

func TestSetValidatesThroughSchema(t *testing.T) {
	t.Parallel()

	s := serverSchema(t)

	inst, err := config.Build(s, nil)
	require.NoError(t, err)

	t.Run("valid value is stored and marked explicit", func(t *testing.T) {
		require.NoError(t, inst.Set("port", float64(9090)))

		got, err := inst.Get("port")
		require.NoError(t, err)
		assert.Equal(t, 9090, got, "value should coerce on the way in")
		assert.True(t, inst.IsExplicit("port"))
	})

	t.Run("invalid value leaves the instance untouched", func(t *testing.T) {
		err := inst.Set("port", "eighty")
		require.Error(t, err)
		require.ErrorIs(t, err, schema.ErrValidation)
		assert.EqualError(t, err, `Config.port: expected int, found "eighty"`)

		got, err := inst.Get("port")
		require.NoError(t, err)
		assert.Equal(t, 9090, got)
	})

	t.Run("undeclared field is rejected", func(t *testing.T) {
		err := inst.Set("prot", 1)
		require.Error(t, err)
		require.ErrorIs(t, err, schema.ErrUnknownKey)
	})

	t.Run("nested field rebuilds its subtree from a mapping", func(t *testing.T) {
		require.NoError(t, inst.Set("nested", map[string]any{"host": "db"}))

		got, err := inst.Get("nested:host")
		require.NoError(t, err)
		assert.Equal(t, "db", got)

		got, err = inst.Get("nested:port")
		require.NoError(t, err)
		assert.Equal(t, 8081, got, "unset nested fields refill from defaults")
	})

	t.Run("nested field rejects a built instance", func(t *testing.T) {
		nested, err := inst.Get("nested")
		require.NoError(t, err)

		err = inst.Set("nested", nested)
		require.Error(t, err)
		assert.ErrorContains(t, err, "not a built instance")
	})
}

func TestIsDefault(t *testing.T) {
	t.Parallel()

	s := serverSchema(t)

	inst, err := config.Build(s, map[string]any{"port": 8080})
	require.NoError(t, err)

	t.Run("explicit value equal to the default still counts as default", func(t *testing.T) {
		t.Parallel()

		isDefault, err := inst.IsDefault("port")
		require.NoError(t, err)
		assert.True(t, isDefault)
		assert.True(t, inst.IsExplicit("port"), "provenance is tracked separately")
	})

	t.Run("untouched field is default", func(t *testing.T) {
		t.Parallel()

		isDefault, err := inst.IsDefault("name")
		require.NoError(t, err)
		assert.True(t, isDefault)
	})

	t.Run("untouched nested tree is default", func(t *testing.T) {
		t.Parallel()

		isDefault, err := inst.IsDefault("nested")
		require.NoError(t, err)
		assert.True(t, isDefault)
	})

	t.Run("undeclared field errors", func(t *testing.T) {
		t.Parallel()

		_, err := inst.IsDefault("prot")
		require.ErrorIs(t, err, schema.ErrUnknownKey)
	})
}

func TestDiff(t *testing.T) {
	t.Parallel()

	s := serverSchema(t)

	t.Run("fresh instance diffs empty", func(t *testing.T) {
		t.Parallel()

		inst, err := config.Build(s, nil)
		require.NoError(t, err)
		assert.Empty(t, inst.Diff(false))
	})

	t.Run("one changed field appears alone", func(t *testing.T) {
		t.Parallel()

		inst, err := config.Build(s, nil)
		require.NoError(t, err)
		require.NoError(t, inst.Set("port", 9090))

		assert.Equal(t, map[string]any{"port": 9090}, inst.Diff(false))
	})

	t.Run("nested change carries its ancestor mapping", func(t *testing.T) {
		t.Parallel()

		inst, err := config.Build(s, map[string]any{
			"nested": map[string]any{"host": "db"},
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]any{
			"nested": map[string]any{"host": "db"},
		}, inst.Diff(false))
	})

	t.Run("include-defaults projects the whole tree", func(t *testing.T) {
		t.Parallel()

		inst, err := config.Build(s, nil)
		require.NoError(t, err)

		assert.Equal(t, inst.AsMap(), inst.Diff(true))
	})

	t.Run("diff round-trips through build", func(t *testing.T) {
		t.Parallel()

		inst, err := config.Build(s, map[string]any{
			"port":   9090,
			"nested": map[string]any{"host": "db"},
		})
		require.NoError(t, err)

		rebuilt, err := config.Build(s, inst.Diff(false))
		require.NoError(t, err)
		assert.Equal(t, inst.AsMap(), rebuilt.AsMap())
	})

	t.Run("explicit value equal to the default is omitted", func(t *testing.T) {
		t.Parallel()

		inst, err := config.Build(s, map[string]any{"port": 8080})
		require.NoError(t, err)
		assert.Empty(t, inst.Diff(false))
	})
}
