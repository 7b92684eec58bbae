package json_test

import (
	"testing"

	jsoncodec "github.com/0xalexb/typedcfg/codec/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	c := jsoncodec.New()

	t.Run("numbers decode as float64", func(t *testing.T) {
		t.Parallel()

		out, err := c.Decode([]byte(`{"port": 8080, "ratio": 0.5}`))
		require.NoError(t, err)
		assert.Equal(t, float64(8080), out["port"])
		assert.Equal(t, 0.5, out["ratio"])
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		out, err := c.Decode(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("null document", func(t *testing.T) {
		t.Parallel()

		out, err := c.Decode([]byte("null"))
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte(`{"port":`))
		require.Error(t, err)
	})
}

func TestEncodeIsIndented(t *testing.T) {
	t.Parallel()

	c := jsoncodec.New()

	data, err := c.Encode(map[string]any{"nested": map[string]any{"port": 8081}})
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"nested\"")

	out, err := c.Decode(data)
	require.NoError(t, err)

	nested, ok := out["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(8081), nested["port"])
}
