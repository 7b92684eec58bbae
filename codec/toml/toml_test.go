package toml_test

import (
	"testing"

	tomlcodec "github.com/0xalexb/typedcfg/codec/toml"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	c := tomlcodec.New()

	t.Run("tables and table arrays", func(t *testing.T) {
		t.Parallel()

		doc := []byte("name = \"api\"\n\n[[servers]]\nport = 80\n\n[[servers]]\nport = 443\n")

		out, err := c.Decode(doc)
		require.NoError(t, err)
		assert.Equal(t, "api", out["name"])

		// BurntSushi produces a typed slice for table arrays.
		servers, ok := out["servers"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, servers, 2)
		assert.Equal(t, int64(80), servers[0]["port"])
	})

	t.Run("integers decode as int64", func(t *testing.T) {
		t.Parallel()

		out, err := c.Decode([]byte("port = 8080\n"))
		require.NoError(t, err)
		assert.Equal(t, int64(8080), out["port"])
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		out, err := c.Decode(nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("malformed input", func(t *testing.T) {
		t.Parallel()

		_, err := c.Decode([]byte("port ="))
		require.Error(t, err)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	c := tomlcodec.New()

	data, err := c.Encode(map[string]any{
		"port":   9090,
		"nested": map[string]any{"host": "db"},
	})
	require.NoError(t, err)

	out, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, int64(9090), out["port"])

	nested, ok := out["nested"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "db", nested["host"])
}
