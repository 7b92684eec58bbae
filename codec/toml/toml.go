package toml

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Codec implements codec.Codec for TOML documents using BurntSushi/toml.
type Codec struct{}

// New creates a TOML codec.
func New() *Codec {
	return &Codec{}
}

// Decode parses a TOML document into a generic mapping. Empty input
// decodes to an empty mapping.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	out := map[string]any{}
	if err := toml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return out, nil
}

// Encode renders a generic mapping as a TOML document.
func (c *Codec) Encode(data map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return buf.Bytes(), nil
}
