package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// Codec implements codec.Codec for YAML documents using goccy/go-yaml.
type Codec struct{}

// New creates a YAML codec.
func New() *Codec {
	return &Codec{}
}

// Decode parses a YAML document into a generic mapping. Empty input and
// an empty document both decode to an empty mapping.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if out == nil {
		out = map[string]any{}
	}

	return out, nil
}

// Encode renders a generic mapping as a YAML document.
func (c *Codec) Encode(data map[string]any) ([]byte, error) {
	out, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return out, nil
}
