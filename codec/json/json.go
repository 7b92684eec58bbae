package json

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Codec implements codec.Codec for JSON documents using goccy/go-json.
type Codec struct{}

// New creates a JSON codec.
func New() *Codec {
	return &Codec{}
}

// Decode parses a JSON document into a generic mapping. Empty input
// decodes to an empty mapping.
func (c *Codec) Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if out == nil {
		out = map[string]any{}
	}

	return out, nil
}

// Encode renders a generic mapping as indented JSON.
func (c *Codec) Encode(data map[string]any) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return out, nil
}
