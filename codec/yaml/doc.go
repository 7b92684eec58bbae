// Package yaml provides the YAML codec for the codec registry.
//
// It uses github.com/goccy/go-yaml. Nested YAML mappings decode to
// map[string]any and sequences to []any, the generic shapes the
// validation engine expects. Register it for both common extensions:
//
//	reg.MustRegister("yaml", yaml.New())
//	reg.MustRegister("yml", yaml.New())
package yaml
