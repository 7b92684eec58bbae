package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilCodec is returned when registering a nil codec.
var ErrNilCodec = errors.New("codec must not be nil")

// ErrEmptyExtension is returned when registering under an empty extension.
var ErrEmptyExtension = errors.New("extension must not be empty")

// Codec decodes raw file content to a generic string-keyed mapping and
// encodes such a mapping back to file content.
type Codec interface {
	Decode(data []byte) (map[string]any, error)
	Encode(data map[string]any) ([]byte, error)
}

// Registry maps file extensions to codecs. It replaces any discovery of
// handlers by naming convention: every extension is registered
// explicitly and validated at registration time.
//
// A Registry is mutable while being populated and should be treated as
// read-only afterwards; it has no internal locking.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register binds a codec to a file extension. The extension is
// normalized (lowercase, leading dot stripped), so "YAML", ".yaml", and
// "yaml" are the same key. Registering an extension twice replaces the
// earlier codec.
func (r *Registry) Register(ext string, c Codec) error {
	normalized := normalize(ext)
	if normalized == "" {
		return ErrEmptyExtension
	}

	if c == nil {
		return fmt.Errorf("%w: extension %q", ErrNilCodec, normalized)
	}

	r.codecs[normalized] = c

	return nil
}

// MustRegister is Register, panicking on error.
func (r *Registry) MustRegister(ext string, c Codec) {
	if err := r.Register(ext, c); err != nil {
		panic(err)
	}
}

// Lookup returns the codec registered for an extension.
func (r *Registry) Lookup(ext string) (Codec, bool) {
	c, ok := r.codecs[normalize(ext)]

	return c, ok
}

// Extensions returns the registered extensions.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		out = append(out, ext)
	}

	return out
}

func normalize(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
