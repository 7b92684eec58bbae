// Package typedcfg loads, validates, and persists typed configuration
// trees.
//
// A Loader ties the pieces together: a file source, a codec chosen by
// file extension, a compiled schema, and the validation engine. Loading
// a file that does not exist yields a fully-defaulted instance; saving
// writes back only the values that differ from the schema's defaults.
//
//	s := schema.MustCompile(schema.NewObject("Config",
//	    schema.Field("unique", schema.String()).Required(),
//	    schema.Field("port", schema.Int()).Default(8081),
//	), nil)
//
//	loader := typedcfg.New(typedcfg.WithStrict())
//	cfg, err := loader.Load("cfg.yml", s)
package typedcfg

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/0xalexb/typedcfg/codec"
	jsoncodec "github.com/0xalexb/typedcfg/codec/json"
	tomlcodec "github.com/0xalexb/typedcfg/codec/toml"
	yamlcodec "github.com/0xalexb/typedcfg/codec/yaml"
	"github.com/0xalexb/typedcfg/config"
	filesource "github.com/0xalexb/typedcfg/fetcher/file"
	"github.com/0xalexb/typedcfg/logging"
	"github.com/0xalexb/typedcfg/schema"
)

// ErrNoCodec is returned (wrapped in a LoadError or SaveError) when no
// codec is registered for a file's extension.
var ErrNoCodec = errors.New("no codec registered for extension")

// LoadError reports a failure to read or decode a configuration file.
// It is distinct from validation errors, which pass through untouched.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Kind returns the stable error-kind tag.
func (e *LoadError) Kind() string { return "load" }

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failure to encode or write a configuration file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

// Kind returns the stable error-kind tag.
func (e *SaveError) Kind() string { return "save" }

func (e *SaveError) Unwrap() error { return e.Err }

// DefaultCodecs builds a fresh registry with the yaml, yml, json, and
// toml codecs registered. Each call returns an independent registry, so
// callers can extend theirs without affecting anyone else.
func DefaultCodecs() *codec.Registry {
	reg := codec.NewRegistry()
	reg.MustRegister("yaml", yamlcodec.New())
	reg.MustRegister("yml", yamlcodec.New())
	reg.MustRegister("json", jsoncodec.New())
	reg.MustRegister("toml", tomlcodec.New())

	return reg
}

// Loader reads, decodes, validates, and writes configuration files.
type Loader struct {
	codecs *codec.Registry
	strict bool
	logger *slog.Logger
}

// New creates a Loader from the given options. Without options the
// loader uses the default codecs, non-strict validation, and a no-op
// logger.
func New(opts ...Option) *Loader {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	codecs := options.Codecs
	if codecs == nil {
		codecs = DefaultCodecs()
	}

	logger := options.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Loader{
		codecs: codecs,
		strict: options.Strict,
		logger: logger,
	}
}

// Load reads the file at fpath, decodes it with the codec registered
// for its extension, and validates the result against the schema. An
// absent file validates as empty input, producing a fully-defaulted
// instance. Decode and I/O failures are reported as *LoadError;
// validation failures pass through unchanged.
func (l *Loader) Load(fpath string, s *schema.Schema) (*config.Instance, error) {
	c, ok := l.codecs.Lookup(filepath.Ext(fpath))
	if !ok {
		return nil, &LoadError{
			Path: fpath,
			Err:  fmt.Errorf("%w: %q", ErrNoCodec, filepath.Ext(fpath)),
		}
	}

	src, err := filesource.NewSource(fpath)
	if err != nil {
		return nil, &LoadError{Path: fpath, Err: err}
	}

	var raw map[string]any

	if src.Exists() {
		data, err := src.Fetch()
		if err != nil {
			return nil, &LoadError{Path: fpath, Err: err}
		}

		raw, err = c.Decode(data)
		if err != nil {
			return nil, &LoadError{Path: fpath, Err: err}
		}
	} else {
		l.logger.Info("config file absent, using defaults",
			slog.String("path", fpath), slog.String("schema", s.Name()))
	}

	var buildOpts []config.Option
	if l.strict {
		buildOpts = append(buildOpts, config.WithStrict())
	}

	inst, err := config.Build(s, raw, buildOpts...)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("configuration loaded",
		slog.String("path", fpath), slog.String("schema", s.Name()))

	return inst, nil
}

// Save writes the instance back to fpath in the format its extension
// selects. Only values differing from the schema defaults are written,
// unless includeDefaults is set.
func (l *Loader) Save(inst *config.Instance, fpath string, includeDefaults bool) error {
	c, ok := l.codecs.Lookup(filepath.Ext(fpath))
	if !ok {
		return &SaveError{
			Path: fpath,
			Err:  fmt.Errorf("%w: %q", ErrNoCodec, filepath.Ext(fpath)),
		}
	}

	encoded, err := c.Encode(inst.Diff(includeDefaults))
	if err != nil {
		return &SaveError{Path: fpath, Err: err}
	}

	src, err := filesource.NewSource(fpath)
	if err != nil {
		return &SaveError{Path: fpath, Err: err}
	}

	if err := src.Write(encoded); err != nil {
		return &SaveError{Path: fpath, Err: err}
	}

	l.logger.Debug("configuration saved",
		slog.String("path", fpath), slog.String("schema", inst.Schema().Name()))

	return nil
}
