package typedcfg

import (
	"log/slog"
	"os"

	"github.com/0xalexb/typedcfg/codec"
	"github.com/0xalexb/typedcfg/logging"
)

// Options holds configuration settings for a Loader.
type Options struct {
	Codecs *codec.Registry
	Strict bool
	Logger *slog.Logger
}

// Option defines a function type for applying Loader options.
type Option func(*Options)

// WithStrict makes loading reject input keys not declared by the
// schema.
func WithStrict() Option {
	return func(opts *Options) {
		opts.Strict = true
	}
}

// WithCodecs replaces the default codec registry.
func WithCodecs(reg *codec.Registry) Option {
	return func(opts *Options) {
		opts.Codecs = reg
	}
}

// WithLogger sets the logger used by the Loader.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel installs a JSON logger on stderr at the given level.
// Valid levels are: "debug", "info", "warn", "error".
// If invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.Logger = logging.NewLogger(logging.LoggerConfig{Level: level}, os.Stderr)
	}
}
