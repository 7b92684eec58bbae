package typedcfg

import (
	"errors"
	"fmt"

	"github.com/0xalexb/typedcfg/config"
	"github.com/0xalexb/typedcfg/schema"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when a module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// Module creates an Fx module that loads and validates the
// configuration file at fpath against the schema, providing the
// resulting *config.Instance under the module name as a DI named tag.
// Loading happens when the container resolves the instance, so a
// malformed file fails the application at startup.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name string, s *schema.Schema, fpath string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			func() (*config.Instance, error) {
				return New(opts...).Load(fpath, s)
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}
