package typedcfg_test

import (
	"testing"

	"github.com/0xalexb/typedcfg"
	"github.com/0xalexb/typedcfg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModule_ProvidesNamedInstance(t *testing.T) {
	t.Parallel()

	fpath := writeConfig(t, "config.yml", "port: 9090\n")

	var captured *config.Instance

	app := fxtest.New(t,
		typedcfg.Module("app", serverSchema(t), fpath),
		fx.Invoke(
			fx.Annotate(
				func(inst *config.Instance) {
					captured = inst
				},
				fx.ParamTags(`name:"app"`),
			),
		),
	)

	app.RequireStart()
	app.RequireStop()

	require.NotNil(t, captured)

	got, err := captured.Get("port")
	require.NoError(t, err)
	assert.Equal(t, 9090, got)
}

func TestModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(typedcfg.Module("", serverSchema(t), "config.yml"))
	require.Error(t, app.Err())
	require.ErrorIs(t, app.Err(), typedcfg.ErrEmptyName)
}

func TestModule_InvalidFileFailsStartup(t *testing.T) {
	t.Parallel()

	fpath := writeConfig(t, "config.yml", "port: eighty\n")

	app := fx.New(
		fx.NopLogger,
		typedcfg.Module("app", serverSchema(t), fpath),
		fx.Invoke(
			fx.Annotate(
				func(_ *config.Instance) {},
				fx.ParamTags(`name:"app"`),
			),
		),
	)
	require.Error(t, app.Err())
}

func TestModule_TwoModulesDoNotCollide(t *testing.T) {
	t.Parallel()

	primary := writeConfig(t, "primary.yml", "port: 1000\n")
	secondary := writeConfig(t, "secondary.yml", "port: 2000\n")

	var ports []any

	app := fxtest.New(t,
		typedcfg.Module("primary", serverSchema(t), primary),
		typedcfg.Module("secondary", serverSchema(t), secondary),
		fx.Invoke(
			fx.Annotate(
				func(a, b *config.Instance) {
					pa, _ := a.Get("port")
					pb, _ := b.Get("port")
					ports = append(ports, pa, pb)
				},
				fx.ParamTags(`name:"primary"`, `name:"secondary"`),
			),
		),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, []any{1000, 2000}, ports)
}
