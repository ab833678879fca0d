package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-livewire/framework/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")

	cfg, err := config.Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "GoLivewire", cfg.App.Name)
	assert.Equal(t, "local", cfg.App.Env)
	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "http://localhost", cfg.App.URL)
	assert.True(t, cfg.App.Debug)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	t.Setenv("APP_NAME", "MyApp")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_DEBUG", "false")

	cfg, err := config.Load("testdata/absent.env")
	require.NoError(t, err)

	assert.Equal(t, "MyApp", cfg.App.Name)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.False(t, cfg.App.Debug)
}

func TestMustLoad(t *testing.T) {
	t.Setenv("APP_NAME", "MustApp")
	assert.NotPanics(t, func() {
		cfg := config.MustLoad("testdata/absent.env")
		assert.Equal(t, "MustApp", cfg.App.Name)
	})
}
