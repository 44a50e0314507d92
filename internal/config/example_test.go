package config_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/n/internal/config"
	"github.com/hbjs97/n/internal/pm"
	"github.com/hbjs97/n/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidTOML(t *testing.T) {
	content := `version = 1
default_manager = "pnpm"
echo = false

[env]
NODE_ENV = "development"
npm_config_registry = "https://registry.example.com"`

	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "pnpm", cfg.DefaultManager)
	assert.False(t, cfg.IsEcho())
	assert.Equal(t, "development", cfg.Env["NODE_ENV"])
	assert.Equal(t, "https://registry.example.com", cfg.Env["npm_config_registry"])

	m, ok := cfg.Manager()
	require.True(t, ok)
	assert.Equal(t, pm.PNPM, m)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.True(t, cfg.IsEcho())
	assert.Empty(t, cfg.DefaultManager)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown default_manager",
			content: `default_manager = "deno"`,
		},
		{
			name:    "unsupported version",
			content: `version = 2`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.TempConfigFile(t, tt.content)
			_, err := config.Load(path)
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestLoadConfig_DefaultValues(t *testing.T) {
	path := testutil.TempConfigFile(t, `version = 1`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.True(t, cfg.IsEcho())
	assert.Empty(t, cfg.Env)
	_, ok := cfg.Manager()
	assert.False(t, ok)
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvPath, "/tmp/custom-n.toml")
	assert.Equal(t, "/tmp/custom-n.toml", config.DefaultPath())
}

func TestDefaultPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvPath, "")
	t.Setenv("HOME", home)
	assert.Equal(t, filepath.Join(home, ".config", "n", "config.toml"), config.DefaultPath())
}
