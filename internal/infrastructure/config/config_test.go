package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "partkit", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "https://api.mcmaster.com/v1", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, filepath.Join(cfg.Path.DataDir, "token.json"), cfg.Path.TokenCache)
	assert.Equal(t, filepath.Join(cfg.Path.DataDir, "partkit.db"), cfg.Path.DatabasePath)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARTKIT_API_USERNAME", "shop@example.com")
	t.Setenv("PARTKIT_API_BASE_URL", "https://staging.example.com/v1")
	t.Setenv("PARTKIT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shop@example.com", cfg.API.Username)
	assert.Equal(t, "https://staging.example.com/v1", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidateProduction(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARTKIT_APP_ENV", "production")
	t.Setenv("PARTKIT_LOG_FORMAT", "console")

	_, err := Load()
	assert.Error(t, err)
}

func TestEnsureDataDirs(t *testing.T) {
	tmp := t.TempDir()
	cfg := &Config{}
	cfg.Path.DataDir = filepath.Join(tmp, "data")
	cfg.Path.DownloadDir = filepath.Join(tmp, "data", "downloads")

	require.NoError(t, cfg.EnsureDataDirs())
	assert.DirExists(t, cfg.Path.DataDir)
	assert.DirExists(t, cfg.Path.DownloadDir)
}
