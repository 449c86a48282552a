package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "match-logs", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 8, cfg.Convert.Workers)
	assert.Equal(t, 25000, cfg.Convert.StartingScore)
	assert.Equal(t, "file", cfg.Convert.PlayersSource)
	assert.Equal(t, "input", cfg.Convert.InputPrefix)
	assert.Equal(t, "output", cfg.Convert.OutputPrefix)
	assert.Equal(t, 300, cfg.Convert.CrosscheckCacheSeconds)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("CONVERT_WORKERS", "3")
	t.Setenv("CONVERT_PLAYERS_SOURCE", "database")
	t.Setenv("STORAGE_BUCKET", "archive")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Convert.Workers)
	assert.Equal(t, "database", cfg.Convert.PlayersSource)
	assert.Equal(t, "archive", cfg.Storage.Bucket)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONVERT_STARTING_SCORE=30000\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CONVERT_STARTING_SCORE") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 30000, cfg.Convert.StartingScore)
}
