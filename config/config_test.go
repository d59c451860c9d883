package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Scoreboard.Backend)
	assert.Equal(t, "data/scoreboard.json", cfg.Scoreboard.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "judgment:scoreboard", cfg.Redis.Key)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: ":9000"
scoreboard:
  backend: redis
redis:
  addr: "redis:6379"
  db: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("JUDGMENT_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Scoreboard.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}
