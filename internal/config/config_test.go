package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, 30*time.Minute, cfg.Editor.SessionTTL)
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.Zero(t, cfg.Psql.MinConns)
	assert.False(t, cfg.Psql.Seed)
}

func TestLoadDotenvDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("EDITOR_SESSION_TTL=5m\nHTTP_PORT=9000\n"), 0o600))
	t.Setenv("HTTP_PORT", "9100")
	// godotenv sets variables with os.Setenv; register them for cleanup.
	t.Setenv("EDITOR_SESSION_TTL", "")
	require.NoError(t, os.Unsetenv("EDITOR_SESSION_TTL"))

	cfg, err := LoadFiles(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Editor.SessionTTL)
	assert.Equal(t, uint16(9100), cfg.HTTP.Port)
}

func TestLoadPoolBounds(t *testing.T) {
	t.Setenv("PSQL_MAX_CONNS", "25")
	t.Setenv("PSQL_MIN_CONNS", "2")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, int32(25), cfg.Psql.MaxConns)
	assert.Equal(t, int32(2), cfg.Psql.MinConns)
}
