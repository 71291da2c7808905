package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.InDelta(t, 0.5, cfg.RateLimit, 1e-9)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TEACHASSIST_ADDR", "127.0.0.1:9000")
	t.Setenv("TEACHASSIST_SESSION_TTL", "30m")
	t.Setenv("TEACHASSIST_RATE_LIMIT", "2")
	t.Setenv("TEACHASSIST_COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.InDelta(t, 2.0, cfg.RateLimit, 1e-9)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TEACHASSIST_SESSION_TTL", "soon")
	t.Setenv("TEACHASSIST_RATE_BURST", "many")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.RateBurst)
}

func TestValidate_ReportsAll(t *testing.T) {
	t.Setenv("TEACHASSIST_SESSION_TTL", "-1s")
	t.Setenv("TEACHASSIST_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "SESSION_TTL"))
	assert.True(t, strings.Contains(err.Error(), "log level"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TEACHASSIST_TEST_DOTENV=from-file\nTEACHASSIST_ADDR=:1\n"), 0o600))
	t.Setenv("TEACHASSIST_ADDR", ":2")
	t.Cleanup(func() { os.Unsetenv("TEACHASSIST_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("TEACHASSIST_TEST_DOTENV"))
	assert.Equal(t, ":2", os.Getenv("TEACHASSIST_ADDR"), "existing variables win")

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		l, err := NewLogger(level)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}
