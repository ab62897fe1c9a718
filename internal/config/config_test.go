package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMinute)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "./public", cfg.Static.Dir)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
server:
  port: "8080"
  mode: release
providers:
  groq_key: "${WOLF_TEST_GROQ}"
rate_limit:
  enabled: true
  requests_per_minute: 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("WOLF_TEST_GROQ", "gsk-from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "gsk-from-env", cfg.Providers.GroqKey)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
}

func TestLoadConfigEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("providers:\n  xai_key: file-key\n"), 0o644))
	t.Setenv("XAI_KEY", "env-key")
	t.Setenv("PORT", "9999")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Providers.XAIKey)
	assert.Equal(t, "9999", cfg.Server.Port)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
