package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7255", cfg.APIBaseURL)
	assert.Equal(t, 10, cfg.PollIntervalSeconds)
	assert.Equal(t, dir, cfg.Dir())
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.APIBaseURL = "https://api.example.com"
	cfg.PollIntervalSeconds = 5
	require.NoError(t, cfg.Save())

	reloaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", reloaded.APIBaseURL)
	assert.Equal(t, 5, reloaded.PollIntervalSeconds)
}

func TestEnvOverridesBaseURL(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VERDEX_API_BASE_URL", "https://staging.example.com")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.APIBaseURL)
}

func TestEnvConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VERDEX_CONFIG_DIR", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir())
}

func TestCorruptConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestZeroIntervalFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"),
		[]byte(`{"api_base_url":"https://x","poll_interval_seconds":0}`), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.PollIntervalSeconds)
}
