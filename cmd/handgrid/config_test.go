package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFirstRunWritesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultListen, cfg.GetString(cfgKeyListen))
	assert.False(t, cfg.GetBool(cfgKeyDemo))

	// The default file exists for the user to edit.
	raw, err := os.ReadFile(filepath.Join(home, ".handgrid", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "listen:")
}

func TestLoadConfigReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".handgrid")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	custom := "listen: 0.0.0.0:7000\ndemo: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(custom), 0o644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7000", cfg.GetString(cfgKeyListen))
	assert.True(t, cfg.GetBool(cfgKeyDemo))
}

func TestLoadConfigDoesNotClobberExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	_, err := loadConfig()
	require.NoError(t, err)

	path := filepath.Join(home, ".handgrid", "config.yaml")
	custom := "listen: 127.0.0.1:5555\n"
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o644))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5555", cfg.GetString(cfgKeyListen))
}
