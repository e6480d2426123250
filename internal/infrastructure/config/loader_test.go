package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/dpc-go/internal/domain"
)

func TestLoadCreatesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.ConfigFormatVersion)
	assert.Equal(t, domain.LocaleEnglish, cfg.Preferences.Locale)
	assert.Equal(t, domain.FormatHuman, cfg.Preferences.OutputFormat)
	assert.True(t, cfg.History.Enabled)
	assert.True(t, filepath.IsAbs(cfg.History.Path), "history path should be expanded, got %s", cfg.History.Path)
	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written")
}

func TestLoadHydratesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences:\n  locale: es\n"), 0o600))

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Preferences.Locale)
	assert.Equal(t, domain.FormatHuman, cfg.Preferences.OutputFormat)
	assert.Equal(t, domain.ColorAuto, cfg.Preferences.Color)
	assert.NotEmpty(t, cfg.History.Path)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preferences: [unclosed"), 0o600))

	_, err := NewFileLoader(path).Load(context.Background())
	assert.Error(t, err)
}

func TestPathHonoursEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	t.Setenv(EnvConfigPath, path)

	assert.Equal(t, path, NewFileLoader("").Path())
}

func TestSaveAndBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)
	cfg, err := DefaultConfig()
	require.NoError(t, err)
	cfg.Preferences.Locale = "es"
	require.NoError(t, loader.Save(cfg))

	backup, err := loader.Backup()
	require.NoError(t, err)
	original, err := os.ReadFile(path)
	require.NoError(t, err)
	copied, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, original, copied)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	assert.Equal(t, filepath.Join(home, "x", "y"), ExpandPath("~/x/y"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}
