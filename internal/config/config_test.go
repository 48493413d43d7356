package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	assert.False(t, cfg.Parse.IncludePrivate)
	assert.Contains(t, cfg.Paths.Code, "**/*.rs")
	assert.Contains(t, cfg.Paths.Ignore, "target/**")
	assert.Equal(t, 256, cfg.Storage.CacheCapacity)
}

func TestLoadFromDirDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFromDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default().Paths.Code, cfg.Paths.Code)
	assert.False(t, cfg.Parse.IncludePrivate)
}

func TestLoadFromDirFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	configDir := filepath.Join(root, ".rustmap")
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := `parse:
  include_private: true
paths:
  ignore:
    - vendor/**
storage:
  cache_capacity: 32
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(content), 0o644))

	cfg, err := LoadFromDir(root)
	require.NoError(t, err)

	assert.True(t, cfg.Parse.IncludePrivate)
	assert.Equal(t, []string{"vendor/**"}, cfg.Paths.Ignore)
	assert.Equal(t, 32, cfg.Storage.CacheCapacity)
	// Unset sections keep their defaults.
	assert.Equal(t, Default().Paths.Code, cfg.Paths.Code)
}

func TestCachePath(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, filepath.Join("/proj", ".rustmap", "outline.db"), cfg.CachePath("/proj"))

	cfg.Storage.CacheLocation = "/tmp/custom.db"
	assert.Equal(t, "/tmp/custom.db", cfg.CachePath("/proj"))
}
