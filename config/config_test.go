package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	path := writeTemp(t, "config.yaml", "search:\n  default_limit: 20\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Equal(t, 1000, cfg.Cache.Capacity)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeTemp(t, "config.yaml", "unknown_field: true\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	path := writeTemp(t, "config.yaml", "logging:\n  level: verbose\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateAcceptsEmptyDocument(t *testing.T) {
	assert.NoError(t, Validate([]byte("{}")))
}

func TestDefaultSearchPathsIncludeWorkingDirectory(t *testing.T) {
	paths := SearchPaths()
	assert.Contains(t, paths, "./meilirank.yaml")
}
