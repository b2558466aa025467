package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func TestLoadFullConfig(t *testing.T) {
	dir := writeConfig(t, `
version: 1
scenarios:
  dir: specs
logging:
  debug: true
  file_enabled: true
  max_size_mb: 25
run:
  lock: false
`)

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "specs", cfg.Scenarios.Dir)
	assert.True(t, cfg.Logging.Debug)
	require.NotNil(t, cfg.Logging.FileEnabled)
	assert.True(t, *cfg.Logging.FileEnabled)
	assert.Equal(t, 25, cfg.Logging.MaxSizeMB)
	assert.False(t, cfg.Run.Lock)
}

func TestLoadAppliesDefaultsForUnsetFields(t *testing.T) {
	dir := writeConfig(t, "version: 1\n")

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "scenarios", cfg.Scenarios.Dir)
	assert.False(t, cfg.Logging.Debug)
	assert.Nil(t, cfg.Logging.FileEnabled)
	assert.True(t, cfg.Run.Lock)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(t.TempDir()).Load()

	var notFound *ConfigNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Path, ConfigFileName)
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	dir := writeConfig(t, "version: 2\n")

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported config version 2")
}

func TestLoadRejectsEmptyScenariosDir(t *testing.T) {
	dir := writeConfig(t, `
version: 1
scenarios:
  dir: ""
`)

	_, err := NewLoader(dir).Load()
	require.Error(t, err)
	assert.ErrorContains(t, err, "scenarios.dir")
}

func TestLoadOrDefaultFallsBackWhenMissing(t *testing.T) {
	cfg, err := LoadOrDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOrDefaultSurfacesOtherErrors(t *testing.T) {
	dir := writeConfig(t, "version: 99\n")

	_, err := LoadOrDefault(dir)
	require.Error(t, err)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
