package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Scan.Directory)
	assert.Equal(t, ".app", cfg.Scan.Suffix)
	assert.False(t, cfg.Execution.DryRun)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "app_cleanup.log", cfg.Logging.File)
	assert.True(t, cfg.Logging.Console)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appsweep.yaml")
	data := []byte(`
scan:
  directory: /srv/apps
execution:
  dry_run: true
logging:
  level: debug
  file: /var/log/appsweep.log
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/apps", cfg.Scan.Directory)
	// Unset keys keep their defaults.
	assert.Equal(t, ".app", cfg.Scan.Suffix)
	assert.True(t, cfg.Execution.DryRun)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/var/log/appsweep.log", cfg.Logging.File)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan: [broken"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "appsweep.yaml")

	cfg := DefaultConfig()
	cfg.Scan.Directory = "/data/apps"
	cfg.Execution.DryRun = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	t.Run("empty suffix rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Scan.Suffix = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty directory rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Scan.Directory = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "verbose"
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Format = "xml"
		assert.Error(t, cfg.Validate())
	})
}
