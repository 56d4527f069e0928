package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir,
		"App1_1.0.0.0.app",
		"App1_2.0.0.0.app",
		"README.md",
		"config.json",
	)
	// Matching files in subdirectories must not be picked up.
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeFiles(t, sub, "Nested_1.0.app")

	scanner := NewScanner(zap.NewNop(), ".app")
	names, err := scanner.List(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"App1_1.0.0.0.app", "App1_2.0.0.0.app"}, names)
}

func TestListSkipsSuffixedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Bundle_1.0.app"), 0755))
	writeFiles(t, dir, "Real_1.0.app")

	scanner := NewScanner(zap.NewNop(), ".app")
	names, err := scanner.List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Real_1.0.app"}, names)
}

func TestListEmptyDirectory(t *testing.T) {
	scanner := NewScanner(zap.NewNop(), ".app")
	names, err := scanner.List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListMissingDirectory(t *testing.T) {
	scanner := NewScanner(zap.NewNop(), ".app")
	_, err := scanner.List(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
