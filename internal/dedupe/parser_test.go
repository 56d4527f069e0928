package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMatch(t *testing.T) {
	parser := NewParser(zap.NewNop(), ".app")

	t.Run("name part with spaces and underscores", func(t *testing.T) {
		entry, ok := parser.Match("EOS Solutions_Common Data Layer_25.0.11.0.app")
		require.True(t, ok)
		assert.Equal(t, "EOS Solutions_Common Data Layer", entry.Name)
		assert.Equal(t, "25.0.11.0", entry.Version)
		assert.Equal(t, "EOS Solutions_Common Data Layer_25.0.11.0.app", entry.Filename)
	})

	t.Run("name part with dots", func(t *testing.T) {
		entry, ok := parser.Match("Vendor_Module.Sub_24.0.1.3.app")
		require.True(t, ok)
		assert.Equal(t, "Vendor_Module.Sub", entry.Name)
		assert.Equal(t, "24.0.1.3", entry.Version)
	})

	t.Run("single-segment version", func(t *testing.T) {
		entry, ok := parser.Match("Tool_7.app")
		require.True(t, ok)
		assert.Equal(t, "Tool", entry.Name)
		assert.Equal(t, "7", entry.Version)
	})

	t.Run("greedy name part claims earlier version-like runs", func(t *testing.T) {
		entry, ok := parser.Match("App_1.0_2.0.app")
		require.True(t, ok)
		assert.Equal(t, "App_1.0", entry.Name)
		assert.Equal(t, "2.0", entry.Version)
	})

	t.Run("wrong extension", func(t *testing.T) {
		_, ok := parser.Match("README.md")
		assert.False(t, ok)
		_, ok = parser.Match("config.json")
		assert.False(t, ok)
	})

	t.Run("suffix is case-sensitive", func(t *testing.T) {
		_, ok := parser.Match("App_1.0.0.0.APP")
		assert.False(t, ok)
	})

	t.Run("no trailing version", func(t *testing.T) {
		_, ok := parser.Match("JustAName.app")
		assert.False(t, ok)
	})

	t.Run("version with trailing dot", func(t *testing.T) {
		_, ok := parser.Match("App_1.0..app")
		assert.False(t, ok)
	})

	t.Run("bare suffix", func(t *testing.T) {
		_, ok := parser.Match(".app")
		assert.False(t, ok)
	})
}

func TestParse(t *testing.T) {
	parser := NewParser(zap.NewNop(), ".app")

	listing := []string{
		"App1_1.0.0.0.app",
		"README.md",
		"App2_2.0.0.0.app",
		"notes.txt",
	}
	entries := parser.Parse(listing)

	require.Len(t, entries, 2)
	assert.Equal(t, "App1", entries[0].Name)
	assert.Equal(t, "App2", entries[1].Name)
}
