package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	withConfigHome(t)

	cfg := Load()
	assert.Equal(t, "<Alt>space", cfg.General.Hotkey)
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
	assert.Equal(t, 8, cfg.Behavior.MaxResults)
	assert.True(t, cfg.Scripts.Enabled)
}

func TestLoadParsesExistingFile(t *testing.T) {
	dir := withConfigHome(t)
	configPath := filepath.Join(dir, "nova", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))

	content := `
[general]
hotkey = "<Super>space"

[behavior]
max_results = 5
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg := Load()
	assert.Equal(t, "<Super>space", cfg.General.Hotkey)
	assert.Equal(t, 5, cfg.Behavior.MaxResults)
	// Untouched sections still inherit defaults.
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
}

func TestLoadFromExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[general]
hotkey = "<Ctrl>space"
`), 0o644))

	cfg := LoadFrom(path)
	assert.Equal(t, "<Ctrl>space", cfg.General.Hotkey)
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
}

func TestValidateClampsOutOfRangeValues(t *testing.T) {
	cfg := defaultConfig()
	cfg.Appearance.Opacity = 2.0
	cfg.Behavior.MaxResults = 100
	cfg.Appearance.WindowWidth = 50
	cfg.Appearance.DescriptionSize = 1

	cfg.validate()

	assert.Equal(t, 1.0, cfg.Appearance.Opacity)
	assert.Equal(t, 20, cfg.Behavior.MaxResults)
	assert.Equal(t, 400, cfg.Appearance.WindowWidth)
	assert.Equal(t, 10, cfg.Appearance.DescriptionSize)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	withConfigHome(t)

	cfg := defaultConfig()
	cfg.General.Hotkey = "<Ctrl><Alt>space"
	require.NoError(t, cfg.Save())

	loaded := Load()
	assert.Equal(t, "<Ctrl><Alt>space", loaded.General.Hotkey)
}

func TestQuicklinkResolveURL(t *testing.T) {
	q := QuicklinkConfig{URL: "https://example.com/search?q={query}"}
	assert.True(t, q.HasQueryPlaceholder())
	assert.Equal(t, "https://example.com/search?q=hello%20world", q.ResolveURL("hello world"))

	plain := QuicklinkConfig{URL: "https://example.com"}
	assert.False(t, plain.HasQueryPlaceholder())
	assert.Equal(t, "https://example.com", plain.ResolveURL("anything"))
}

func TestSetAutostartWritesAndRemovesDesktopFile(t *testing.T) {
	withConfigHome(t)

	require.NoError(t, SetAutostart(true))
	dir := os.Getenv("XDG_CONFIG_HOME")
	desktopFile := filepath.Join(dir, "autostart", "nova.desktop")
	assert.FileExists(t, desktopFile)

	require.NoError(t, SetAutostart(false))
	assert.NoFileExists(t, desktopFile)
}

func TestGetThemeColorsFallsBackToDefault(t *testing.T) {
	colors := GetThemeColors("not-a-real-theme")
	assert.Equal(t, defaultThemeColors, colors)
}

func TestGetThemeColorsResolvesNamedThemes(t *testing.T) {
	nord := GetThemeColors("nord")
	assert.Equal(t, "#eceff4", nord.Text)

	mocha := GetThemeColors("catppuccin-mocha")
	assert.NotEmpty(t, mocha.BackgroundRGB)
	assert.NotEmpty(t, mocha.Text)
}

func TestParseHexColor(t *testing.T) {
	r, g, b := ParseHexColor("#cba6f7")
	assert.Equal(t, uint8(0xcb), r)
	assert.Equal(t, uint8(0xa6), g)
	assert.Equal(t, uint8(0xf7), b)

	r, g, b = ParseHexColor("bad")
	assert.Equal(t, uint8(203), r)
	assert.Equal(t, uint8(166), g)
	assert.Equal(t, uint8(247), b)
}
