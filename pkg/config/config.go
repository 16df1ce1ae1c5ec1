// Package config loads, validates, and persists Nova's user-facing
// configuration: general settings, appearance, behavior, aliases,
// quicklinks, and the scripts directory.
//
// Values are read from a TOML file via pelletier/go-toml/v2, then
// overlaid with any matching environment variables via caarlos0/env so
// a user (or a systemd unit) can override a single field without
// editing the file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config is the root of config.toml.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Behavior   BehaviorConfig     `toml:"behavior"`
	Aliases    []AliasConfig      `toml:"aliases"`
	Quicklinks []QuicklinkConfig  `toml:"quicklinks"`
	Scripts    ScriptsConfig      `toml:"scripts"`
}

// AliasConfig maps a keyword to a target shell command, which the
// executor runs through Platform.RunShellCommand.
type AliasConfig struct {
	Keyword string  `toml:"keyword"`
	Name    string  `toml:"name"`
	Target  string  `toml:"target"`
	Icon    *string `toml:"icon,omitempty"`
}

// QuicklinkConfig is a URL template triggered by a keyword, optionally
// taking the rest of the query as a "{query}" substitution.
type QuicklinkConfig struct {
	Keyword string  `toml:"keyword"`
	Name    string  `toml:"name"`
	URL     string  `toml:"url"`
	Icon    *string `toml:"icon,omitempty"`
}

// HasQueryPlaceholder reports whether URL contains a "{query}" slot.
func (q QuicklinkConfig) HasQueryPlaceholder() bool {
	return strings.Contains(q.URL, "{query}")
}

// ResolveURL substitutes the percent-encoded query into the URL
// template, or returns URL unchanged if it has no placeholder.
func (q QuicklinkConfig) ResolveURL(query string) string {
	if !q.HasQueryPlaceholder() {
		return q.URL
	}
	return strings.ReplaceAll(q.URL, "{query}", url.PathEscape(query))
}

// ScriptsConfig controls the custom-scripts directory scanned for
// executable command entries.
type ScriptsConfig struct {
	Directory string `toml:"directory" env:"NOVA_SCRIPTS_DIRECTORY"`
	Enabled   bool   `toml:"enabled" env:"NOVA_SCRIPTS_ENABLED"`
}

// GeneralConfig holds settings not tied to a specific subsystem.
type GeneralConfig struct {
	Hotkey string `toml:"hotkey" env:"NOVA_HOTKEY"`
}

// AppearanceConfig controls the launcher window's look.
type AppearanceConfig struct {
	Theme             string  `toml:"theme" env:"NOVA_THEME"`
	AccentColor       string  `toml:"accent_color" env:"NOVA_ACCENT_COLOR"`
	Opacity           float64 `toml:"opacity" env:"NOVA_OPACITY"`
	WindowWidth       int     `toml:"window_width" env:"NOVA_WINDOW_WIDTH"`
	WindowX           *int    `toml:"window_x,omitempty"`
	WindowY           *int    `toml:"window_y,omitempty"`
	DescriptionSize   int     `toml:"description_size" env:"NOVA_DESCRIPTION_SIZE"`
	DescriptionColor  *string `toml:"description_color,omitempty"`
}

// BehaviorConfig controls runtime behavior of the search engine.
type BehaviorConfig struct {
	Autostart  bool `toml:"autostart" env:"NOVA_AUTOSTART"`
	MaxResults int  `toml:"max_results" env:"NOVA_MAX_RESULTS"`
}

func defaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Hotkey: "<Alt>space",
		},
		Appearance: AppearanceConfig{
			Theme:           "catppuccin-mocha",
			AccentColor:     "#cba6f7",
			Opacity:         0.92,
			WindowWidth:     600,
			DescriptionSize: 13,
		},
		Behavior: BehaviorConfig{
			Autostart:  false,
			MaxResults: 8,
		},
		Scripts: ScriptsConfig{
			Directory: "~/.config/nova/scripts",
			Enabled:   true,
		},
	}
}

// Path returns the config.toml path, honoring XDG_CONFIG_HOME.
func Path() string {
	return filepath.Join(configDir(), "nova", "config.toml")
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "/tmp"
	}
	return filepath.Join(home, ".config")
}

// Load reads config.toml, falling back to defaults if it is missing or
// malformed, overlays environment variables, then validates and clamps
// the result. It never returns an error: a broken config file degrades
// to defaults rather than blocking startup, matching the launcher's
// "always show something" philosophy.
func Load() Config {
	return LoadFrom(Path())
}

// LoadFrom is Load with an explicit config file path, for callers (the
// CLI's --config flag) that don't want the XDG default.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if content, err := os.ReadFile(path); err == nil {
		var fromFile Config
		if err := toml.Unmarshal(content, &fromFile); err == nil {
			cfg = mergeLoaded(cfg, fromFile)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		// Env overlay is best-effort; a malformed env var (e.g.
		// NOVA_OPACITY=abc) leaves the TOML/default value in place.
		_ = err
	}

	cfg.validate()
	return cfg
}

// mergeLoaded takes the file-parsed config as authoritative, since
// go-toml already applies Go zero values for anything absent from the
// file; defaults only need to backfill fields the zero value would
// otherwise blank out incorrectly (the general/appearance/behavior/
// scripts sub-structs are always present in a valid TOML file, but an
// empty or partial file should still inherit sensible defaults).
func mergeLoaded(defaults, loaded Config) Config {
	merged := loaded
	if merged.General.Hotkey == "" {
		merged.General.Hotkey = defaults.General.Hotkey
	}
	if merged.Appearance.Theme == "" {
		merged.Appearance.Theme = defaults.Appearance.Theme
	}
	if merged.Appearance.AccentColor == "" {
		merged.Appearance.AccentColor = defaults.Appearance.AccentColor
	}
	if merged.Appearance.Opacity == 0 {
		merged.Appearance.Opacity = defaults.Appearance.Opacity
	}
	if merged.Appearance.WindowWidth == 0 {
		merged.Appearance.WindowWidth = defaults.Appearance.WindowWidth
	}
	if merged.Appearance.DescriptionSize == 0 {
		merged.Appearance.DescriptionSize = defaults.Appearance.DescriptionSize
	}
	if merged.Behavior.MaxResults == 0 {
		merged.Behavior.MaxResults = defaults.Behavior.MaxResults
	}
	if merged.Scripts.Directory == "" {
		merged.Scripts.Directory = defaults.Scripts.Directory
		merged.Scripts.Enabled = defaults.Scripts.Enabled
	}
	return merged
}

// validate clamps fields to the ranges the appearance and behavior
// subsystems tolerate.
func (c *Config) validate() {
	c.Appearance.Opacity = clamp(c.Appearance.Opacity, 0.5, 1.0)
	c.Behavior.MaxResults = clampInt(c.Behavior.MaxResults, 1, 20)
	c.Appearance.WindowWidth = clampInt(c.Appearance.WindowWidth, 400, 1200)
	c.Appearance.DescriptionSize = clampInt(c.Appearance.DescriptionSize, 10, 24)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Save writes the config to its TOML path, creating the parent
// directory if needed.
func (c Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	content, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// autostartDesktopEntry is the XDG autostart .desktop template written
// to ~/.config/autostart/nova.desktop.
const autostartDesktopEntry = `[Desktop Entry]
Type=Application
Name=Nova
Comment=Keyboard-driven productivity launcher
Exec=%s
StartupNotify=false
X-GNOME-Autostart-enabled=true
`

// SetAutostart writes or removes the XDG autostart entry that launches
// Nova at session login.
func SetAutostart(enabled bool) error {
	autostartDir := filepath.Join(configDir(), "autostart")
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		return fmt.Errorf("create autostart directory: %w", err)
	}

	desktopFile := filepath.Join(autostartDir, "nova.desktop")

	if !enabled {
		if err := os.Remove(desktopFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove autostart file: %w", err)
		}
		return nil
	}

	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	content := fmt.Sprintf(autostartDesktopEntry, exePath)
	if err := os.WriteFile(desktopFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write autostart file: %w", err)
	}
	return nil
}
