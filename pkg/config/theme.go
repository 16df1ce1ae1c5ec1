package config

import (
	"strconv"
	"strings"

	"github.com/catppuccin/go"
)

// ThemeColors is the subset of a theme's palette the window chrome
// needs: a background RGB triple (as "r, g, b", matching the format an
// rgba() CSS function expects), a primary text color, and a secondary
// ("subtext") color used for result descriptions.
type ThemeColors struct {
	BackgroundRGB string
	Text          string
	Subtext       string
}

var defaultThemeColors = ThemeColors{
	BackgroundRGB: "30, 30, 46",
	Text:          "#cdd6f4",
	Subtext:       "#6c7086",
}

// catppuccinFlavors maps a theme name to its go-catppuccin flavor. The
// four Catppuccin variants are sourced directly from the palette
// library rather than hand-transcribed, so a palette update upstream
// flows through automatically.
var catppuccinFlavors = map[string]catppuccin.Flavor{
	"catppuccin-mocha":     catppuccin.Mocha,
	"catppuccin-macchiato": catppuccin.Macchiato,
	"catppuccin-frappe":    catppuccin.Frappe,
	"catppuccin-latte":     catppuccin.Latte,
}

// otherThemeColors carries the non-Catppuccin themes, which the pack
// has no palette library for; these are transcribed by hand from the
// same reference values the launcher's GTK CSS used.
var otherThemeColors = map[string]ThemeColors{
	"nord":         {BackgroundRGB: "46, 52, 64", Text: "#eceff4", Subtext: "#4c566a"},
	"dracula":      {BackgroundRGB: "40, 42, 54", Text: "#f8f8f2", Subtext: "#6272a4"},
	"gruvbox-dark": {BackgroundRGB: "40, 40, 40", Text: "#ebdbb2", Subtext: "#928374"},
	"tokyo-night":  {BackgroundRGB: "26, 27, 38", Text: "#c0caf5", Subtext: "#565f89"},
	"one-dark":     {BackgroundRGB: "40, 44, 52", Text: "#abb2bf", Subtext: "#5c6370"},
}

// GetThemeColors resolves a theme name to its colors, falling back to
// catppuccin-mocha for anything unrecognized.
func GetThemeColors(theme string) ThemeColors {
	if flavor, ok := catppuccinFlavors[theme]; ok {
		colors := flavor.Colors()
		return ThemeColors{
			BackgroundRGB: hexToRGBString(colors.Base.Hex),
			Text:          "#" + colors.Text.Hex,
			Subtext: "#" + colors.Subtext0.Hex,
		}
	}
	if c, ok := otherThemeColors[theme]; ok {
		return c
	}
	return defaultThemeColors
}

// hexToRGBString converts a "rrggbb" hex string (no leading '#') to the
// "r, g, b" decimal-triple format rgba() CSS expects.
func hexToRGBString(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return defaultThemeColors.BackgroundRGB
	}
	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return defaultThemeColors.BackgroundRGB
	}
	return strconv.FormatUint(r, 10) + ", " + strconv.FormatUint(g, 10) + ", " + strconv.FormatUint(b, 10)
}

// ParseHexColor parses a "#rrggbb" string into its RGB components,
// defaulting to Catppuccin mauve (203, 166, 247) on malformed input.
func ParseHexColor(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return 203, 166, 247
	}
	rv, errR := strconv.ParseUint(hex[0:2], 16, 8)
	gv, errG := strconv.ParseUint(hex[2:4], 16, 8)
	bv, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return 203, 166, 247
	}
	return uint8(rv), uint8(gv), uint8(bv)
}
