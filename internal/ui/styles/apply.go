package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors config.ThemeConfig so styles stays free of the
// config package.
type ThemeConfig struct {
	Highlight string
	Subtle    string
	Error     string
	Success   string
}

// Apply overrides the default palette with any non-empty configured
// colors, then rebuilds the styles that captured them. Colors are
// "#RGB" or "#RRGGBB" hex values; an override replaces both the light
// and dark variant.
func Apply(cfg ThemeConfig) error {
	overrides := []struct {
		name  string
		value string
		set   func(lipgloss.AdaptiveColor)
	}{
		{"highlight", cfg.Highlight, func(c lipgloss.AdaptiveColor) {
			KeyBadgeColor = c
			BorderFocusColor = c
		}},
		{"subtle", cfg.Subtle, func(c lipgloss.AdaptiveColor) {
			TextSecondaryColor = c
			TextMutedColor = c
		}},
		{"error", cfg.Error, func(c lipgloss.AdaptiveColor) {
			StatusErrorColor = c
		}},
		{"success", cfg.Success, func(c lipgloss.AdaptiveColor) {
			StatusSuccessColor = c
		}},
	}

	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		if !isValidHexColor(o.value) {
			return fmt.Errorf("invalid hex color for theme.%s: %s", o.name, o.value)
		}
		o.set(lipgloss.AdaptiveColor{Light: o.value, Dark: o.value})
	}

	rebuildStyles()
	return nil
}

// rebuildStyles recreates the styles that captured colors at creation
// time; lipgloss styles hold the color they were built with.
func rebuildStyles() {
	KeyBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(KeyBadgeColor)
	URLStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
