// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"} // Site names
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // URLs
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Shortcut key badge
	KeyBadgeColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#CBA6F7"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Selection indicator style
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// KeyBadgeStyle renders a site's shortcut key, e.g. "[G]".
	KeyBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(KeyBadgeColor)

	// NameStyle renders a site's name.
	NameStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	// URLStyle renders a site's URL.
	URLStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)

	// HelpStyle renders footer help lines.
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// ErrorStyle renders failure messages.
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	// SuccessStyle renders confirmation messages.
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	// TitleStyle renders view titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)

	// BoxStyle wraps a view in a rounded border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderDefaultColor).
			Padding(0, 1)
)
