package ui

import "github.com/charmbracelet/lipgloss"

// Cinephage palette
var (
	// Primary colors
	AccentGold  = lipgloss.Color("#f4a261") // Sandy brown
	AccentAmber = lipgloss.Color("#e76f51") // Burnt sienna
	Background  = lipgloss.Color("#264653") // Charcoal
	Foreground  = lipgloss.Color("#f1faee") // Honeydew
	Muted       = lipgloss.Color("#8d99ae") // Cool gray

	// Semantic colors
	ColorSuccess = lipgloss.Color("#2a9d8f")
	ColorWarning = lipgloss.Color("#e9c46a")
	ColorError   = lipgloss.Color("#e63946")
	ColorInfo    = lipgloss.Color("#457b9d")
)

// Styles for TUI components
var (
	// Border styles
	BorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(AccentGold).
			Padding(1, 2)

	// Header style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Background).
			Background(AccentGold).
			Padding(0, 1).
			Width(80)

	// Footer style (keybindings)
	FooterStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Background(Background).
			Padding(0, 1).
			Width(80)

	// Title style (for sections)
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentGold).
			MarginTop(1).
			MarginBottom(1)

	// Content style
	ContentStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted text style
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Highlight style (for selections)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(AccentGold).
			Bold(true)

	// Success style (accepted releases)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Error style (banned/rejected releases)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning style (size/resolution rejections)
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	// Info style
	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// Stat style (for scores)
	StatStyle = lipgloss.NewStyle().
			Foreground(AccentAmber).
			Bold(true)
)

// FormatKeybinding formats a keybinding for display in footer
func FormatKeybinding(key, description string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(AccentGold).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(Muted)

	return keyStyle.Render(key) + " " + descStyle.Render(description)
}

// FormatHeader formats a header with consistent styling
func FormatHeader(title string) string {
	return HeaderStyle.Render(title)
}

// FormatFooter formats footer with keybindings
func FormatFooter(keybindings ...string) string {
	footer := ""
	for i, kb := range keybindings {
		if i > 0 {
			footer += "  "
		}
		footer += kb
	}
	return FooterStyle.Render(footer)
}

// Status marker styles
var (
	OKMarker   = lipgloss.NewStyle().Foreground(ColorSuccess).SetString("[OK]")
	InfoMarker = lipgloss.NewStyle().Foreground(ColorInfo).SetString("[INFO]")
	WarnMarker = lipgloss.NewStyle().Foreground(ColorWarning).SetString("[WARN]")
	FailMarker = lipgloss.NewStyle().Foreground(ColorError).SetString("[FAIL]")
)

// FormatStatusOK returns an [OK] marker with message
func FormatStatusOK(message string) string {
	return OKMarker.String() + " " + message
}

// FormatStatusInfo returns an [INFO] marker with message
func FormatStatusInfo(message string) string {
	return InfoMarker.String() + " " + message
}

// FormatStatusWarn returns a [WARN] marker with message
func FormatStatusWarn(message string) string {
	return WarnMarker.String() + " " + message
}

// FormatStatusFail returns a [FAIL] marker with message
func FormatStatusFail(message string) string {
	return FailMarker.String() + " " + message
}
