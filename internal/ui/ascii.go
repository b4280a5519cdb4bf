package ui

import "github.com/charmbracelet/lipgloss"

// ASCII art for the cinephage header as a single string to preserve
// exact formatting
const cinephageASCII = `        _                  _
   ___ (_)_ __   ___ _ __ | |__   __ _  __ _  ___
  / __|| | '_ \ / _ \ '_ \| '_ \ / _` + "`" + ` |/ _` + "`" + ` |/ _ \
 | (__ | | | | |  __/ |_) | | | | (_| | (_| |  __/
  \___||_|_| |_|\___| .__/|_| |_|\__,_|\__, |\___|
                    |_|                |___/       `

// FormatASCIIHeader renders the cinephage ASCII header
func FormatASCIIHeader() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(AccentGold).
		Bold(true)

	return headerStyle.Render(cinephageASCII)
}

// FormatASCIIHeaderWithSubtext renders header with subtitle
func FormatASCIIHeaderWithSubtext(subtext string) string {
	header := FormatASCIIHeader()

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render(subtext)

	return header + "\n\n" + subtitle
}
