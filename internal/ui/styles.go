// Package ui resolves catalog color tags to terminal styles. The catalog
// itself stays free of callable state; styling happens only here, at the
// presentation boundary.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/appforge/appforge/internal/catalog"
)

// Standard ANSI colors (0-15) so output respects the user's terminal theme.
var tagStyles = map[catalog.ColorTag]lipgloss.Style{
	catalog.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(11)),
	catalog.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(10)),
	catalog.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(14)),
	catalog.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(13)),
	catalog.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(9)),
	catalog.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(12)),
}

var (
	// Dim renders secondary hints (key help, resolved paths).
	Dim = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))

	// Title renders prompt titles.
	Title = lipgloss.NewStyle().Bold(true)

	// Cursor highlights the selected choice in a picker.
	Cursor = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(14)).Bold(true)
)

// Render returns s styled for the given color tag. Unknown tags render
// unstyled.
func Render(tag catalog.ColorTag, s string) string {
	style, ok := tagStyles[tag]
	if !ok {
		return s
	}

	return style.Render(s)
}
