// Package ui holds the terminal output styles for the CLI.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b8bb26"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598")).Bold(true)
)

// Success styles a confirmation message.
func Success(s string) string { return successStyle.Render(s) }

// Error styles an error message.
func Error(s string) string { return errorStyle.Render(s) }

// Muted styles secondary output like paths and counts.
func Muted(s string) string { return mutedStyle.Render(s) }

// Accent styles headings and names.
func Accent(s string) string { return accentStyle.Render(s) }

// Swatch renders a small colour block for a theme variable value, falling
// back to the raw value when it is not a colour the terminal can show.
func Swatch(value string) string {
	if len(value) == 0 || value[0] != '#' {
		return value
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("   ") + " " + value
}
