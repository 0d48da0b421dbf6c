// Package styles centralizes lipgloss styles for the fieldkit TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - chosen for legibility on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Field sub-element styles
	FieldLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	FieldDecoration = lipgloss.NewStyle().
			Foreground(MutedColor)

	FieldInput = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FieldCursor = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Blink(true)

	// Footer styles
	FooterBar = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1)

	FooterOK = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	FooterError = lipgloss.NewStyle().
			Foreground(ErrorColor)
)
