// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour.
	Secondary lipgloss.Color

	// Background is the editor background.
	Background lipgloss.Color

	// Surface is the background of bars around the editor.
	Surface lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success indicates positive outcomes.
	Success lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color
}

// DefaultTheme returns the solarized dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#268BD2"), // blue
		Secondary:  lipgloss.Color("#2AA198"), // cyan
		Background: lipgloss.Color("#002B36"), // base03
		Surface:    lipgloss.Color("#073642"), // base02
		Foreground: lipgloss.Color("#93A1A1"), // base1
		Muted:      lipgloss.Color("#586E75"), // base01
		Success:    lipgloss.Color("#859900"), // green
		Warning:    lipgloss.Color("#B58900"), // yellow
		Error:      lipgloss.Color("#DC322F"), // red
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the title bar.
	Title lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for highlighted items.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Success style for success messages.
	Success lipgloss.Style

	// Locked marks a saved, read-only document.
	Locked lipgloss.Style

	// ActionKey renders an action's shortcut.
	ActionKey lipgloss.Style

	// ActionLabel renders an action's label.
	ActionLabel lipgloss.Style

	// Editor frames the document text.
	Editor lipgloss.Style

	// InputField style for the load prompt.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			Background(theme.Surface).
			Padding(0, 1),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Background).
			Background(theme.Secondary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Locked: lipgloss.NewStyle().
			Foreground(theme.Warning),

		ActionKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		ActionLabel: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Editor: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Background),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Surface).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
