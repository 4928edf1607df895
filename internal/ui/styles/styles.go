package styles

import "github.com/charmbracelet/lipgloss"

// Common border styles
var (
	BorderNormal  = lipgloss.NormalBorder()
	BorderRounded = lipgloss.RoundedBorder()
)

// Panel styles
var (
	// PanelStyle wraps the menu and chart panels
	PanelStyle = lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	// ChartPanelStyle wraps the braille chart
	ChartPanelStyle = lipgloss.NewStyle().
			Border(BorderRounded).
			BorderForeground(ColorBorder)

	// PanelLabelStyle is for menu line labels
	PanelLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// PanelValueStyle is for menu line values
	PanelValueStyle = lipgloss.NewStyle().
			Bold(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Border(BorderNormal).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	StatusTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	StatusTimeStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Message styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorElevated)
)

// Common UI styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)

	// HelpStyle wraps the key help footer
	HelpStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
