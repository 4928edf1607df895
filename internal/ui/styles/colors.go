// Package styles provides centralized Lipgloss styling for the symo UI.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	// Usage level colors
	ColorNormal   = lipgloss.Color("10")  // Green - below warning
	ColorElevated = lipgloss.Color("11")  // Yellow - warning
	ColorHigh     = lipgloss.Color("208") // Orange - high
	ColorCritical = lipgloss.Color("9")   // Red - critical

	// UI element colors
	ColorBorder  = lipgloss.Color("240") // Gray - all borders
	ColorAccent  = lipgloss.Color("6")   // Cyan - titles, highlights
	ColorMuted   = lipgloss.Color("8")   // Dark gray - secondary text
	ColorText    = lipgloss.Color("7")
	ColorSuccess = lipgloss.Color("10")
	ColorError   = lipgloss.Color("9")

	// ChartBackground matches the chart's dark fill
	ColorChartBackground = lipgloss.Color("#1a1a1f")
)

// Usage thresholds in percent.
const (
	ThresholdElevated = 60.0
	ThresholdHigh     = 80.0
	ThresholdCritical = 90.0
)

// UsageColor returns the color for a percentage reading.
func UsageColor(percent float64) lipgloss.Color {
	switch {
	case percent >= ThresholdCritical:
		return ColorCritical
	case percent >= ThresholdHigh:
		return ColorHigh
	case percent >= ThresholdElevated:
		return ColorElevated
	default:
		return ColorNormal
	}
}

// TemperatureColor returns the color for a CPU temperature in °C.
func TemperatureColor(celsius float64) lipgloss.Color {
	switch {
	case celsius >= 90:
		return ColorCritical
	case celsius >= 80:
		return ColorHigh
	case celsius >= 70:
		return ColorElevated
	default:
		return ColorNormal
	}
}
