package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/logger"
	"github.com/symo-dev/symo/internal/ui/styles"
)

// StatusBar is the bottom line: title, time, chart state, clicks and the
// warning/error counters.
type StatusBar struct {
	width      int
	timestamp  time.Time
	dateFormat string

	chartsVisible bool
	hover         string
	keys, mouse   int
	message       string
	messageErr    bool
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	return &StatusBar{
		dateFormat:    "2006-01-02 15:04:05",
		chartsVisible: true,
	}
}

// SetSize sets the width of the status bar
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetTimestamp sets the current timestamp
func (s *StatusBar) SetTimestamp(timestamp time.Time) {
	s.timestamp = timestamp
}

// SetChartsVisible sets the chart visibility state
func (s *StatusBar) SetChartsVisible(visible bool) {
	s.chartsVisible = visible
}

// SetHover sets the hover readout, "" when nothing is hovered.
func (s *StatusBar) SetHover(text string) {
	s.hover = text
}

// SetClicks sets the keyboard and mouse press counts.
func (s *StatusBar) SetClicks(keys, mouse int) {
	s.keys = keys
	s.mouse = mouse
}

// SetMessage shows a transient message; isErr selects the error style.
func (s *StatusBar) SetMessage(msg string, isErr bool) {
	s.message = msg
	s.messageErr = isErr
}

// View renders the status bar
func (s *StatusBar) View() string {
	left := styles.StatusTitleStyle.Render("symo")
	if s.chartsVisible {
		left += styles.MutedStyle.Render(" | " + i18n.Tr("graphs"))
	}

	var parts []string
	switch {
	case s.message != "" && s.messageErr:
		parts = append(parts, styles.ErrorStyle.Render(s.message))
	case s.message != "":
		parts = append(parts, styles.SuccessStyle.Render(s.message))
	case s.hover != "":
		parts = append(parts, styles.AccentStyle.Render(s.hover))
	}

	parts = append(parts, fmt.Sprintf("⌨ %d  🖱 %d", s.keys, s.mouse))

	if warnCount, errCount := logger.GetCounts(); warnCount > 0 || errCount > 0 {
		var counts []string
		if warnCount > 0 {
			counts = append(counts, styles.WarningStyle.Render(fmt.Sprintf("⚠ %d", warnCount)))
		}
		if errCount > 0 {
			counts = append(counts, styles.ErrorStyle.Render(fmt.Sprintf("✕ %d", errCount)))
		}
		parts = append(parts, strings.Join(counts, " "))
	}

	if !s.timestamp.IsZero() {
		parts = append(parts, styles.StatusTimeStyle.Render(s.timestamp.Format(s.dateFormat)))
	}

	right := strings.Join(parts, styles.MutedStyle.Render(" | "))

	inner := max(s.width-4, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}
