package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/symo-dev/symo/internal/ui/styles"
)

// UsageItem is one percentage bar.
type UsageItem struct {
	Label   string
	Percent float64
}

// UsageBars renders percentage readings as horizontal bars on a fixed
// 0..100 scale, colored by usage level.
type UsageBars struct {
	width int
	items []UsageItem
}

// NewUsageBars creates usage bars fitting width columns.
func NewUsageBars(width int) *UsageBars {
	b := &UsageBars{}
	b.SetWidth(width)
	return b
}

// SetWidth updates the available width.
func (b *UsageBars) SetWidth(width int) {
	b.width = max(width, 20)
}

// SetItems replaces the bars.
func (b *UsageBars) SetItems(items []UsageItem) {
	b.items = items
}

// barArea is the number of columns a 100% bar spans.
func (b *UsageBars) barArea() int {
	labelWidth := 0
	for _, item := range b.items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}
	// label, separators and the "100" value column
	return max(b.width-labelWidth-8, 5)
}

// View renders the bars.
func (b *UsageBars) View() string {
	if len(b.items) == 0 {
		return ""
	}

	area := b.barArea()
	bars := make(pterm.Bars, 0, len(b.items))
	peak := 0
	for _, item := range b.items {
		v := clampPercent(item.Percent)
		peak = max(peak, v)
		bars = append(bars, pterm.Bar{Label: item.Label, Value: v})
	}
	if peak == 0 {
		return RenderSimpleUsageBars(b.items, area)
	}

	// pterm scales the largest bar to the full width; shrink the width so
	// that 100 maps to area columns.
	pterm.DisableColor()
	defer pterm.EnableColor()

	chart, err := pterm.DefaultBarChart.
		WithBars(bars).
		WithHorizontal().
		WithShowValue().
		WithWidth(max(area*peak/100, 1)).
		Srender()
	if err != nil {
		return RenderSimpleUsageBars(b.items, area)
	}

	return colorBars(chart, b.items)
}

// colorBars drops blank lines and colors the bar run of each remaining
// line by its item's level.
func colorBars(chart string, items []UsageItem) string {
	var lines []string
	for _, line := range strings.Split(chart, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, " "))
		}
	}
	for i, line := range lines {
		if i >= len(items) {
			break
		}
		style := lipgloss.NewStyle().Foreground(styles.UsageColor(items[i].Percent))
		lines[i] = colorBarRun(line, style)
	}
	return strings.Join(lines, "\n")
}

func colorBarRun(line string, style lipgloss.Style) string {
	var out, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out.WriteString(style.Render(run.String()))
			run.Reset()
		}
	}
	for _, r := range line {
		if r == '█' || r == '▇' || r == '■' {
			run.WriteRune(r)
			continue
		}
		flush()
		out.WriteRune(r)
	}
	flush()
	return out.String()
}

// RenderSimpleUsageBars draws the bars without pterm.
func RenderSimpleUsageBars(items []UsageItem, area int) string {
	labelWidth := 0
	for _, item := range items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		v := clampPercent(item.Percent)
		n := area * v / 100
		sb.WriteString(item.Label)
		sb.WriteString(strings.Repeat(" ", labelWidth-lipgloss.Width(item.Label)+1))
		sb.WriteString(lipgloss.NewStyle().Foreground(styles.UsageColor(item.Percent)).Render(strings.Repeat("█", n)))
		sb.WriteString(strings.Repeat(" ", area-n))
		sb.WriteString(fmt.Sprintf(" %3d", v))
	}
	return sb.String()
}

func clampPercent(p float64) int {
	if math.IsNaN(p) {
		return 0
	}
	return int(math.Round(math.Min(math.Max(p, 0), 100)))
}
