package components

import (
	"fmt"
	"strings"

	"github.com/VividCortex/ewma"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/metrics"
	"github.com/symo-dev/symo/internal/sysmetrics"
	"github.com/symo-dev/symo/internal/ui/styles"
)

// sparkWidth is the width of the inline history next to each menu line.
const sparkWidth = 16

// MenuLine is one rendered row of the menu panel.
type MenuLine struct {
	Item  string
	Label string
	Value string
	Color lipgloss.Color
	// Spark is the inline history, empty when the item has none
	Spark string
}

// Menu is the panel listing the latest readings, one line per enabled item.
type Menu struct {
	show    func(item string) bool
	set     *metrics.SeriesSet
	reading sysmetrics.Reading
	ready   bool
	keys    int
	mouse   int
	width   int

	cpuAvg ewma.MovingAverage
	bars   *UsageBars
}

// NewMenu creates a menu. show selects the enabled items; nil shows all.
func NewMenu(show func(item string) bool, set *metrics.SeriesSet) *Menu {
	if show == nil {
		show = func(string) bool { return true }
	}
	return &Menu{
		show:   show,
		set:    set,
		width:  48,
		cpuAvg: ewma.NewMovingAverage(),
		bars:   NewUsageBars(44),
	}
}

// SetWidth sets the inner width of the panel.
func (m *Menu) SetWidth(width int) {
	m.width = max(width, 24)
	m.bars.SetWidth(m.width - 4)
}

// Update records the latest reading and click counts.
func (m *Menu) Update(r sysmetrics.Reading, keys, mouse int) {
	m.reading = r
	m.ready = true
	m.keys = keys
	m.mouse = mouse
	m.cpuAvg.Add(r.CPUUsage)
}

// SetClicks updates the click counts between readings.
func (m *Menu) SetClicks(keys, mouse int) {
	m.keys = keys
	m.mouse = mouse
}

// SmoothedCPU returns the exponentially weighted CPU usage.
func (m *Menu) SmoothedCPU() float64 {
	return m.cpuAvg.Value()
}

func (m *Menu) spark(metric metrics.Metric) string {
	if m.set == nil {
		return ""
	}
	data := m.set.Buffer(metric).Recent(sparkWidth * 2)
	color := lipgloss.Color(hexOf(metric))
	if metric.Unit() == metrics.UnitPercent {
		return RenderUnicodeSparkline(data, PercentSparklineConfig(sparkWidth, color))
	}
	cfg := DefaultSparklineConfig()
	cfg.Width = sparkWidth
	cfg.Color = color
	return RenderUnicodeSparkline(data, cfg)
}

// Lines returns the enabled lines in menu order.
func (m *Menu) Lines() []MenuLine {
	r := m.reading
	var lines []MenuLine
	add := func(line MenuLine) {
		if m.show(line.Item) {
			lines = append(lines, line)
		}
	}

	add(MenuLine{
		Item:  "cpu",
		Label: i18n.Tr("cpu"),
		Value: fmt.Sprintf("%.0f%% (~%.0f%%)  %.0f°C", r.CPUUsage, m.SmoothedCPU(), r.CPUTemp),
		Color: styles.TemperatureColor(r.CPUTemp),
		Spark: m.spark(metrics.CPUUsage),
	})
	add(MenuLine{
		Item:  "ram",
		Label: i18n.Tr("ram"),
		Value: fmt.Sprintf("%.1f/%.1f GB", r.RAMUsed, r.RAMTotal),
		Color: styles.UsageColor(metrics.Percent(r.RAMUsed, r.RAMTotal)),
		Spark: m.spark(metrics.RAM),
	})
	add(MenuLine{
		Item:  "swap",
		Label: i18n.Tr("swap"),
		Value: fmt.Sprintf("%.1f/%.1f GB", r.SwapUsed, r.SwapTotal),
		Color: styles.UsageColor(metrics.Percent(r.SwapUsed, r.SwapTotal)),
		Spark: m.spark(metrics.Swap),
	})
	add(MenuLine{
		Item:  "disk",
		Label: i18n.Tr("disk"),
		Value: fmt.Sprintf("%.1f/%.1f GB", r.DiskUsed, r.DiskTotal),
		Color: styles.UsageColor(metrics.Percent(r.DiskUsed, r.DiskTotal)),
		Spark: m.spark(metrics.Disk),
	})
	add(MenuLine{
		Item:  "net",
		Label: i18n.Tr("network"),
		Value: fmt.Sprintf("↓%.1f/↑%.1f MB/s (%s/%s)", r.NetRecv, r.NetSent,
			humanize.IBytes(r.NetRecvBytes), humanize.IBytes(r.NetSentBytes)),
		Color: styles.ColorText,
		Spark: m.spark(metrics.NetRecv),
	})
	add(MenuLine{
		Item:  "uptime",
		Label: i18n.Tr("uptime"),
		Value: sysmetrics.FormatUptime(r.Uptime),
		Color: styles.ColorText,
	})
	add(MenuLine{
		Item:  "keyboard_clicks",
		Label: i18n.Tr("keyboard_clicks"),
		Value: humanize.Comma(int64(m.keys)),
		Color: styles.ColorText,
	})
	add(MenuLine{
		Item:  "mouse_clicks",
		Label: i18n.Tr("mouse_clicks"),
		Value: humanize.Comma(int64(m.mouse)),
		Color: styles.ColorText,
	})
	return lines
}

// usageItems returns the percentage bars for enabled usage lines.
func (m *Menu) usageItems() []UsageItem {
	r := m.reading
	var items []UsageItem
	if m.show("cpu") {
		items = append(items, UsageItem{Label: i18n.Tr("cpu"), Percent: r.CPUUsage})
	}
	if m.show("ram") {
		items = append(items, UsageItem{Label: i18n.Tr("ram"), Percent: metrics.Percent(r.RAMUsed, r.RAMTotal)})
	}
	if m.show("swap") {
		items = append(items, UsageItem{Label: i18n.Tr("swap"), Percent: metrics.Percent(r.SwapUsed, r.SwapTotal)})
	}
	if m.show("disk") {
		items = append(items, UsageItem{Label: i18n.Tr("disk"), Percent: metrics.Percent(r.DiskUsed, r.DiskTotal)})
	}
	return items
}

// View renders the panel. With graphs set it appends a multi-line CPU
// history, used while the chart is hidden.
func (m *Menu) View(graphs bool) string {
	if !m.ready {
		return styles.PanelStyle.Width(m.width).Render(styles.MutedStyle.Render(i18n.Tr("waiting")))
	}

	lines := m.Lines()
	labelWidth := 0
	for _, l := range lines {
		labelWidth = max(labelWidth, lipgloss.Width(l.Label))
	}

	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		label := styles.PanelLabelStyle.Render(l.Label + ":" + strings.Repeat(" ", labelWidth-lipgloss.Width(l.Label)))
		value := styles.PanelValueStyle.Foreground(l.Color).Render(l.Value)
		sb.WriteString(label + " " + value)
		if l.Spark != "" {
			pad := m.width - lipgloss.Width(label) - lipgloss.Width(value) - sparkWidth - 4
			if pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad) + " " + l.Spark)
			}
		}
	}

	if items := m.usageItems(); len(items) > 0 {
		m.bars.SetItems(items)
		sb.WriteString("\n\n")
		sb.WriteString(m.bars.View())
	}

	if graphs && m.set != nil {
		cfg := SparklineConfig{
			Width:   m.width - 14,
			Height:  5,
			Color:   lipgloss.Color(hexOf(metrics.CPUUsage)),
			Caption: metrics.CPUUsage.InfoName(i18n.Tr("cpu")),
			Bounded: true,
			Max:     100,
		}
		if graph := RenderAsciigraphSparkline(m.set.Buffer(metrics.CPUUsage).Values(), cfg); graph != "" {
			sb.WriteString("\n\n")
			sb.WriteString(graph)
		}
	}

	return styles.PanelStyle.Width(m.width).Render(sb.String())
}

func hexOf(metric metrics.Metric) string {
	c := metric.Color()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
