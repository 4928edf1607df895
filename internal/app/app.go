// Package app wires the sampler, series history, chart view and menu into
// the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/symo-dev/symo/internal/canvas"
	"github.com/symo-dev/symo/internal/chart"
	"github.com/symo-dev/symo/internal/clicks"
	"github.com/symo-dev/symo/internal/config"
	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/logger"
	"github.com/symo-dev/symo/internal/metrics"
	"github.com/symo-dev/symo/internal/sysmetrics"
	"github.com/symo-dev/symo/internal/ui"
	"github.com/symo-dev/symo/internal/ui/components"
	"github.com/symo-dev/symo/internal/ui/styles"
)

const (
	chartZone = "chart"

	menuWidth      = 56
	minChartCols   = 24
	minChartRows   = 6
	statusBarLines = 3
	helpLines      = 1
)

// Sampler acquires one reading per call.
type Sampler interface {
	Read(ctx context.Context) (sysmetrics.Reading, error)
}

// Clipboard receives copied hover readouts.
type Clipboard interface {
	Write(text string) error
}

// Model represents the main Bubbletea application model
type Model struct {
	config *config.Config

	// Data
	set     *metrics.SeriesSet
	reader  Sampler
	counter *clicks.Counter
	journal *logger.Journal

	// Chart
	view   *chart.View
	canvas *canvas.Braille
	redraw chan struct{}
	zones  *zone.Manager

	// UI components
	keys      ui.KeyMap
	help      help.Model
	menu      *components.Menu
	statusBar *components.StatusBar
	clipboard Clipboard

	// UI state
	width         int
	height        int
	graphsVisible bool
	quitting      bool
	ready         bool

	ctx    context.Context
	cancel context.CancelFunc
}

type options struct {
	sampler   Sampler
	clipboard Clipboard
	journal   *logger.Journal
	scheduler chart.Scheduler
	zones     *zone.Manager
}

// Option configures a Model.
type Option func(*options)

// WithSampler replaces the gopsutil reader.
func WithSampler(s Sampler) Option {
	return func(o *options) {
		o.sampler = s
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(cb Clipboard) Option {
	return func(o *options) {
		o.clipboard = cb
	}
}

// WithJournal sets the per-tick sample journal.
func WithJournal(j *logger.Journal) Option {
	return func(o *options) {
		o.journal = j
	}
}

// WithScheduler sets the chart's redraw trigger.
func WithScheduler(s chart.Scheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}

// WithZoneManager sets the mouse zone manager.
func WithZoneManager(z *zone.Manager) Option {
	return func(o *options) {
		o.zones = z
	}
}

// New creates the application model from cfg.
func New(cfg *config.Config, opts ...Option) (*Model, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sampler == nil {
		o.sampler = sysmetrics.NewReader(sysmetrics.WithDiskPath(cfg.Sampling.DiskPath))
	}
	if o.clipboard == nil {
		o.clipboard = ui.NewClipboardWriter()
	}
	if o.scheduler == nil {
		o.scheduler = chart.TickerScheduler{}
	}
	if o.zones == nil {
		o.zones = zone.New()
	}

	colors, err := cfg.Chart.SeriesColors()
	if err != nil {
		return nil, fmt.Errorf("failed to load chart colors: %w", err)
	}

	set := metrics.NewSeriesSet(cfg.Chart.Capacity)
	renderer := chart.NewRenderer(chart.TerminalLayout(), cfg.Chart.Capacity)
	renderer.Colors = colors
	renderer.Names = func(m metrics.Metric) string { return i18n.Tr(m.NameKey()) }

	// Buffered so the timer never blocks; pending redraws coalesce.
	redraw := make(chan struct{}, 1)
	view := chart.NewView(set,
		chart.WithRenderer(renderer),
		chart.WithScheduler(o.scheduler),
		chart.WithRedrawInterval(cfg.Chart.RedrawInterval),
		chart.WithHoverRadius(cfg.Chart.HoverRadius),
		chart.WithRedrawFunc(func() {
			select {
			case redraw <- struct{}{}:
			default:
			}
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		config:    cfg,
		set:       set,
		reader:    o.sampler,
		counter:   clicks.NewCounter(),
		journal:   o.journal,
		view:      view,
		canvas:    canvas.NewBraille(minChartCols, minChartRows),
		redraw:    redraw,
		zones:     o.zones,
		keys:      ui.DefaultKeyMap(),
		help:      help.New(),
		menu:      components.NewMenu(cfg.Menu.Shows, set),
		statusBar: components.NewStatusBar(),
		clipboard: o.clipboard,
		ctx:       ctx,
		cancel:    cancel,
	}
	m.menu.SetWidth(menuWidth - 2)
	m.setGraphs(cfg.UI.GraphsOnStart)
	return m, nil
}

// Init starts sampling and listens for chart redraws.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		readSample(m.ctx, m.reader),
		waitForRedraw(m.ctx, m.redraw),
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.counter.IncrementKeyboard()
		m.syncClicks()
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.statusBar.SetSize(msg.Width)
		m.resizeChart()
		m.ready = true
		return m, nil

	case ui.SampleTickMsg:
		return m, readSample(m.ctx, m.reader)

	case ui.SampleMsg:
		m.handleSample(msg)
		return m, tickSample(m.config.Sampling.Interval)

	case ui.RedrawMsg:
		// The frame is painted by View; keep listening.
		return m, waitForRedraw(m.ctx, m.redraw)

	case ui.ClipboardMsg:
		if msg.Err != nil {
			logger.Warn("copy to clipboard failed", "error", msg.Err)
			m.statusBar.SetMessage(msg.Err.Error(), true)
		} else {
			m.statusBar.SetMessage(i18n.Tr("copied"), false)
		}
		return m, clearStatusAfter(statusMessageTTL)

	case ui.ClearStatusMsg:
		m.statusBar.SetMessage("", false)
		return m, nil
	}

	return m, nil
}

// handleSample ingests one reading into the history, journal and menu.
func (m *Model) handleSample(msg ui.SampleMsg) {
	if msg.Err != nil {
		// Only cancellation surfaces as an error; keep the history as is.
		logger.Debug("sampling interrupted", "error", msg.Err)
		return
	}

	r := msg.Reading
	m.set.Ingest(r.Snapshot())

	keys, mouse := m.counter.Counts()
	if err := m.journal.Write(journalSample(r, keys, mouse)); err != nil {
		logger.Warn("journal write failed", "error", err)
	}

	m.menu.Update(r, keys, mouse)
	m.statusBar.SetTimestamp(r.Time)
}

func journalSample(r sysmetrics.Reading, keys, mouse int) logger.Sample {
	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}
	return logger.Sample{
		Time:      t,
		CPUUsage:  r.CPUUsage,
		CPUTemp:   r.CPUTemp,
		RAMUsed:   r.RAMUsed,
		RAMTotal:  r.RAMTotal,
		SwapUsed:  r.SwapUsed,
		SwapTotal: r.SwapTotal,
		DiskUsed:  r.DiskUsed,
		DiskTotal: r.DiskTotal,
		NetRecv:   r.NetRecv,
		NetSent:   r.NetSent,
		Uptime:    sysmetrics.FormatUptime(r.Uptime),
		Keys:      keys,
		Clicks:    mouse,
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Cleanup()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeChart()
		return m, nil

	case key.Matches(msg, m.keys.ToggleGraphs):
		m.setGraphs(!m.graphsVisible)
		m.resizeChart()
		return m, nil

	case key.Matches(msg, m.keys.CopyHover):
		text := m.view.HoverText()
		if text == "" {
			m.statusBar.SetMessage(i18n.Tr("nothing_to_copy"), true)
			return m, clearStatusAfter(statusMessageTTL)
		}
		return m, copyToClipboard(m.clipboard, text)

	case key.Matches(msg, m.keys.Language):
		return m, m.cycleLanguage()

	case key.Matches(msg, m.keys.ResetClicks):
		m.counter.Reset()
		m.syncClicks()
		m.statusBar.SetMessage(i18n.Tr("counters_reset"), false)
		return m, clearStatusAfter(statusMessageTTL)
	}

	if metric, ok := m.keys.SeriesFor(msg.String()); ok {
		m.view.ToggleSeries(metric)
	}
	return m, nil
}

// handleMouse counts presses and feeds pointer motion to the chart.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		m.counter.IncrementMouse()
		m.syncClicks()
	}

	if !m.graphsVisible {
		return m, nil
	}

	z := m.zones.Get(chartZone)
	if !z.InBounds(msg) {
		m.pointerAt(-1, -1)
		return m, nil
	}
	col, row := z.Pos(msg)
	m.pointerAt(col, row)
	return m, nil
}

// pointerAt moves the chart pointer to the centre of a cell; a negative
// cell means the pointer left the chart.
func (m *Model) pointerAt(col, row int) {
	if col < 0 || row < 0 {
		m.view.OnPointerLeave()
		return
	}
	m.view.OnPointerMove(float64(col*2+1), float64(row*4+2))
}

// cycleLanguage switches to the next UI language. Menu, legend and
// readout labels pick it up on the next frame.
func (m *Model) cycleLanguage() tea.Cmd {
	code := i18n.NextLanguage(i18n.Language())
	if err := i18n.SetLanguage(code); err != nil {
		logger.Warn("language switch failed", "language", code, "error", err)
		m.statusBar.SetMessage(err.Error(), true)
		return clearStatusAfter(statusMessageTTL)
	}
	logger.Debug("language switched", "language", code)
	m.statusBar.SetMessage(i18n.Tr("language")+": "+i18n.Tr("language_name"), false)
	return clearStatusAfter(statusMessageTTL)
}

func (m *Model) syncClicks() {
	keys, mouse := m.counter.Counts()
	m.menu.SetClicks(keys, mouse)
	m.statusBar.SetClicks(keys, mouse)
}

func (m *Model) setGraphs(visible bool) {
	m.graphsVisible = visible
	m.view.SetVisible(visible)
	m.statusBar.SetChartsVisible(visible)
}

// chartCells returns the braille area left beside the menu.
func (m *Model) chartCells() (cols, rows int) {
	helpHeight := helpLines
	if m.help.ShowAll {
		for _, column := range m.keys.FullHelp() {
			helpHeight = max(helpHeight, len(column))
		}
	}
	cols = m.width - menuWidth - 2
	rows = m.height - statusBarLines - helpHeight - 2
	return max(cols, minChartCols), max(rows, minChartRows)
}

func (m *Model) resizeChart() {
	cols, rows := m.chartCells()
	if cur, curRows := m.canvas.Cells(); cur == cols && curRows == rows {
		return
	}
	m.canvas = canvas.NewBraille(cols, rows)
	m.view.Resize(m.canvas.Size())
}

// View renders the application UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	body := m.menu.View(!m.graphsVisible)
	if m.graphsVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderChart())
	}
	m.statusBar.SetHover(m.view.HoverText())

	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.statusBar.View(),
		styles.HelpStyle.Render(m.help.View(m.keys)),
	))
}

// renderChart paints a frame onto the braille canvas.
func (m Model) renderChart() string {
	if !m.view.Render(m.canvas) {
		return styles.ChartPanelStyle.Render(styles.ErrorStyle.Render("chart unavailable"))
	}
	return styles.ChartPanelStyle.Render(m.zones.Mark(chartZone, m.canvas.String()))
}

// Cleanup stops the redraw timer, in-flight reads, the pending redraw wait
// and the journal. It is safe to call more than once.
func (m *Model) Cleanup() {
	m.view.Destroy()
	m.cancel()
	if err := m.journal.Close(); err != nil {
		logger.Warn("journal close failed", "error", err)
	}
}

// Run starts the TUI and blocks until it exits.
func Run(cfg *config.Config, opts ...Option) error {
	zones := zone.New()
	defer zones.Close()

	model, err := New(cfg, append(opts, WithZoneManager(zones))...)
	if err != nil {
		return err
	}
	defer model.Cleanup()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
