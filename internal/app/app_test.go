package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symo-dev/symo/internal/chart"
	"github.com/symo-dev/symo/internal/config"
	"github.com/symo-dev/symo/internal/i18n"
	"github.com/symo-dev/symo/internal/logger"
	"github.com/symo-dev/symo/internal/metrics"
	"github.com/symo-dev/symo/internal/sysmetrics"
	"github.com/symo-dev/symo/internal/ui"
)

type fakeSampler struct {
	reading sysmetrics.Reading
	err     error
	calls   int
}

func (f *fakeSampler) Read(ctx context.Context) (sysmetrics.Reading, error) {
	f.calls++
	return f.reading, f.err
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Write(text string) error {
	f.text = text
	return f.err
}

type fakeScheduler struct {
	armed   int
	stopped int
}

func (f *fakeScheduler) Every(time.Duration, func()) func() {
	f.armed++
	return func() { f.stopped++ }
}

type harness struct {
	model     Model
	sampler   *fakeSampler
	clipboard *fakeClipboard
	scheduler *fakeScheduler
	journal   string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	zones := zone.New()
	t.Cleanup(zones.Close)

	journalPath := filepath.Join(t.TempDir(), "samples.log")
	journal, err := logger.NewJournal(journalPath, 1, true)
	require.NoError(t, err)

	h := &harness{
		sampler: &fakeSampler{reading: sysmetrics.Reading{
			Time:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local),
			CPUTemp:   55,
			CPUUsage:  30,
			RAMUsed:   4,
			RAMTotal:  16,
			DiskUsed:  50,
			DiskTotal: 100,
			NetRecv:   1.5,
			Uptime:    time.Hour,
		}},
		clipboard: &fakeClipboard{},
		scheduler: &fakeScheduler{},
		journal:   journalPath,
	}

	m, err := New(config.Default(),
		WithSampler(h.sampler),
		WithClipboard(h.clipboard),
		WithScheduler(h.scheduler),
		WithJournal(journal),
		WithZoneManager(zones),
	)
	require.NoError(t, err)
	t.Cleanup(m.Cleanup)
	h.model = *m
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_GraphsOnStart(t *testing.T) {
	h := newHarness(t)

	assert.True(t, h.model.graphsVisible)
	assert.Equal(t, chart.StateShown, h.model.view.State())
	assert.Equal(t, 1, h.scheduler.armed)
}

func TestNew_InvalidColors(t *testing.T) {
	cfg := config.Default()
	cfg.Chart.Colors = map[string]string{"ram": "nope"}

	zones := zone.New()
	defer zones.Close()

	_, err := New(cfg, WithZoneManager(zones), WithSampler(&fakeSampler{}), WithClipboard(&fakeClipboard{}))
	assert.Error(t, err)
}

func TestInit_ReadsImmediately(t *testing.T) {
	h := newHarness(t)
	require.NotNil(t, h.model.Init())

	msg := readSample(context.Background(), h.sampler)()
	sample, ok := msg.(ui.SampleMsg)
	require.True(t, ok)
	assert.Equal(t, 30.0, sample.Reading.CPUUsage)
	assert.Equal(t, 1, h.sampler.calls)
}

func TestUpdate_SampleIngests(t *testing.T) {
	h := newHarness(t)

	cmd := h.update(ui.SampleMsg{Reading: h.sampler.reading})
	assert.NotNil(t, cmd, "next sampling tick should be scheduled")

	assert.Equal(t, 1, h.model.set.Ticks())
	latest, ok := h.model.set.Buffer(metrics.RAM).Latest()
	require.True(t, ok)
	assert.InDelta(t, 25.0, latest, 1e-9)

	require.NoError(t, h.model.journal.Close())
	data, err := os.ReadFile(h.journal)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[2024-01-01 12:00:00] CPU: 30% 55°C")
}

func TestUpdate_SampleErrorKeepsHistory(t *testing.T) {
	h := newHarness(t)

	cmd := h.update(ui.SampleMsg{Err: context.Canceled})
	assert.NotNil(t, cmd)
	assert.Zero(t, h.model.set.Ticks())
}

func TestUpdate_SamplingContinuesWhileHidden(t *testing.T) {
	h := newHarness(t)

	h.update(keyPress("g"))
	require.Equal(t, chart.StateHidden, h.model.view.State())

	h.update(ui.SampleMsg{Reading: h.sampler.reading})
	h.update(ui.SampleMsg{Reading: h.sampler.reading})
	assert.Equal(t, 2, h.model.set.Ticks())
}

func TestKeys_ToggleGraphs(t *testing.T) {
	h := newHarness(t)

	h.update(keyPress("g"))
	assert.False(t, h.model.graphsVisible)
	assert.Equal(t, chart.StateHidden, h.model.view.State())
	assert.Equal(t, 1, h.scheduler.stopped)

	h.update(keyPress("g"))
	assert.Equal(t, chart.StateShown, h.model.view.State())
	assert.Equal(t, 2, h.scheduler.armed)
}

func TestKeys_ToggleSeries(t *testing.T) {
	h := newHarness(t)

	h.update(keyPress("3"))
	assert.False(t, h.model.view.Visible(metrics.RAM))

	h.update(keyPress("3"))
	assert.True(t, h.model.view.Visible(metrics.RAM))
}

func TestKeys_CountedAndReset(t *testing.T) {
	h := newHarness(t)

	h.update(keyPress("x"))
	h.update(keyPress("z"))
	h.update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	h.update(tea.MouseMsg{Action: tea.MouseActionMotion})

	keys, mouse := h.model.counter.Counts()
	assert.Equal(t, 2, keys)
	assert.Equal(t, 1, mouse)

	cmd := h.update(keyPress("r"))
	assert.NotNil(t, cmd)
	keys, mouse = h.model.counter.Counts()
	assert.Zero(t, keys)
	assert.Zero(t, mouse)
}

func TestKeys_Quit(t *testing.T) {
	h := newHarness(t)

	cmd := h.update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, h.model.quitting)
	assert.Equal(t, chart.StateDestroyed, h.model.view.State())
	assert.Empty(t, h.model.View())
}

func TestPointer_HoversNearestSample(t *testing.T) {
	h := newHarness(t)
	h.update(tea.WindowSizeMsg{Width: 140, Height: 40})
	for i := 0; i < 5; i++ {
		h.update(ui.SampleMsg{Reading: h.sampler.reading})
	}

	w, ht := h.model.canvas.Size()
	geom, ok := h.model.view.Renderer().Geometry(w, ht, h.model.set)
	require.True(t, ok)
	x, y := geom.ToScreen(4, 30)

	h.model.pointerAt(int(x)/2, int(y)/4)
	require.NotNil(t, h.model.view.Hover())
	assert.NotEmpty(t, h.model.view.HoverText())

	h.model.pointerAt(-1, -1)
	assert.Nil(t, h.model.view.Hover())
}

func TestCopyHover(t *testing.T) {
	h := newHarness(t)

	// Nothing hovered
	cmd := h.update(keyPress("y"))
	require.NotNil(t, cmd)
	assert.Empty(t, h.clipboard.text)

	msg := copyToClipboard(h.clipboard, "RAM (%): 25.0% • now")()
	assert.Equal(t, ui.ClipboardMsg{Text: "RAM (%): 25.0% • now"}, msg)
	assert.Equal(t, "RAM (%): 25.0% • now", h.clipboard.text)

	cmd = h.update(msg)
	assert.NotNil(t, cmd, "status message should be cleared later")

	h.clipboard.err = errors.New("no clipboard tool")
	failed := copyToClipboard(h.clipboard, "x")().(ui.ClipboardMsg)
	assert.Error(t, failed.Err)
}

func TestRedraw_RequestedByView(t *testing.T) {
	h := newHarness(t)

	h.model.view.OnPointerLeave()
	msg := waitForRedraw(h.model.ctx, h.model.redraw)()
	assert.Equal(t, ui.RedrawMsg{}, msg)

	cmd := h.update(msg)
	assert.NotNil(t, cmd, "redraw listener should be re-armed")
}

func TestRedraw_ListenerReleasedOnCleanup(t *testing.T) {
	h := newHarness(t)
	wait := waitForRedraw(h.model.ctx, h.model.redraw)

	done := make(chan tea.Msg, 1)
	go func() { done <- wait() }()

	h.model.Cleanup()
	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("redraw listener still blocked after cleanup")
	}

	// A second cleanup is harmless
	assert.NotPanics(t, h.model.Cleanup)
}

func TestView(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, "Initializing...", h.model.View())

	h.update(tea.WindowSizeMsg{Width: 140, Height: 40})
	h.update(ui.SampleMsg{Reading: h.sampler.reading})

	view := h.model.View()
	for _, want := range []string{"symo", "CPU", "RAM", "quit"} {
		assert.True(t, strings.Contains(view, want), "view should contain %q", want)
	}
}

func TestChartCells(t *testing.T) {
	h := newHarness(t)

	h.update(tea.WindowSizeMsg{Width: 140, Height: 40})
	cols, rows := h.model.canvas.Cells()
	assert.Equal(t, 140-menuWidth-2, cols)
	assert.Equal(t, 40-statusBarLines-helpLines-2, rows)

	// Tiny terminals keep a minimum chart
	h.update(tea.WindowSizeMsg{Width: 20, Height: 5})
	cols, rows = h.model.canvas.Cells()
	assert.Equal(t, minChartCols, cols)
	assert.Equal(t, minChartRows, rows)
}

func TestKeys_CycleLanguage(t *testing.T) {
	require.NoError(t, i18n.SetLanguage("en"))
	t.Cleanup(func() { _ = i18n.SetLanguage(i18n.DefaultLanguage) })

	h := newHarness(t)
	h.update(tea.WindowSizeMsg{Width: 140, Height: 40})
	h.update(ui.SampleMsg{Reading: h.sampler.reading})
	labels := func() []string {
		var out []string
		for _, line := range h.model.menu.Lines() {
			out = append(out, line.Label)
		}
		return out
	}
	assert.Contains(t, labels(), "Disk")

	cmd := h.update(keyPress("l"))
	require.NotNil(t, cmd, "status message should be cleared later")
	assert.Equal(t, i18n.NextLanguage("en"), i18n.Language())
	assert.Contains(t, h.model.statusBar.View(), i18n.Tr("language")+": "+i18n.Tr("language_name"))

	// Labels follow on the next frame
	require.NoError(t, i18n.SetLanguage("de"))
	assert.Contains(t, labels(), "Festplatte")
	assert.Equal(t, "Festplatte", h.model.view.Renderer().Name(metrics.Disk))

	// Cycling wraps back to the first language
	for range i18n.Supported() {
		h.update(keyPress("l"))
	}
	assert.Equal(t, i18n.NextLanguage("de"), i18n.Language())
}
