package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/symo-dev/symo/internal/ui"
)

// statusMessageTTL is how long a transient status message stays visible.
const statusMessageTTL = 2 * time.Second

// tickSample schedules the next sampling pass.
func tickSample(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ui.SampleTickMsg(t)
	})
}

// readSample runs one acquisition pass off the event loop.
func readSample(ctx context.Context, reader Sampler) tea.Cmd {
	return func() tea.Msg {
		reading, err := reader.Read(ctx)
		return ui.SampleMsg{Reading: reading, Err: err}
	}
}

// waitForRedraw blocks until the chart's redraw trigger fires. It returns
// nil once ctx is cancelled or ch is closed.
func waitForRedraw(ctx context.Context, ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return ui.RedrawMsg{}
		}
	}
}

// copyToClipboard copies text off the event loop.
func copyToClipboard(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return ui.ClipboardMsg{Text: text, Err: cb.Write(text)}
	}
}

// clearStatusAfter clears the status message after d.
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ui.ClearStatusMsg{}
	})
}
