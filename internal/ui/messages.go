// Package ui provides the Bubble Tea messages, key bindings and clipboard
// access shared by the symo TUI.
package ui

import (
	"time"

	"github.com/symo-dev/symo/internal/sysmetrics"
)

// SampleTickMsg triggers a sampling pass.
type SampleTickMsg time.Time

// SampleMsg carries one acquisition pass from the reader.
type SampleMsg struct {
	Reading sysmetrics.Reading
	Err     error
}

// RedrawMsg is delivered by the chart's redraw timer while it is shown.
type RedrawMsg struct{}

// ClipboardMsg reports the outcome of a copy.
type ClipboardMsg struct {
	Text string
	Err  error
}

// ClearStatusMsg clears a transient status bar message.
type ClearStatusMsg struct{}
