package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/symo-dev/symo/internal/metrics"
)

// KeyMap defines all keyboard bindings for the application
type KeyMap struct {
	Quit         key.Binding
	Help         key.Binding
	ToggleGraphs key.Binding
	CopyHover    key.Binding
	ResetClicks  key.Binding
	Language     key.Binding

	// Series toggles, one per metric in metric order
	Series []key.Binding
}

// DefaultKeyMap returns the default keyboard bindings
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ToggleGraphs: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "graphs"),
		),
		CopyHover: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy value"),
		),
		ResetClicks: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset clicks"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
	}

	for i, m := range metrics.All() {
		k := string(rune('1' + i))
		km.Series = append(km.Series, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, m.Key()),
		))
	}
	return km
}

// SeriesFor returns the metric toggled by a series key, if any.
func (k KeyMap) SeriesFor(msg string) (metrics.Metric, bool) {
	for i, b := range k.Series {
		for _, bk := range b.Keys() {
			if bk == msg {
				return metrics.Metric(i), true
			}
		}
	}
	return 0, false
}

// ShortHelp returns a quick help view for the key bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.ToggleGraphs, k.CopyHover, k.Help}
}

// FullHelp returns the full help view for all key bindings
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Help, k.ToggleGraphs},
		{k.CopyHover, k.ResetClicks, k.Language},
		k.Series,
	}
}
