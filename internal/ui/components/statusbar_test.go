package components

import (
	"strings"
	"testing"
	"time"
)

func TestStatusBar_View(t *testing.T) {
	bar := NewStatusBar()
	bar.SetSize(120)
	bar.SetTimestamp(time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC))
	bar.SetClicks(12, 4)

	view := bar.View()
	for _, want := range []string{"symo", "2024-05-06 07:08:09", "12", "4"} {
		if !strings.Contains(view, want) {
			t.Errorf("status bar should contain %q, got:\n%s", want, view)
		}
	}
}

func TestStatusBar_HoverAndMessage(t *testing.T) {
	bar := NewStatusBar()
	bar.SetSize(120)

	bar.SetHover("CPU (%): 42.0% • now")
	if !strings.Contains(bar.View(), "CPU (%): 42.0% • now") {
		t.Error("status bar should show the hover readout")
	}

	bar.SetMessage("Copied to clipboard", false)
	view := bar.View()
	if !strings.Contains(view, "Copied to clipboard") || strings.Contains(view, "42.0%") {
		t.Errorf("message should replace the hover readout, got:\n%s", view)
	}
}

func TestStatusBar_ChartsHidden(t *testing.T) {
	bar := NewStatusBar()
	bar.SetSize(80)
	bar.SetChartsVisible(false)

	if strings.Contains(bar.View(), "Graphs") {
		t.Error("graphs marker should be hidden with the chart")
	}
}
