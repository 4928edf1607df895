package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/symo-dev/symo/internal/metrics"
)

func TestKeyMap_SeriesFor(t *testing.T) {
	km := DefaultKeyMap()
	require.Len(t, km.Series, metrics.Count())

	m, ok := km.SeriesFor("1")
	require.True(t, ok)
	assert.Equal(t, metrics.CPUTemp, m)

	m, ok = km.SeriesFor("7")
	require.True(t, ok)
	assert.Equal(t, metrics.NetSent, m)

	_, ok = km.SeriesFor("8")
	assert.False(t, ok)
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 3)
}

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestClipboardWriter_Detect(t *testing.T) {
	cw := &ClipboardWriter{}
	cw.detect("linux", lookPathFor("xsel", "xclip"))
	require.True(t, cw.IsAvailable())
	assert.Equal(t, "xclip", cw.cmd.name)

	cw = &ClipboardWriter{}
	cw.detect("linux", lookPathFor())
	assert.False(t, cw.IsAvailable())
	assert.Contains(t, cw.Error(), "wl-copy")

	cw = &ClipboardWriter{}
	cw.detect("plan9", lookPathFor("pbcopy"))
	assert.Contains(t, cw.Error(), "unsupported platform")
}

func TestClipboardWriter_Write(t *testing.T) {
	var gotName, gotInput string
	var gotArgs []string
	cw := &ClipboardWriter{run: func(name string, args []string, stdin string) error {
		gotName, gotArgs, gotInput = name, args, stdin
		return nil
	}}
	cw.detect("linux", lookPathFor("xclip"))

	require.NoError(t, cw.Write("RAM (%): 42.0% • now"))
	assert.Equal(t, "xclip", gotName)
	assert.Equal(t, []string{"-selection", "clipboard"}, gotArgs)
	assert.Equal(t, "RAM (%): 42.0% • now", gotInput)

	cw.run = func(string, []string, string) error { return errors.New("exit status 1") }
	assert.ErrorContains(t, cw.Write("x"), "xclip")

	unavailable := &ClipboardWriter{errMsg: "none"}
	assert.ErrorContains(t, unavailable.Write("x"), "clipboard unavailable")
}
