package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSample() Sample {
	return Sample{
		Time:      time.Date(2024, 3, 1, 9, 30, 0, 0, time.Local),
		CPUUsage:  12.4,
		CPUTemp:   56,
		RAMUsed:   3.25,
		RAMTotal:  15.5,
		SwapUsed:  0,
		SwapTotal: 2,
		DiskUsed:  120.04,
		DiskTotal: 476.9,
		NetRecv:   1.26,
		NetSent:   0.04,
		Uptime:    "1 day, 2:03:04",
		Keys:      10,
		Clicks:    3,
	}
}

func TestSample_Format(t *testing.T) {
	want := "[2024-03-01 09:30:00] CPU: 12% 56°C | RAM: 3.2/15.5 GB | SWAP: 0.0/2.0 GB | " +
		"Disk: 120.0/476.9 GB | Net: ↓1.3/↑0.0 MB/s | Uptime: 1 day, 2:03:04 | Keys: 10 | Clicks: 3"
	assert.Equal(t, want, testSample().Format())
}

func TestJournal_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "samples.log")
	j, err := NewJournal(path, 5, true)
	require.NoError(t, err)
	require.True(t, j.Enabled())
	assert.Equal(t, path, j.Path())

	require.NoError(t, j.Write(testSample()))
	require.NoError(t, j.Write(testSample()))
	require.NoError(t, j.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[2024-03-01 09:30:00] CPU: 12%"))
}

func TestJournal_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.log")
	j, err := NewJournal(path, 5, false)
	require.NoError(t, err)

	assert.False(t, j.Enabled())
	assert.NoError(t, j.Write(testSample()))
	assert.NoError(t, j.Close())
	assert.NoFileExists(t, path)

	var nilJournal *Journal
	assert.NoError(t, nilJournal.Write(testSample()))
}

func TestJournal_SizeClamp(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-3, 1},
		{5, 5},
		{4096, 1024},
	}
	for _, tt := range tests {
		j, err := NewJournal(filepath.Join(dir, "s.log"), tt.in, true)
		require.NoError(t, err)
		assert.Equal(t, tt.want, j.MaxSizeMB())
	}
}

func TestJournal_EmptyPath(t *testing.T) {
	_, err := NewJournal("", 5, true)
	assert.Error(t, err)
}
