package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	minJournalMB = 1
	maxJournalMB = 1024
)

// Sample is one journal line. Memory and disk figures are in GiB,
// throughput in MB/s.
type Sample struct {
	Time      time.Time
	CPUUsage  float64
	CPUTemp   float64
	RAMUsed   float64
	RAMTotal  float64
	SwapUsed  float64
	SwapTotal float64
	DiskUsed  float64
	DiskTotal float64
	NetRecv   float64
	NetSent   float64
	Uptime    string
	Keys      int
	Clicks    int
}

// Format renders the sample as a journal line without the trailing newline.
func (s Sample) Format() string {
	return fmt.Sprintf("[%s] CPU: %.0f%% %.0f°C | RAM: %.1f/%.1f GB | SWAP: %.1f/%.1f GB | "+
		"Disk: %.1f/%.1f GB | Net: ↓%.1f/↑%.1f MB/s | Uptime: %s | Keys: %d | Clicks: %d",
		s.Time.Format("2006-01-02 15:04:05"),
		s.CPUUsage, s.CPUTemp,
		s.RAMUsed, s.RAMTotal,
		s.SwapUsed, s.SwapTotal,
		s.DiskUsed, s.DiskTotal,
		s.NetRecv, s.NetSent,
		s.Uptime, s.Keys, s.Clicks)
}

// Journal appends one line per sampling tick to a size-limited file. A nil
// or disabled Journal discards writes.
type Journal struct {
	mu     sync.Mutex
	w      io.WriteCloser
	path   string
	sizeMB int
}

// NewJournal opens the journal at path, rotating once it exceeds maxSizeMB.
// maxSizeMB is clamped to 1..1024. When enabled is false the journal is a
// no-op.
func NewJournal(path string, maxSizeMB int, enabled bool) (*Journal, error) {
	if !enabled {
		return &Journal{}, nil
	}
	if path == "" {
		return nil, fmt.Errorf("journal path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	sizeMB := clampJournalSize(maxSizeMB)
	return &Journal{
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    sizeMB,
			MaxBackups: 1,
		},
		path:   path,
		sizeMB: sizeMB,
	}, nil
}

func clampJournalSize(mb int) int {
	switch {
	case mb < minJournalMB:
		return minJournalMB
	case mb > maxJournalMB:
		return maxJournalMB
	default:
		return mb
	}
}

// Enabled reports whether writes reach a file.
func (j *Journal) Enabled() bool {
	return j != nil && j.w != nil
}

// Path returns the journal file, or "" when disabled.
func (j *Journal) Path() string {
	if j == nil {
		return ""
	}
	return j.path
}

// MaxSizeMB returns the rotation threshold in megabytes.
func (j *Journal) MaxSizeMB() int {
	if j == nil {
		return 0
	}
	return j.sizeMB
}

// Write appends s as one line.
func (j *Journal) Write(s Sample) error {
	if !j.Enabled() {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := io.WriteString(j.w, s.Format()+"\n"); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	return nil
}

// Close flushes and closes the journal file.
func (j *Journal) Close() error {
	if !j.Enabled() {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.w.Close()
}
