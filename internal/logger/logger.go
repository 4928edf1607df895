// Package logger provides the global structured logger and the per-tick
// sample journal.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// recentCapacity is how many WARN/ERROR entries are kept for the status bar.
const recentCapacity = 100

// LogEntry is a captured WARN or ERROR record.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string
}

// recentEntries keeps the last WARN/ERROR entries and running counters.
type recentEntries struct {
	mu      sync.RWMutex
	entries []LogEntry
	head    int
	count   int

	warnCount  int
	errorCount int
}

func newRecentEntries(size int) *recentEntries {
	return &recentEntries{entries: make([]LogEntry, size)}
}

func (r *recentEntries) add(entry LogEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.head] = entry
	r.head = (r.head + 1) % len(r.entries)
	if r.count < len(r.entries) {
		r.count++
	}

	switch {
	case entry.Level >= slog.LevelError:
		r.errorCount++
	case entry.Level >= slog.LevelWarn:
		r.warnCount++
	}
}

func (r *recentEntries) all() []LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := len(r.entries)
	out := make([]LogEntry, r.count)
	for i := range out {
		out[i] = r.entries[(r.head-r.count+i+size)%size]
	}
	return out
}

func (r *recentEntries) counts() (warn, err int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.warnCount, r.errorCount
}

func (r *recentEntries) clearCounts() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnCount = 0
	r.errorCount = 0
}

// captureHandler records WARN/ERROR records before passing them on.
type captureHandler struct {
	inner  slog.Handler
	recent *recentEntries
	attrs  string
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		attrs := h.attrs
		r.Attrs(func(a slog.Attr) bool {
			attrs = appendAttr(attrs, a)
			return true
		})
		h.recent.add(LogEntry{
			Time:    r.Time,
			Level:   r.Level,
			Message: r.Message,
			Attrs:   attrs,
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	joined := h.attrs
	for _, a := range attrs {
		joined = appendAttr(joined, a)
	}
	return &captureHandler{
		inner:  h.inner.WithAttrs(attrs),
		recent: h.recent,
		attrs:  joined,
	}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{
		inner:  h.inner.WithGroup(name),
		recent: h.recent,
		attrs:  h.attrs,
	}
}

func appendAttr(s string, a slog.Attr) string {
	if s != "" {
		s += " "
	}
	return s + a.String()
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path to the current log file
	LogPath string

	logWriter    *lumberjack.Logger
	recent       *recentEntries
	debugEnabled bool
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultLogPath returns ~/.config/symo/symo.log, creating the directory.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}
	logDir := filepath.Join(homeDir, ".config", "symo")
	_ = os.MkdirAll(logDir, 0o755)
	return filepath.Join(logDir, "symo.log")
}

// InitLogger initializes the global logger with the specified level and
// optional path. An empty logPath selects DefaultLogPath.
func InitLogger(level LogLevel, logPath string) {
	if logPath == "" {
		logPath = DefaultLogPath()
	}
	LogPath = logPath

	logWriter = &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	initWithWriter(level, logWriter)
}

// initWithWriter builds the handler chain captureHandler -> JSONHandler -> w.
func initWithWriter(level LogLevel, w io.Writer) {
	debugEnabled = level == LevelDebug
	recent = newRecentEntries(recentCapacity)

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slogLevel()})
	Log = slog.New(&captureHandler{inner: jsonHandler, recent: recent})
	slog.SetDefault(Log)
}

// Close closes the log file
func Close() {
	if logWriter != nil {
		_ = logWriter.Close()
	}
}

func getLogger() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}

// With creates a new logger with additional attributes
func With(args ...any) *slog.Logger {
	return getLogger().With(args...)
}

// GetCounts returns the warnings and errors logged since the last clear.
func GetCounts() (warn, err int) {
	if recent == nil {
		return 0, 0
	}
	return recent.counts()
}

// ClearCounts resets the warning and error counters.
func ClearCounts() {
	if recent != nil {
		recent.clearCounts()
	}
}

// GetEntries returns the captured WARN/ERROR entries, oldest first.
func GetEntries() []LogEntry {
	if recent == nil {
		return nil
	}
	return recent.all()
}

// IsDebugEnabled returns true if debug mode is active.
func IsDebugEnabled() bool {
	return debugEnabled
}

// Format renders the entry as a single status line.
func (e LogEntry) Format() string {
	line := fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level.String(), e.Message)
	if e.Attrs != "" {
		line += " " + e.Attrs
	}
	return line
}
