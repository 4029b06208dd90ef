// Package logger provides leveled logging for the haste CLI.
// Debug and info lines trace store requests and session transitions and
// only appear with --verbose. Warnings report degraded behaviour (history
// unavailable, unreadable config) and are always written.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the severity tag written before each line.
type Level string

// Log levels.
const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug and info lines.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log lines. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug traces internal steps such as HTTP requests.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info reports lifecycle events such as a server starting.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn reports a recoverable failure.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Enabled reports whether lines at level are written.
func Enabled(level Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled(level)
}

func enabled(level Level) bool {
	return verbose || level == LevelWarn
}

func logf(level Level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled(level) {
		return
	}
	fmt.Fprintf(output, "["+string(level)+"] "+format+"\n", args...)
}
