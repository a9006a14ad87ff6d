// ABOUTME: Leveled printf-style logging to stderr, gated by an atomic global level.
// ABOUTME: Writes to stderr so diagnostics never mix with raw-mode screen output.

package log

import (
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	emit(LevelDebug, "DEBUG", format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	emit(LevelInfo, "INFO", format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	emit(LevelWarn, "WARN", format, args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit(LevelError, "ERROR", format, args...)
}

func emit(l slog.Level, tag, format string, args ...any) {
	if slog.Level(level.Load()) > l {
		return
	}
	fmt.Fprintf(os.Stderr, "["+tag+"] "+format+"\n", args...)
}
