package plog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Log levels. NOTICE sits between DEBUG and INFO and is used for per-path
// progress lines (directory resolved, update emitted) that are chattier than
// operational INFO messages.
const (
	LevelDebug  = slog.LevelDebug
	LevelNotice = slog.Level(-2)
	LevelInfo   = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
)

var (
	mu            sync.RWMutex
	level         = new(slog.LevelVar)
	defaultLogger = newLogger(os.Stderr)
)

// replaceLevelName renders the custom NOTICE level with its proper name
// instead of slog's default "DEBUG+2".
func replaceLevelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelNotice {
			a.Value = slog.StringValue("NOTICE")
		}
	}
	return a
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelName,
	}))
}

// SetOutput redirects the logger's output, primarily for testing.
// It also resets the level to Debug so tests capture every record.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	level.Set(LevelDebug)
	defaultLogger = newLogger(w)
}

// SetLevel sets the minimum level emitted by the global logger.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// LevelFromString maps a configuration string to a log level.
// Unknown strings fall back to Info.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "notice":
		return LevelNotice
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	logger().Debug(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	logger().Info(msg, args...)
}

// Notice logs a progress message.
func Notice(msg string, args ...any) {
	logger().Log(context.Background(), LevelNotice, msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	logger().Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	logger().Error(msg, args...)
}
