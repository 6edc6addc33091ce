// Package logger is a leveled logger on zerolog. The TUI owns stdout, so its
// output goes to a file or nowhere. The MCP servers may log to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Level represents a log level
type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// ParseLevel parses a log level string
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger wraps a zerolog logger with an optional file handle
type Logger struct {
	mu   sync.Mutex
	zl   zerolog.Logger
	file *os.File
}

// Default is the default logger instance
var Default = New(io.Discard, LevelInfo)

// New creates a logger writing JSON lines to w
func New(w io.Writer, level Level) *Logger {
	return &Logger{zl: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Open creates a logger appending to path. An empty path discards output.
func Open(path string, level Level) (*Logger, error) {
	if path == "" {
		return New(io.Discard, level), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := New(f, level)
	l.file = f
	return l, nil
}

// Setup replaces Default with a logger configured from level and path
func Setup(level, path string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l, err := Open(path, lvl)
	if err != nil {
		return err
	}
	old := Default
	Default = l
	return old.Close()
}

// SetupStderr is Setup for the server binaries. Without a path it writes
// human readable lines to stderr.
func SetupStderr(level, path string) error {
	if path != "" {
		return Setup(level, path)
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}
	old := Default
	Default = New(console, lvl)
	return old.Close()
}

// Close closes the logger and any open file handles
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Level(level)
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl = l.zl.Output(w)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...any) {
	l.log(LevelDebug, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...any) {
	l.log(LevelInfo, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...any) {
	l.log(LevelWarn, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...any) {
	l.log(LevelError, format, v...)
}

func (l *Logger) log(level Level, format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.zl.WithLevel(level).Msgf(format, v...)
}

// Package-level functions that use the default logger

// Debug logs a debug message using the default logger
func Debug(format string, v ...any) {
	Default.Debug(format, v...)
}

// Info logs an info message using the default logger
func Info(format string, v ...any) {
	Default.Info(format, v...)
}

// Warn logs a warning message using the default logger
func Warn(format string, v ...any) {
	Default.Warn(format, v...)
}

// Error logs an error message using the default logger
func Error(format string, v ...any) {
	Default.Error(format, v...)
}

// Close closes the default logger
func Close() error {
	return Default.Close()
}

// Fatal logs an error, echoes it to stderr and exits with status 1
func Fatal(format string, v ...any) {
	Default.Error(format, v...)
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	_ = Close()
	os.Exit(1)
}
