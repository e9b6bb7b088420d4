// Package compiler drives the MiniC front end: scanning, parsing, and
// name resolution.
package compiler

import (
	"fmt"
	"os"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarning
	LogLevelError
)

// ParseLevel maps a configuration string to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warning", "warn":
		return LogLevelWarning, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelWarning, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger provides leveled logging for the front end. Messages below the
// configured minimum level are dropped.
type Logger struct {
	mu       sync.Mutex
	prefix   string
	minLevel LogLevel
}

// NewLogger creates a logger with a custom prefix. The default minimum
// level is warning.
func NewLogger(prefix string) *Logger {
	return &Logger{prefix: prefix, minLevel: LogLevelWarning}
}

// SetLevel sets the minimum level a message needs to be emitted.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.minLevel {
		return
	}

	var levelStr string
	var output *os.File

	switch level {
	case LogLevelDebug:
		levelStr = "DEBUG"
		output = os.Stdout
	case LogLevelInfo:
		levelStr = "INFO"
		output = os.Stdout
	case LogLevelWarning:
		levelStr = "WARN"
		output = os.Stderr
	case LogLevelError:
		levelStr = "ERROR"
		output = os.Stderr
	}

	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(output, "%s [%s] %s\n", l.prefix, levelStr, message)
}
