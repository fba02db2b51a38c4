package internal

import (
	"log"
	"os"
)

// LogLevel represents logging verbosity, from errors only up to debug.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel maps a LOG_LEVEL-style string to a level, defaulting to
// info for anything unrecognized.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "ERROR":
		return LogLevelError
	case "WARN":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Logger provides leveled logging for the table pipeline: corpus loading,
// lazy materialization, export/render cycles.
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger with the given verbosity.
func NewLogger(level LogLevel) *Logger {
	return &Logger{level: level, out: log.New(os.Stderr, "", log.LstdFlags)}
}

// NewDefaultLogger creates a logger configured from the LOG_LEVEL
// environment variable.
func NewDefaultLogger() *Logger {
	return NewLogger(ParseLogLevel(os.Getenv("LOG_LEVEL")))
}

// Level returns the logger's verbosity.
func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) logf(at LogLevel, tag, format string, args ...any) {
	if l.level >= at {
		l.out.Printf(tag+" "+format, args...)
	}
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...any) {
	l.logf(LogLevelError, "[ERROR]", format, args...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, args ...any) {
	l.logf(LogLevelWarn, "[WARN]", format, args...)
}

// Info logs info messages.
func (l *Logger) Info(format string, args ...any) {
	l.logf(LogLevelInfo, "[INFO]", format, args...)
}

// Debug logs debug messages.
func (l *Logger) Debug(format string, args ...any) {
	l.logf(LogLevelDebug, "[DEBUG]", format, args...)
}

// DefaultLogger is the process-wide logger instance.
var DefaultLogger = NewDefaultLogger()
