package utils

import (
	"io"
	"log"
	"strings"
)

// Level is a log severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps debug/info/warn/error to a Level, defaulting to warn
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes leveled diagnostics to stderr, never to stdout
type Logger struct {
	level Level
	out   *log.Logger
}

// NewLogger creates a logger writing to w at the given level
func NewLogger(w io.Writer, level Level) *Logger {
	return &Logger{
		level: level,
		out:   log.New(w, "", log.Ltime),
	}
}

// Debugf logs at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(LevelDebug, "🔍 ", format, args...)
}

// Infof logs at info level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(LevelInfo, "ℹ️  ", format, args...)
}

// Warnf logs at warn level
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(LevelWarn, "⚠️  ", format, args...)
}

// Errorf logs at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(LevelError, "❌ ", format, args...)
}

// DebugLogger returns a *log.Logger for debug output, or nil when debug is off
func (l *Logger) DebugLogger() *log.Logger {
	if l == nil || l.level > LevelDebug {
		return nil
	}
	return log.New(l.out.Writer(), "🔍 ", log.Ltime|log.Lmsgprefix)
}

func (l *Logger) logf(level Level, prefix, format string, args ...interface{}) {
	if l == nil || level < l.level {
		return
	}
	l.out.Printf(prefix+format, args...)
}
