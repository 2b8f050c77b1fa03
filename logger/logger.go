// Package logger defines the Logger interface go-iterscan logs through, a log/slog
// implementation of it, and a package-level default that scans and axes use unless given
// their own logger.
//
// Log Levels:
//
//   - DebugLevel:  Detailed debug information, such as every axis move of a scan.
//   - InfoLevel:  General informational messages, such as scan step status.
//   - WarnLevel:  Warnings about potential issues, such as a scan created without hooks.
//   - ErrorLevel:  Errors that require attention, such as a failed scan step.
//   - FatalLevel:  Critical errors that cause program termination.
package logger

import "strings"

// Level indicates the logging severity level.
type Level = int8

const (
	// DebugLevel includes per-step detail such as every axis move.
	DebugLevel Level = iota - 1
	// InfoLevel is the default and reports scan starts, ends and abort messages.
	InfoLevel
	WarnLevel
	ErrorLevel
	// FatalLevel is logged at error severity before the process exits.
	FatalLevel
)

// Logger is the structured logger used by scans, virtual axes and scanctl. Arguments after
// the message are alternating keys and values.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
	// Fatal logs msg and exits the process with status 1.
	Fatal(msg string, keysAndValues ...any)
	// With returns a logger that adds keyValues to every record. The receiver is unchanged.
	With(keyValues ...any) Logger
	Level() Level
	SetLevel(level Level)
}

// ParseLevel converts a level name such as "debug" or "WARN" to a Level, returning def
// for an empty or unknown name.
func ParseLevel(name string, def Level) Level {
	switch strings.ToLower(name) {
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return def
	}
}
