package logger

import "sync/atomic"

// box keeps the stored concrete type constant, as atomic.Value requires.
type box struct{ Logger }

var defLogger atomic.Value

func init() {
	defLogger.Store(box{NewSlog(InfoLevel, false)})
}

// GetLogger returns the package-level default logger.
func GetLogger() Logger {
	return defLogger.Load().(box).Logger
}

// SetLogger replaces the default logger, e.g. with one writing to a rotating log file.
// A nil logger is ignored.
func SetLogger(l Logger) {
	if l != nil {
		defLogger.Store(box{l})
	}
}

func Debug(msg string, keysAndValues ...any) { GetLogger().Debug(msg, keysAndValues...) }

func Info(msg string, keysAndValues ...any) { GetLogger().Info(msg, keysAndValues...) }

func Warn(msg string, keysAndValues ...any) { GetLogger().Warn(msg, keysAndValues...) }

func Error(msg string, keysAndValues ...any) { GetLogger().Error(msg, keysAndValues...) }

func Fatal(msg string, keysAndValues ...any) { GetLogger().Fatal(msg, keysAndValues...) }

func SetLevel(level Level) { GetLogger().SetLevel(level) }

func With(keyValues ...any) Logger { return GetLogger().With(keyValues...) }
