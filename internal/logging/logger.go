package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Logger writes leveled, prefixed lines. Debug output is dropped unless the
// level is debug; info output is dropped when the level is error.
type Logger struct {
	level       Level
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// New returns a Logger writing to w. An unknown level falls back to info.
func New(w io.Writer, level string) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmsgprefix
	return &Logger{
		level:       ParseLevel(level),
		infoLogger:  log.New(w, "INFO: ", flags),
		errorLogger: log.New(w, "ERROR: ", flags),
		debugLogger: log.New(w, "DEBUG: ", flags),
	}
}

// NewStderr returns a Logger writing to standard error.
func NewStderr(level string) *Logger {
	return New(os.Stderr, level)
}

func NewDiscard() *Logger {
	return New(io.Discard, string(LevelError))
}

func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

// Std exposes the info stream as a *log.Logger for constructors that take
// one. It returns nil when info output is disabled.
func (l *Logger) Std() *log.Logger {
	if l.level == LevelError {
		return nil
	}
	return l.infoLogger
}
