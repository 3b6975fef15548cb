package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

type Logger struct {
	level      LogLevel
	base       *charmlog.Logger
	RawBodyLog bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return NewLoggerWithWriter(os.Stderr, level, rawBodyLog, false)
}

// NewLoggerWithWriter builds a logger writing to w, as text or as JSON lines.
func NewLoggerWithWriter(w io.Writer, level string, rawBodyLog, jsonFormat bool) *Logger {
	logLevel := parseLogLevel(level)

	base := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
		Level:           logLevel.charmLevel(),
	})
	if jsonFormat {
		base.SetFormatter(charmlog.JSONFormatter)
	}

	return &Logger{
		level:      logLevel,
		base:       base,
		RawBodyLog: rawBodyLog,
	}
}

func NewDiscardLogger() *Logger {
	return NewLoggerWithWriter(io.Discard, string(LevelInfo), false, false)
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
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

func (l LogLevel) charmLevel() charmlog.Level {
	switch l {
	case LevelDebug:
		return charmlog.DebugLevel
	case LevelWarn:
		return charmlog.WarnLevel
	case LevelError:
		return charmlog.ErrorLevel
	default:
		return charmlog.InfoLevel
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) with(reqID *string) *charmlog.Logger {
	if reqID == nil || *reqID == "" {
		return l.base
	}
	return l.base.With("reqid", *reqID)
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	l.with(reqID).Infof(format, v...)
}

func (l *Logger) Warn(reqID *string, format string, v ...any) {
	l.with(reqID).Warnf(format, v...)
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.with(reqID).Errorf(format, v...)
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	l.with(reqID).Debugf(format, v...)
}

func (l *Logger) Fatal(v ...any) {
	l.base.Fatal(fmt.Sprint(v...))
}
