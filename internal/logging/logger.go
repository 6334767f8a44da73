// Package logging provides structured logging for cmd/bptreectl, backed
// by logrus rather than the hand-rolled encoder the teacher repo uses
// for its own Logger interface.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Level mirrors the teacher's own Level enum, parsed from configuration
// rather than hardcoded, and mapped onto logrus's own level type.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses a string into a Level, defaulting to LevelInfo for
// anything unrecognized, matching the teacher's permissive parser.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) logrusLevel() logrus.Level {
	switch l {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Format selects logrus's built-in text or JSON formatter.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat parses a string into a Format, defaulting to FormatText.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// Logger is the structured logging interface used by cmd/bptreectl. The
// shape matches the teacher's own Logger interface so call sites read
// identically; only the backing implementation changed.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	WithFields(keysAndValues ...interface{}) Logger
	WithRequestID(requestID string) Logger
}

// Config holds the logger configuration, loaded from internal/config.
type Config struct {
	Level  string
	Format string
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New creates a Logger writing to stdout with the given configuration.
func New(cfg Config) Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetLevel(ParseLevel(cfg.Level).logrusLevel())
	if ParseFormat(cfg.Format) == FormatJSON {
		base.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return &logrusLogger{entry: logrus.NewEntry(base)}
}

// NewDefault creates a Logger with info level, text format, on stdout.
func NewDefault() Logger {
	return New(Config{Level: "info", Format: "text"})
}

// NewNop creates a Logger that discards all output.
func NewNop() Logger {
	base := logrus.New()
	base.SetOutput(nopWriter{})
	return &logrusLogger{entry: logrus.NewEntry(base)}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func fieldsFrom(keysAndValues []interface{}) logrus.Fields {
	fields := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}

func (l *logrusLogger) Debug(msg string, kv ...interface{}) {
	l.entry.WithFields(fieldsFrom(kv)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, kv ...interface{}) {
	l.entry.WithFields(fieldsFrom(kv)).Info(msg)
}

func (l *logrusLogger) Warn(msg string, kv ...interface{}) {
	l.entry.WithFields(fieldsFrom(kv)).Warn(msg)
}

func (l *logrusLogger) Error(msg string, kv ...interface{}) {
	l.entry.WithFields(fieldsFrom(kv)).Error(msg)
}

func (l *logrusLogger) WithFields(kv ...interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithFields(fieldsFrom(kv))}
}

func (l *logrusLogger) WithRequestID(requestID string) Logger {
	return &logrusLogger{entry: l.entry.WithField("request_id", requestID)}
}
