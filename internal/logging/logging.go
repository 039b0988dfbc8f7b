// Package logging provides a small logging abstraction so the rest of the
// application stays decoupled from the underlying logging framework.
package logging

import (
	"github.com/sirupsen/logrus"
)

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached.
	WithError(err error) Logger
	// WithField returns a new logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// Fatalf logs a fatal-level message with formatting and exits.
	Fatalf(format string, args ...interface{})
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// logrusAdapter backs Logger with logrus.
type logrusAdapter struct {
	entry *logrus.Entry
}

// New creates a Logger with the given level ("debug", "info", "warn",
// "error") and format ("text" or "json"). An unknown level falls back to
// info, an unknown format to text.
func New(level, format string) Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &logrusAdapter{entry: logrus.NewEntry(logger)}
}

// FromLogrus wraps an existing logrus logger.
func FromLogrus(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return &logrusAdapter{entry: logrus.NewEntry(logger)}
}

func (l *logrusAdapter) Debug(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Debug(msg)
}

func (l *logrusAdapter) Info(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Info(msg)
}

func (l *logrusAdapter) Warn(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Warn(msg)
}

func (l *logrusAdapter) Error(msg string, fields ...Field) {
	l.entry.WithFields(convertFields(fields)).Error(msg)
}

func (l *logrusAdapter) WithError(err error) Logger {
	return &logrusAdapter{entry: l.entry.WithError(err)}
}

func (l *logrusAdapter) WithField(key string, value interface{}) Logger {
	return &logrusAdapter{entry: l.entry.WithField(key, value)}
}

func (l *logrusAdapter) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func convertFields(fields []Field) logrus.Fields {
	logrusFields := make(logrus.Fields, len(fields))
	for _, field := range fields {
		logrusFields[field.Key] = field.Value
	}
	return logrusFields
}
