// Package logging decouples quicklog from a concrete logging framework.
// Everything logs through the Logger interface; LogrusAdapter is the production
// implementation and MockLogger captures entries in tests.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logger used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger carrying err on every entry.
	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger

	// Fatal logs and exits the program.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = logrus.New()
)

// GetLogger returns a Logger backed by the process-wide logrus instance.
// Commands that have not been handed a logger by the container use it.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return NewLogrusAdapterFromLogger(defaultLogger)
}

// SetAllLogLevels sets the level of the process-wide logger and of logrus' standard logger.
func SetAllLogLevels(level logrus.Level) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger.SetLevel(level)
	logrus.SetLevel(level)
}
