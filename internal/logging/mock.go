package logging

import (
	"fmt"
	"sync"
)

// MockLogger records log entries for assertions in tests.
// Loggers derived through WithField/WithFields/WithError write into the same
// journal as their parent, so a test can hold the root mock and see everything.
type MockLogger struct {
	journal       *journal
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

type journal struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{journal: &journal{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.journal == nil {
		m.journal = &journal{}
	}
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)

	m.journal.mu.Lock()
	defer m.journal.mu.Unlock()
	m.journal.entries = append(m.journal.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records a FATAL entry. The mock never exits.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// Fatalf records a formatted FATAL entry. The mock never exits.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (m *MockLogger) WithError(err error) Logger {
	child := m.derive()
	child.pendingError = err
	return child
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	child := m.derive()
	child.pendingFields = append(child.pendingFields, fields...)
	return child
}

func (m *MockLogger) derive() *MockLogger {
	if m.journal == nil {
		m.journal = &journal{}
	}
	pending := make([]Field, len(m.pendingFields))
	copy(pending, m.pendingFields)
	return &MockLogger{
		journal:       m.journal,
		pendingError:  m.pendingError,
		pendingFields: pending,
	}
}

// GetEntries returns a copy of every captured entry.
func (m *MockLogger) GetEntries() []LogEntry {
	if m.journal == nil {
		return nil
	}
	m.journal.mu.Lock()
	defer m.journal.mu.Unlock()
	out := make([]LogEntry, len(m.journal.entries))
	copy(out, m.journal.entries)
	return out
}

// GetEntriesByLevel returns the captured entries of one level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear drops all captured entries.
func (m *MockLogger) Clear() {
	if m.journal == nil {
		return
	}
	m.journal.mu.Lock()
	defer m.journal.mu.Unlock()
	m.journal.entries = nil
}

// HasEntry reports whether an entry with the given level and message was captured.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
