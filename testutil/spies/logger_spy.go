package spies

import (
	"sync"
)

// LogRecord is one captured log call.
type LogRecord struct {
	Level string
	Msg   string
	Args  []any
}

// LoggerSpy captures log calls for assertions. It satisfies both the shell
// logging interface and the store logging interface.
type LoggerSpy struct {
	mu      sync.Mutex
	records []LogRecord
}

// NewLoggerSpy creates an empty LoggerSpy.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug captures a debug-level call.
func (l *LoggerSpy) Debug(msg string, args ...any) {
	l.record("debug", msg, args)
}

// Info captures an info-level call.
func (l *LoggerSpy) Info(msg string, args ...any) {
	l.record("info", msg, args)
}

// Warn captures a warn-level call.
func (l *LoggerSpy) Warn(msg string, args ...any) {
	l.record("warn", msg, args)
}

// Error captures an error-level call.
func (l *LoggerSpy) Error(msg string, args ...any) {
	l.record("error", msg, args)
}

// Records returns all captured calls in order.
func (l *LoggerSpy) Records() []LogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]LogRecord, len(l.records))
	copy(records, l.records)

	return records
}

// MessagesAtLevel returns the messages captured at the given level.
func (l *LoggerSpy) MessagesAtLevel(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var messages []string

	for _, record := range l.records {
		if record.Level == level {
			messages = append(messages, record.Msg)
		}
	}

	return messages
}

func (l *LoggerSpy) record(level string, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, LogRecord{Level: level, Msg: msg, Args: args})
}
