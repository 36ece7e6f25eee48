package postgresstore

import (
	"time"
)

// Logger interface for SQL statement logging, operational metrics, warnings,
// and error reporting. Kept dependency-free so callers can bring any logging
// backend.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting store performance and operational
// metrics. Implementations can forward to any metrics backend.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
}

// TableNames holds the four table names the store reads and writes.
type TableNames struct {
	Books        string
	Reservations string
	Extensions   string
	Orders       string
}

// DefaultTableNames returns the table names used unless overridden with
// WithTableNames.
func DefaultTableNames() TableNames {
	return TableNames{
		Books:        defaultBooksTableName,
		Reservations: defaultReservationsTableName,
		Extensions:   defaultExtensionsTableName,
		Orders:       defaultOrdersTableName,
	}
}

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithTableNames sets the table names for the Store.
func WithTableNames(tables TableNames) Option {
	return func(s *Store) error {
		if tables.Books == "" || tables.Reservations == "" || tables.Extensions == "" || tables.Orders == "" {
			return ErrEmptyTableName
		}

		s.tables = tables

		return nil
	}
}

// WithLogger sets the logger for the Store.
//
// Debug level: SQL statements with execution timing (development use)
// Info level: Row counts, durations, concurrency conflicts (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Store) error {
		s.metrics = collector
		return nil
	}
}
