package postgresstore

import (
	"math"
	"time"
)

// logQueryWithDuration logs SQL statements with execution time at debug level
// if the logger is configured.
func (s Store) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, durationToMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (s Store) logOperation(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (s Store) logError(message string, err error, args ...any) {
	if s.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		s.logger.Error(message, allArgs...)
	}
}

// recordDuration records an operation duration if the metrics collector is configured.
func (s Store) recordDuration(metric string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordDuration(metric, duration, nil)
	}
}

// incrementCounter bumps a counter metric if the metrics collector is configured.
func (s Store) incrementCounter(metric string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(metric, nil)
	}
}

// durationToMilliseconds converts a time.Duration to float64 milliseconds
// with 3 decimal places.
func durationToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
