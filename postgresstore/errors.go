package postgresstore

import "errors"

var (
	// ErrNilDatabaseConnection indicates a Store was constructed without a
	// database connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName indicates a table name option was empty.
	ErrEmptyTableName = errors.New("table names must not be empty")

	// ErrLoadingBookStateFailed wraps database errors during state loading.
	ErrLoadingBookStateFailed = errors.New("loading book state failed")

	// ErrCommittingChangesFailed wraps database errors during change commits.
	ErrCommittingChangesFailed = errors.New("committing changes failed")

	// ErrUnknownChangeType indicates a change variant the store cannot map to
	// a SQL statement.
	ErrUnknownChangeType = errors.New("unknown change type")
)
