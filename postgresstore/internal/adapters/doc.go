// Package adapters provides database adapter implementations that allow the
// store to work with different PostgreSQL client libraries (pgx.Pool,
// sqlx.DB, sql.DB) through a unified interface with transaction support.
package adapters
