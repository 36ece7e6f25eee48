// Package postgresstore implements the PostgreSQL storage backend for book
// reservation state.
//
// The store works with multiple PostgreSQL client libraries (pgx.Pool,
// sqlx.DB, sql.DB) through internal adapters and builds its SQL with goqu.
// Every book carries a state version; commits lock the book row, verify the
// version, apply the decision's changes, and bump the version inside one
// transaction. A commit against a stale version fails with
// shell.ErrConcurrencyConflict so handlers can reload and retry.
//
// The schema the store expects is documented in Schema.
package postgresstore
