// Package inmemorystore provides an in-memory book state store with the same
// optimistic concurrency semantics as the PostgreSQL store, for fast handler
// tests without a database.
package inmemorystore
