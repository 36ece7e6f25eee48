// Package postgresconfig provides database connection settings and
// ready-to-use connection constructors for tests and the demo CLI. Settings
// come from LIBRARY_DB_* environment variables with local-development
// defaults.
package postgresconfig
