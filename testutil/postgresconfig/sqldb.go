package postgresconfig

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq" // postgres driver
)

// MustConnectSQLDB creates a configured *sql.DB from the settings and exits
// on failure.
func MustConnectSQLDB(ctx context.Context, settings Settings) *sql.DB {
	db, err := sql.Open("postgres", settings.DSN)
	if err != nil {
		log.Fatal("Failed to open database connection, error: ", err)
	}

	// Configure connection pool settings
	db.SetMaxOpenConns(int(settings.MaxConns))
	db.SetMaxIdleConns(int(settings.MinConns))
	db.SetConnMaxLifetime(settings.MaxConnLifetime)
	db.SetConnMaxIdleTime(settings.MaxConnIdleTime)

	// Test the connection
	if pingErr := db.PingContext(ctx); pingErr != nil {
		log.Fatal("Failed to ping database, error: ", pingErr)
	}

	return db
}
