package postgresconfig

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXPoolConfig creates a pgxpool.Config from the settings.
func PGXPoolConfig(settings Settings) *pgxpool.Config {
	dbConfig, err := pgxpool.ParseConfig(settings.DSN)
	if err != nil {
		log.Fatal("Failed to create a config, error: ", err)
	}

	dbConfig.MaxConns = settings.MaxConns
	dbConfig.MinConns = settings.MinConns
	dbConfig.MaxConnLifetime = settings.MaxConnLifetime
	dbConfig.MaxConnIdleTime = settings.MaxConnIdleTime
	dbConfig.HealthCheckPeriod = settings.HealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = settings.ConnectTimeout

	return dbConfig
}

// MustConnectPGXPool creates a connected pgxpool.Pool from the settings and
// exits on failure.
func MustConnectPGXPool(ctx context.Context, settings Settings) *pgxpool.Pool {
	pool, err := pgxpool.NewWithConfig(ctx, PGXPoolConfig(settings))
	if err != nil {
		log.Fatal("Failed to create connection pool, error: ", err)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		log.Fatal("Failed to ping database, error: ", pingErr)
	}

	return pool
}
