package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shelfside/book-reservations-go/postgresstore"
	"github.com/shelfside/book-reservations-go/testutil/postgresconfig"
)

// runtime bundles everything a command needs to talk to the engine.
type runtime struct {
	pool     *pgxpool.Pool
	store    postgresstore.Store
	logger   *slogAdapter
	notifier *logNotifier
}

// connect builds the runtime from the environment settings. The caller must
// close it when done.
func connect(ctx context.Context) (*runtime, error) {
	settings, err := postgresconfig.Load()
	if err != nil {
		return nil, fmt.Errorf("loading database settings: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, postgresconfig.PGXPoolConfig(settings))
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", pingErr)
	}

	logger := newSlogAdapter(verbose)

	store, err := postgresstore.NewStoreFromPGXPool(pool, postgresstore.WithLogger(logger))
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &runtime{
		pool:     pool,
		store:    store,
		logger:   logger,
		notifier: &logNotifier{logger: logger},
	}, nil
}

func (r *runtime) close() {
	r.pool.Close()
}

// slogAdapter maps the dependency-free logging interfaces onto log/slog.
type slogAdapter struct {
	logger *slog.Logger
}

func newSlogAdapter(verbose bool) *slogAdapter {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	return &slogAdapter{logger: slog.New(handler)}
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

// logNotifier prints dispatched notifications instead of delivering them to
// an external channel. The demo has no message broker; the payload shown is
// exactly what a real notifier would send.
type logNotifier struct {
	logger *slogAdapter
}

func (n *logNotifier) Notify(_ context.Context, kind string, payload []byte) error {
	n.logger.Info("notification dispatched", "kind", kind, "payload", string(payload))
	return nil
}

func parseUUIDArg(name string, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a UUID: %w", name, err)
	}

	return id, nil
}

func parseOptionalUUIDArg(name string, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, nil
	}

	return parseUUIDArg(name, value)
}
