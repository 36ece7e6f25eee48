package postgresstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/postgresstore/internal/adapters"
	"github.com/shelfside/book-reservations-go/shell"
)

const (
	defaultBooksTableName        = "books"
	defaultReservationsTableName = "reservations"
	defaultExtensionsTableName   = "reservation_extensions"
	defaultOrdersTableName       = "book_orders"

	dialectPostgres = "postgres"
	castTimestamp   = "?::timestamp with time zone"

	logMsgBuildQueryFailed    = "failed to build sql statement"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed during commit"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgBeginTxFailed       = "failed to begin transaction"
	logMsgCommitTxFailed      = "failed to commit transaction"
	logMsgRollbackTxFailed    = "failed to roll back transaction"
	logMsgStateLoaded         = "book state loaded"
	logMsgChangesCommitted    = "changes committed"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgSQLExecuted         = "executed sql for: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrBookID             = "book_id"
	logAttrChangeCount        = "change_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedVersion    = "expected_version"
	logAttrActualVersion      = "actual_version"
	logActionLoad             = "load"
	logActionCommit           = "commit"

	metricLoadDuration         = "bookstate_load_duration"
	metricCommitDuration       = "bookstate_commit_duration"
	metricConcurrencyConflicts = "bookstate_concurrency_conflicts"
)

// Store is the PostgreSQL implementation of the book state storage contract.
// It loads per-book aggregate snapshots and applies decision change sets
// atomically under optimistic concurrency control: the book row carries a
// state version that every commit checks and bumps inside one transaction.
type Store struct {
	db      adapters.DBAdapter
	tables  TableNames
	logger  Logger
	metrics MetricsCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (Store, error) {
	s := Store{
		db:     db,
		tables: DefaultTableNames(),
	}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// LoadBookState loads the book's aggregate snapshot together with its state
// version: the book row, its current reservation with that reservation's
// extensions, all orders for the book, and the given member's active
// reservation count across the catalog. Pass uuid.Nil as memberID when no
// member context applies.
func (s Store) LoadBookState(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID) (
	core.BookState,
	shell.StateVersion,
	error,
) {
	var empty core.BookState

	start := time.Now()

	book, version, err := s.loadBook(ctx, bookID)
	if err != nil {
		return empty, 0, err
	}

	state := core.BookState{Book: book}

	if book.ReservationID != nil {
		reservation, loadErr := s.loadReservation(ctx, *book.ReservationID)
		if loadErr != nil {
			return empty, 0, loadErr
		}

		state.Reservation = reservation

		if reservation != nil {
			extensions, extErr := s.loadExtensions(ctx, reservation.ID)
			if extErr != nil {
				return empty, 0, extErr
			}

			state.Extensions = extensions
		}
	}

	orders, err := s.loadOrders(ctx, bookID)
	if err != nil {
		return empty, 0, err
	}

	state.Orders = orders

	if memberID != uuid.Nil {
		count, countErr := s.countActiveReservations(ctx, memberID)
		if countErr != nil {
			return empty, 0, countErr
		}

		state.MemberActiveReservations = count
	}

	duration := time.Since(start)
	s.recordDuration(metricLoadDuration, duration)
	s.logOperation(
		logMsgStateLoaded,
		logAttrBookID, bookID.String(),
		logAttrDurationMS, durationToMilliseconds(duration))

	return state, version, nil
}

// CommitChanges applies the changes if and only if the book's state version
// still equals expected. The version check takes a row lock on the book, so
// concurrent commits on the same book serialize and the loser fails with
// shell.ErrConcurrencyConflict without partial application.
func (s Store) CommitChanges(
	ctx context.Context,
	bookID uuid.UUID,
	expected shell.StateVersion,
	changes []core.Change,
) error {
	start := time.Now()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		s.logError(logMsgBeginTxFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	defer s.rollback(ctx, tx)

	if err = s.checkVersion(ctx, tx, bookID, expected); err != nil {
		return err
	}

	for _, change := range changes {
		if err = s.applyChange(ctx, tx, change); err != nil {
			return err
		}
	}

	if err = s.bumpVersion(ctx, tx, bookID, expected); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logError(logMsgCommitTxFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	duration := time.Since(start)
	s.recordDuration(metricCommitDuration, duration)
	s.logOperation(
		logMsgChangesCommitted,
		logAttrBookID, bookID.String(),
		logAttrChangeCount, len(changes),
		logAttrDurationMS, durationToMilliseconds(duration))

	return nil
}

// LoadActiveReservations loads all of the member's reservations in a
// non-terminal state, for the member-scoped read models.
func (s Store) LoadActiveReservations(ctx context.Context, memberID uuid.UUID) ([]core.Reservation, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Reservations).
		Select("id", "book_id", "member_id", "status", "term", "created_at", "modified_at").
		Where(
			goqu.C("member_id").Eq(memberID.String()),
			goqu.C("status").In(string(core.ReservationReserved), string(core.ReservationIssued)),
		).
		Order(goqu.C("created_at").Asc()).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return nil, errors.Join(ErrLoadingBookStateFailed, err)
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(rows)

	var reservations []core.Reservation

	for rows.Next() {
		reservation, scanErr := scanReservation(rows)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, errors.Join(ErrLoadingBookStateFailed, scanErr)
		}

		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

// InsertBook adds a catalog entry. The book starts unlinked at state
// version 0.
func (s Store) InsertBook(ctx context.Context, book core.Book) error {
	query, _, err := goqu.Dialect(dialectPostgres).
		Insert(s.tables.Books).
		Rows(goqu.Record{
			"id":            book.ID.String(),
			"title":         book.Title,
			"author_id":     book.AuthorID.String(),
			"publisher_id":  book.PublisherID.String(),
			"isbn":          book.ISBN,
			"language":      book.Language,
			"published_at":  book.PublishedAt,
			"pages":         book.Pages,
			"state_version": 0,
			"created_at":    timestampLiteral(book.CreatedAt),
			"modified_at":   modifiedAtLiteral(book.ModifiedAt, book.CreatedAt),
		}).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		s.logError(logMsgBeginTxFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	defer s.rollback(ctx, tx)

	if err = s.exec(ctx, tx, query); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logError(logMsgCommitTxFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	return nil
}

func (s Store) loadBook(ctx context.Context, bookID uuid.UUID) (core.Book, shell.StateVersion, error) {
	var empty core.Book

	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Books).
		Select(
			"id", "title", "author_id", "publisher_id", "isbn", "language",
			"published_at", "pages", "reservation_id", "state_version",
			"created_at", "modified_at",
		).
		Where(goqu.C("id").Eq(bookID.String())).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return empty, 0, errors.Join(ErrLoadingBookStateFailed, err)
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return empty, 0, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return empty, 0, shell.ErrBookNotFound
	}

	var (
		book          core.Book
		id            string
		authorID      string
		publisherID   string
		reservationID sql.NullString
		version       int64
	)

	scanErr := rows.Scan(
		&id, &book.Title, &authorID, &publisherID, &book.ISBN, &book.Language,
		&book.PublishedAt, &book.Pages, &reservationID, &version,
		&book.CreatedAt, &book.ModifiedAt,
	)
	if scanErr != nil {
		s.logError(logMsgScanRowFailed, scanErr)
		return empty, 0, errors.Join(ErrLoadingBookStateFailed, scanErr)
	}

	book.ID = uuid.MustParse(id)
	book.AuthorID = uuid.MustParse(authorID)
	book.PublisherID = uuid.MustParse(publisherID)

	if reservationID.Valid {
		parsed, parseErr := uuid.Parse(reservationID.String)
		if parseErr != nil {
			return empty, 0, errors.Join(ErrLoadingBookStateFailed, parseErr)
		}

		book.ReservationID = &parsed
	}

	return book, shell.StateVersion(version), nil
}

func (s Store) loadReservation(ctx context.Context, reservationID uuid.UUID) (*core.Reservation, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Reservations).
		Select("id", "book_id", "member_id", "status", "term", "created_at", "modified_at").
		Where(goqu.C("id").Eq(reservationID.String())).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return nil, errors.Join(ErrLoadingBookStateFailed, err)
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return nil, nil
	}

	reservation, scanErr := scanReservation(rows)
	if scanErr != nil {
		s.logError(logMsgScanRowFailed, scanErr)
		return nil, errors.Join(ErrLoadingBookStateFailed, scanErr)
	}

	return &reservation, nil
}

func (s Store) loadExtensions(ctx context.Context, reservationID uuid.UUID) ([]core.ReservationExtension, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Extensions).
		Select("id", "reservation_id", "status", "processed_by", "created_at", "modified_at").
		Where(goqu.C("reservation_id").Eq(reservationID.String())).
		Order(goqu.C("created_at").Asc()).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return nil, errors.Join(ErrLoadingBookStateFailed, err)
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(rows)

	var extensions []core.ReservationExtension

	for rows.Next() {
		var (
			extension   core.ReservationExtension
			id          string
			resID       string
			status      string
			processedBy sql.NullString
		)

		scanErr := rows.Scan(&id, &resID, &status, &processedBy, &extension.CreatedAt, &extension.ModifiedAt)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, errors.Join(ErrLoadingBookStateFailed, scanErr)
		}

		extension.ID = uuid.MustParse(id)
		extension.ReservationID = uuid.MustParse(resID)
		extension.Status = core.ExtensionStatus(status)

		if processedBy.Valid {
			parsed, parseErr := uuid.Parse(processedBy.String)
			if parseErr != nil {
				return nil, errors.Join(ErrLoadingBookStateFailed, parseErr)
			}

			extension.ProcessedBy = &parsed
		}

		extensions = append(extensions, extension)
	}

	return extensions, nil
}

func (s Store) loadOrders(ctx context.Context, bookID uuid.UUID) ([]core.Order, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Orders).
		Select(
			"id", "book_id", "member_id", "reservation_id", "status",
			"change_reason", "last_modified_by", "member_notified",
			"created_at", "seq",
		).
		Where(goqu.C("book_id").Eq(bookID.String())).
		Order(goqu.C("created_at").Asc(), goqu.C("seq").Asc()).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return nil, errors.Join(ErrLoadingBookStateFailed, err)
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer s.closeRows(rows)

	var orders []core.Order

	for rows.Next() {
		var (
			order          core.Order
			id             string
			bkID           string
			memberID       string
			reservationID  sql.NullString
			status         string
			lastModifiedBy sql.NullString
		)

		scanErr := rows.Scan(
			&id, &bkID, &memberID, &reservationID, &status,
			&order.ChangeReason, &lastModifiedBy, &order.MemberNotified,
			&order.CreatedAt, &order.Seq,
		)
		if scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return nil, errors.Join(ErrLoadingBookStateFailed, scanErr)
		}

		order.ID = uuid.MustParse(id)
		order.BookID = uuid.MustParse(bkID)
		order.MemberID = uuid.MustParse(memberID)
		order.Status = core.OrderStatus(status)

		if reservationID.Valid {
			parsed, parseErr := uuid.Parse(reservationID.String)
			if parseErr != nil {
				return nil, errors.Join(ErrLoadingBookStateFailed, parseErr)
			}

			order.ReservationID = &parsed
		}

		if lastModifiedBy.Valid {
			parsed, parseErr := uuid.Parse(lastModifiedBy.String)
			if parseErr != nil {
				return nil, errors.Join(ErrLoadingBookStateFailed, parseErr)
			}

			order.LastModifiedBy = &parsed
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (s Store) countActiveReservations(ctx context.Context, memberID uuid.UUID) (int, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Reservations).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("member_id").Eq(memberID.String()),
			goqu.C("status").In(string(core.ReservationReserved), string(core.ReservationIssued)),
		).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return 0, errors.Join(ErrLoadingBookStateFailed, err)
	}

	rows, err := s.query(ctx, query)
	if err != nil {
		return 0, err
	}
	defer s.closeRows(rows)

	count := 0

	if rows.Next() {
		if scanErr := rows.Scan(&count); scanErr != nil {
			s.logError(logMsgScanRowFailed, scanErr)
			return 0, errors.Join(ErrLoadingBookStateFailed, scanErr)
		}
	}

	return count, nil
}

// checkVersion locks the book row and verifies the expected state version.
func (s Store) checkVersion(ctx context.Context, tx adapters.DBTx, bookID uuid.UUID, expected shell.StateVersion) error {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(s.tables.Books).
		Select("state_version").
		Where(goqu.C("id").Eq(bookID.String())).
		ForUpdate(exp.Wait).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	rows, err := tx.Query(ctx, query)
	if err != nil {
		s.logError(logMsgDBQueryFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return shell.ErrBookNotFound
	}

	var actual int64
	if scanErr := rows.Scan(&actual); scanErr != nil {
		s.logError(logMsgScanRowFailed, scanErr)
		return errors.Join(ErrCommittingChangesFailed, scanErr)
	}

	if shell.StateVersion(actual) != expected {
		s.incrementCounter(metricConcurrencyConflicts)
		s.logOperation(
			logMsgConcurrencyConflict,
			logAttrBookID, bookID.String(),
			logAttrExpectedVersion, uint64(expected),
			logAttrActualVersion, actual)

		return shell.ErrConcurrencyConflict
	}

	return nil
}

// bumpVersion advances the book's state version as part of the commit.
func (s Store) bumpVersion(ctx context.Context, tx adapters.DBTx, bookID uuid.UUID, expected shell.StateVersion) error {
	query, _, err := goqu.Dialect(dialectPostgres).
		Update(s.tables.Books).
		Set(goqu.Record{
			"state_version": int64(expected) + 1,
			"modified_at":   goqu.L("NOW()"),
		}).
		Where(goqu.C("id").Eq(bookID.String())).
		ToSQL()
	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	return s.exec(ctx, tx, query)
}

func (s Store) query(ctx context.Context, query string) (adapters.DBRows, error) {
	start := time.Now()
	rows, err := s.db.Query(ctx, query)
	s.logQueryWithDuration(query, logActionLoad, time.Since(start))

	if err != nil {
		s.logError(logMsgDBQueryFailed, err)
		return nil, errors.Join(ErrLoadingBookStateFailed, err)
	}

	return rows, nil
}

func (s Store) exec(ctx context.Context, tx adapters.DBTx, query string) error {
	start := time.Now()
	_, err := tx.Exec(ctx, query)
	s.logQueryWithDuration(query, logActionCommit, time.Since(start))

	if err != nil {
		s.logError(logMsgDBExecFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	return nil
}

// execExpectingMatch executes a statement that must affect at least one row.
// Zero affected rows means the change targets a record that does not exist.
func (s Store) execExpectingMatch(ctx context.Context, tx adapters.DBTx, query string) error {
	start := time.Now()
	result, err := tx.Exec(ctx, query)
	s.logQueryWithDuration(query, logActionCommit, time.Since(start))

	if err != nil {
		s.logError(logMsgDBExecFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		s.logError(logMsgDBExecFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	if affected == 0 {
		return shell.ErrStaleChange
	}

	return nil
}

func (s Store) rollback(ctx context.Context, tx adapters.DBTx) {
	if err := tx.Rollback(ctx); err != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgRollbackTxFailed, logAttrError, err.Error())
		}
	}
}

func (s Store) closeRows(rows adapters.DBRows) {
	if err := rows.Close(); err != nil {
		if s.logger != nil {
			s.logger.Warn(logMsgCloseRowsFailed, logAttrError, err.Error())
		}
	}
}

func scanReservation(rows adapters.DBRows) (core.Reservation, error) {
	var (
		reservation core.Reservation
		id          string
		bookID      string
		memberID    string
		status      string
		term        sql.NullTime
	)

	if err := rows.Scan(&id, &bookID, &memberID, &status, &term, &reservation.CreatedAt, &reservation.ModifiedAt); err != nil {
		return core.Reservation{}, err
	}

	reservation.ID = uuid.MustParse(id)
	reservation.BookID = uuid.MustParse(bookID)
	reservation.MemberID = uuid.MustParse(memberID)
	reservation.Status = core.ReservationStatus(status)

	if term.Valid {
		t := term.Time
		reservation.Term = &t
	}

	return reservation, nil
}
