package postgresstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/postgresstore/internal/adapters"
)

// applyChange maps one decision change onto a SQL statement and executes it
// inside the commit transaction.
func (s Store) applyChange(ctx context.Context, tx adapters.DBTx, change core.Change) error {
	var (
		query     string
		err       error
		mustMatch bool
	)

	switch c := change.(type) {
	case core.InsertReservation:
		query, _, err = goqu.Dialect(dialectPostgres).
			Insert(s.tables.Reservations).
			Rows(reservationRecord(c.Reservation)).
			ToSQL()

	case core.UpdateReservation:
		mustMatch = true
		query, _, err = goqu.Dialect(dialectPostgres).
			Update(s.tables.Reservations).
			Set(reservationRecord(c.Reservation)).
			Where(goqu.C("id").Eq(c.Reservation.ID.String())).
			ToSQL()

	case core.InsertOrder:
		// The seq column is assigned by the database to break FIFO ties.
		query, _, err = goqu.Dialect(dialectPostgres).
			Insert(s.tables.Orders).
			Rows(orderInsertRecord(c.Order)).
			ToSQL()

	case core.UpdateOrder:
		mustMatch = true
		query, _, err = goqu.Dialect(dialectPostgres).
			Update(s.tables.Orders).
			Set(orderUpdateRecord(c.Order)).
			Where(goqu.C("id").Eq(c.Order.ID.String())).
			ToSQL()

	case core.InsertExtension:
		query, _, err = goqu.Dialect(dialectPostgres).
			Insert(s.tables.Extensions).
			Rows(extensionRecord(c.Extension)).
			ToSQL()

	case core.UpdateExtension:
		mustMatch = true
		query, _, err = goqu.Dialect(dialectPostgres).
			Update(s.tables.Extensions).
			Set(extensionRecord(c.Extension)).
			Where(goqu.C("id").Eq(c.Extension.ID.String())).
			ToSQL()

	case core.LinkBookReservation:
		mustMatch = true
		query, _, err = goqu.Dialect(dialectPostgres).
			Update(s.tables.Books).
			Set(goqu.Record{"reservation_id": c.ReservationID.String()}).
			Where(goqu.C("id").Eq(c.BookID.String())).
			ToSQL()

	case core.UnlinkBookReservation:
		mustMatch = true
		query, _, err = goqu.Dialect(dialectPostgres).
			Update(s.tables.Books).
			Set(goqu.Record{"reservation_id": nil}).
			Where(goqu.C("id").Eq(c.BookID.String())).
			ToSQL()

	default:
		return fmt.Errorf("%w: %T", ErrUnknownChangeType, change)
	}

	if err != nil {
		s.logError(logMsgBuildQueryFailed, err)
		return errors.Join(ErrCommittingChangesFailed, err)
	}

	if mustMatch {
		return s.execExpectingMatch(ctx, tx, query)
	}

	return s.exec(ctx, tx, query)
}

func reservationRecord(r core.Reservation) goqu.Record {
	return goqu.Record{
		"id":          r.ID.String(),
		"book_id":     r.BookID.String(),
		"member_id":   r.MemberID.String(),
		"status":      string(r.Status),
		"term":        timestampValue(r.Term),
		"created_at":  timestampLiteral(r.CreatedAt),
		"modified_at": modifiedAtLiteral(r.ModifiedAt, r.CreatedAt),
	}
}

func orderInsertRecord(o core.Order) goqu.Record {
	record := orderUpdateRecord(o)
	record["created_at"] = timestampLiteral(o.CreatedAt)

	return record
}

func orderUpdateRecord(o core.Order) goqu.Record {
	return goqu.Record{
		"id":               o.ID.String(),
		"book_id":          o.BookID.String(),
		"member_id":        o.MemberID.String(),
		"reservation_id":   uuidValue(o.ReservationID),
		"status":           string(o.Status),
		"change_reason":    o.ChangeReason,
		"last_modified_by": uuidValue(o.LastModifiedBy),
		"member_notified":  o.MemberNotified,
	}
}

func extensionRecord(e core.ReservationExtension) goqu.Record {
	return goqu.Record{
		"id":             e.ID.String(),
		"reservation_id": e.ReservationID.String(),
		"status":         string(e.Status),
		"processed_by":   uuidValue(e.ProcessedBy),
		"created_at":     timestampLiteral(e.CreatedAt),
		"modified_at":    modifiedAtLiteral(e.ModifiedAt, e.CreatedAt),
	}
}

func uuidValue(id *uuid.UUID) any {
	if id == nil {
		return nil
	}

	return id.String()
}

func timestampValue(t *time.Time) any {
	if t == nil {
		return nil
	}

	return timestampLiteral(*t)
}

func timestampLiteral(t time.Time) any {
	return goqu.L(castTimestamp, t.Format(time.RFC3339Nano))
}

// modifiedAtLiteral falls back to the creation timestamp for records that
// never transitioned after creation.
func modifiedAtLiteral(modified time.Time, created time.Time) any {
	if modified.IsZero() {
		return timestampLiteral(created)
	}

	return timestampLiteral(modified)
}
