package shell

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

// StateVersion is the optimistic concurrency token of a book's aggregate
// state. Every committed change set bumps it; a commit with a stale expected
// version fails with ErrConcurrencyConflict. The book row is the
// serialization point, so no cross-book locking ever happens.
type StateVersion uint64

// BookStateStore is the storage contract the command handlers need: load a
// consistent per-book snapshot together with its version, and atomically
// apply a decision's changes against that version.
//
// Implementations must apply all changes of one commit inside a single
// atomic unit so cascades never partially apply.
type BookStateStore interface {
	// LoadBookState loads the book's aggregate snapshot. The memberID scopes
	// the MemberActiveReservations count; pass uuid.Nil when no member
	// context applies.
	LoadBookState(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID) (core.BookState, StateVersion, error)

	// CommitChanges applies the changes if and only if the book's state
	// version still equals expected. Returns ErrConcurrencyConflict otherwise.
	CommitChanges(ctx context.Context, bookID uuid.UUID, expected StateVersion, changes []core.Change) error
}

// MemberReservationsLoader is the storage contract of the member-scoped read
// models: all of a member's reservations in a non-terminal state.
type MemberReservationsLoader interface {
	LoadActiveReservations(ctx context.Context, memberID uuid.UUID) ([]core.Reservation, error)
}
