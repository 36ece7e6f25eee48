package core

import (
	"time"
)

const (
	// ReservationTermDays is the default lending term, also added per approved extension.
	ReservationTermDays = 14

	// MaxReservationsPerMember caps a member's simultaneously active (Reserved or Issued) reservations.
	// The cap applies to the member request path only; catalog assignment bypasses it.
	MaxReservationsPerMember = 5

	// MaxQueuedOrdersAllowed caps the number of InQueue orders per book.
	MaxQueuedOrdersAllowed = 3

	// MaxExtensionsPerMember caps approved term extensions per reservation.
	MaxExtensionsPerMember = 2
)

// ReservationTerm is the duration added to a reservation's term on issue and on each approved extension.
const ReservationTerm = ReservationTermDays * 24 * time.Hour

// DefaultTerm computes the due date for a reservation issued at the given time.
func DefaultTerm(issuedAt time.Time) time.Time {
	return ToTimestamp(issuedAt.Add(ReservationTerm))
}

// ToTimestamp normalizes a timestamp to UTC with microsecond precision,
// matching the precision the storage layer round-trips.
func ToTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
