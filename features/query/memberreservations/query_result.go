package memberreservations

import (
	"time"

	"github.com/google/uuid"
)

// Query identifies the member whose active reservations to list.
type Query struct {
	MemberID uuid.UUID
}

// ReservationInfo is one active reservation of the member: the book it holds
// and when it is due back, with OverdueDays non-zero for issued books past
// their term.
type ReservationInfo struct {
	ReservationID uuid.UUID
	BookID        uuid.UUID
	Status        string
	Term          *time.Time
	OverdueDays   int
	CreatedAt     time.Time
}

// MemberReservations is the query result listing the member's reservations
// that are currently Reserved or Issued, oldest first.
type MemberReservations struct {
	MemberID     uuid.UUID
	Reservations []ReservationInfo
	Count        int
}
