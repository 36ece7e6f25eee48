package bookavailability

import (
	"time"

	"github.com/google/uuid"
)

// Query identifies the book to inspect and the member asking, so the result
// can carry member-relative flags. MemberID may be uuid.Nil for an anonymous
// catalog view.
type Query struct {
	BookID   uuid.UUID
	MemberID uuid.UUID
}

// BookAvailability is the query result describing a single book's current
// state as shown on its catalog page.
type BookAvailability struct {
	BookID        uuid.UUID
	Title         string
	ISBN          string
	IsAvailable   bool
	IsBooked      bool
	IsIssued      bool
	Term          *time.Time
	OverdueDays   int
	AmountInQueue int

	// Member-relative flags; all false for an anonymous query.
	IsBookedByMember    bool
	IsIssuedToMember    bool
	IsReservedByMember  bool
	IsQueuedByMember    bool
	ExtensionsAvailable int
	ExtensionRequested  bool
}
