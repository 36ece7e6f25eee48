package queuedorders

import (
	"time"

	"github.com/google/uuid"
)

// Query identifies the book whose queue to list.
type Query struct {
	BookID uuid.UUID
}

// QueueEntry is one waiting order, in promotion order.
type QueueEntry struct {
	Position  int
	OrderID   uuid.UUID
	MemberID  uuid.UUID
	CreatedAt time.Time
}

// QueuedOrders is the query result listing a book's waiting orders in the
// order they will be promoted.
type QueuedOrders struct {
	BookID  uuid.UUID
	Entries []QueueEntry
	Count   int
}
