package queuedorders

import (
	"slices"

	"github.com/shelfside/book-reservations-go/core"
)

// ProjectQueuedOrders implements the queue listing for a single book. This is
// a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A book's current state
//	WHEN: QueuedOrders query is executed
//	THEN: QueuedOrders struct is returned listing every InQueue order in
//	      promotion order, oldest first with ties broken by insertion order
//	EXCLUDES: Orders that were granted, refused, or cancelled
func ProjectQueuedOrders(state core.BookState, query Query) QueuedOrders {
	queued := make([]core.Order, 0, len(state.Orders))

	for _, order := range state.Orders {
		if order.Status == core.OrderInQueue {
			queued = append(queued, order)
		}
	}

	slices.SortFunc(queued, func(a, b core.Order) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return int(a.Seq - b.Seq)
	})

	entries := make([]QueueEntry, 0, len(queued))
	for i, order := range queued {
		entries = append(entries, QueueEntry{
			Position:  i + 1,
			OrderID:   order.ID,
			MemberID:  order.MemberID,
			CreatedAt: order.CreatedAt,
		})
	}

	return QueuedOrders{
		BookID:  query.BookID,
		Entries: entries,
		Count:   len(entries),
	}
}
