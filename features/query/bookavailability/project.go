package bookavailability

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

// ProjectBookAvailability implements the catalog page view of a single book.
// This is a pure function with no side effects: it takes the book's current
// state and a query and returns the projected availability view.
//
// Query Logic:
//
//	GIVEN: A book's current state
//	WHEN: BookAvailability query is executed
//	THEN: BookAvailability struct is returned with the book's availability,
//	      its term date and queue length, and the querying member's own
//	      relationship to the book (holds it, queued for it, extensions left)
func ProjectBookAvailability(state core.BookState, query Query, now time.Time) BookAvailability {
	result := BookAvailability{
		BookID:        state.Book.ID,
		Title:         state.Book.Title,
		ISBN:          state.Book.ISBN,
		IsAvailable:   state.IsAvailable(),
		IsBooked:      state.IsBooked(),
		IsIssued:      state.IsIssued(),
		Term:          state.ReservationTermDate(),
		AmountInQueue: state.AmountInQueue(),
	}

	if state.Reservation != nil {
		result.OverdueDays = state.Reservation.OverdueDays(now)
	}

	if query.MemberID == uuid.Nil {
		return result
	}

	result.IsBookedByMember = state.IsBookedByMember(query.MemberID)
	result.IsIssuedToMember = state.IsIssuedToMember(query.MemberID)
	result.IsReservedByMember = state.IsReservedByMember(query.MemberID)
	result.IsQueuedByMember = state.IsQueuedByMember(query.MemberID)

	if result.IsBookedByMember {
		result.ExtensionsAvailable = state.ExtensionsAvailable()
		result.ExtensionRequested = state.RequestedExtension() != nil
	}

	return result
}
