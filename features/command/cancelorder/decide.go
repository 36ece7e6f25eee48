package cancelorder

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the member cancellation protocol as one atomic cascade:
// the order becomes MemberCancelled, its bound reservation (if still active)
// becomes Cancelled and is unlinked from the book, and the next queued order
// is promoted.
//
// Business Rules:
//
//	GIVEN: A book and a member
//	WHEN: CancelOrder command is received
//	THEN: the member's single cancellable order transitions to
//	      MemberCancelled; a bound active reservation transitions to
//	      Cancelled, the book is unlinked, and the oldest queued order (if
//	      any) is promoted
//	REJECT: "No cancellable order found" if the member has no pending,
//	        queued, or granted-but-not-issued order for this book
func Decide(state core.BookState, command Command) core.DecisionResult {
	order := state.CancellableOrder(command.MemberID)
	if order == nil {
		return core.RejectedDecision(core.OutcomeNoCancellableOrder)
	}

	cancelled, err := order.WithStatus(core.OrderMemberCancelled, &command.MemberID, "")
	if err != nil {
		return core.FailedDecision(err)
	}

	changes := []core.Change{core.UpdateOrder{Order: cancelled}}

	// A queued order has no reservation to unwind, so the book keeps its
	// current holder and no promotion fires.
	if order.Status == core.OrderInQueue {
		return core.AcceptedDecision(core.OutcomeCancelledOk, changes)
	}

	if state.Reservation == nil || order.ReservationID == nil || *order.ReservationID != state.Reservation.ID {
		return core.AcceptedDecision(core.OutcomeCancelledOk, changes)
	}

	reservation, err := state.Reservation.WithStatus(core.ReservationCancelled, command.RequestedAt)
	if err != nil {
		return core.FailedDecision(err)
	}

	changes = append(changes, core.UpdateReservation{Reservation: reservation})

	promotionChanges, notifications := core.PromoteNextOrder(state, command.RequestedAt)
	changes = append(changes, promotionChanges...)

	return core.AcceptedDecision(core.OutcomeCancelledOk, changes, notifications...)
}
