package completereservation

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the book return protocol. Completion is a terminal
// reservation transition, so it carries the queue promotion in the same
// atomic unit.
//
// Business Rules:
//
//	GIVEN: A book
//	WHEN: CompleteReservation command is received
//	THEN: the book's issued reservation transitions to Completed, the book is
//	      unlinked, and the oldest queued order (if any) is promoted
//	REJECT: "No reservation found" if the book has no current reservation
func Decide(state core.BookState, command Command) core.DecisionResult {
	if state.Reservation == nil {
		return core.RejectedDecision(core.OutcomeNoReservationFound)
	}

	reservation, err := state.Reservation.WithStatus(core.ReservationCompleted, command.RequestedAt)
	if err != nil {
		// Completing a reservation that was never issued is a staff workflow
		// error, not a member-facing rejection.
		return core.FailedDecision(err)
	}

	changes := []core.Change{core.UpdateReservation{Reservation: reservation}}

	promotionChanges, notifications := core.PromoteNextOrder(state, command.RequestedAt)
	changes = append(changes, promotionChanges...)

	return core.AcceptedDecision(core.OutcomeReservationCompleted, changes, notifications...)
}
