package processorder

import (
	"fmt"

	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the order fulfilment protocol. Processing moves the
// member's reservation from Reserved to Issued, which starts the lending
// term, and marks the member as notified so the pickup notification fires at
// most once.
//
// Business Rules:
//
//	GIVEN: A book and an order identified by the librarian
//	WHEN: ProcessOrder command is received
//	THEN: the Unprocessed order transitions to Processed with the librarian
//	      recorded as the actor, its bound reservation transitions from
//	      Reserved to Issued with the term set, and the member is notified
//	      the book is ready for pickup
//	IDEMPOTENT: an already processed order is acknowledged without changes
//	REJECT: "No cancellable order found" if the order does not exist or is
//	        not awaiting processing
func Decide(state core.BookState, command Command) core.DecisionResult {
	order := state.OrderByID(command.OrderID)
	if order == nil {
		return core.RejectedDecision(core.OutcomeNoProcessableOrder)
	}

	if order.Status == core.OrderProcessed {
		return core.IdempotentDecision(core.OutcomeOrderProcessed)
	}

	if order.Status != core.OrderUnprocessed {
		return core.RejectedDecision(core.OutcomeNoProcessableOrder)
	}

	// A promoted or granted order is always bound to the book's current
	// reservation; a dangling link means the stored state is corrupt.
	if state.Reservation == nil || order.ReservationID == nil || *order.ReservationID != state.Reservation.ID {
		return core.FailedDecision(fmt.Errorf("order %s has no reservation bound to book %s", order.ID, state.Book.ID))
	}

	processed, err := order.WithStatus(core.OrderProcessed, &command.StaffID, "")
	if err != nil {
		return core.FailedDecision(err)
	}

	reservation, err := state.Reservation.WithStatus(core.ReservationIssued, command.RequestedAt)
	if err != nil {
		return core.FailedDecision(err)
	}

	var notifications []core.Notification
	if !processed.MemberNotified {
		notifications = append(notifications, core.Notification{
			Kind:          core.NotificationReservationReadyForPickup,
			BookID:        state.Book.ID,
			MemberID:      processed.MemberID,
			OrderID:       processed.ID,
			ReservationID: reservation.ID,
		})
	}
	processed.MemberNotified = true

	changes := []core.Change{
		core.UpdateOrder{Order: processed},
		core.UpdateReservation{Reservation: reservation},
	}

	return core.AcceptedDecision(core.OutcomeOrderProcessed, changes, notifications...)
}
