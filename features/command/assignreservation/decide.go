package assignreservation

import (
	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the desk assignment protocol. A staff assignment skips
// the ordering pipeline entirely: the reservation and a backing Processed
// order are created in one step, and neither the member reservation cap nor
// the queue cap applies.
//
// Business Rules:
//
//	GIVEN: A book, a member, and the assigning librarian
//	WHEN: AssignReservation command is received
//	THEN: if the book is available, a new reservation for the member and a
//	      Processed order backing it are created and linked to the book; if
//	      the book's current reservation already belongs to the member but
//	      has no backing order, the order is synthesized
//	IDEMPOTENT: a current reservation already held by the member with a
//	            backing order is acknowledged without changes
//	REJECT: "Book is not available" if another member holds the current
//	        reservation
func Decide(state core.BookState, command Command) core.DecisionResult {
	if state.Reservation != nil {
		if state.Reservation.MemberID != command.MemberID {
			return core.RejectedDecision(core.OutcomeBookUnavailable)
		}

		if state.OrderForReservation(state.Reservation.ID) != nil {
			return core.IdempotentDecision(core.OutcomeReservationAssigned)
		}

		order := buildAssignedOrder(state.Book.ID, command, state.Reservation.ID)

		return core.AcceptedDecision(core.OutcomeReservationAssigned, []core.Change{
			core.InsertOrder{Order: order},
		})
	}

	reservation := core.BuildReservation(state.Book.ID, command.MemberID, command.RequestedAt)
	order := buildAssignedOrder(state.Book.ID, command, reservation.ID)

	return core.AcceptedDecision(core.OutcomeReservationAssigned, []core.Change{
		core.InsertReservation{Reservation: reservation},
		core.InsertOrder{Order: order},
		core.LinkBookReservation{BookID: state.Book.ID, ReservationID: reservation.ID},
	})
}

// buildAssignedOrder synthesizes the Processed order that records who asked
// for the book and which librarian granted it at the desk.
func buildAssignedOrder(bookID uuid.UUID, command Command, reservationID uuid.UUID) core.Order {
	order := core.BuildOrder(bookID, command.MemberID, core.OrderProcessed, command.RequestedAt)
	order = order.WithReservation(reservationID)
	order.LastModifiedBy = &command.StaffID
	order.ChangeReason = "Created by staff, reserving book directly"

	return order
}
