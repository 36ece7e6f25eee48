package refuseorder

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the librarian's refusal protocol. Refusing a granted
// order unwinds the grant: the bound reservation is refused, the book
// unlinked, and the next queued order promoted.
//
// Business Rules:
//
//	GIVEN: A book and an order identified by the librarian
//	WHEN: RefuseOrder command is received
//	THEN: the order transitions to Refused with the librarian recorded as the
//	      actor and the stated reason; a bound active reservation transitions
//	      to Refused, the book is unlinked, and the oldest queued order (if
//	      any) is promoted
//	IDEMPOTENT: an already refused order is acknowledged without changes
//	REJECT: "No cancellable order found" if the order does not exist or was
//	        already cancelled by the member
func Decide(state core.BookState, command Command) core.DecisionResult {
	order := state.OrderByID(command.OrderID)
	if order == nil {
		return core.RejectedDecision(core.OutcomeNoProcessableOrder)
	}

	if order.Status == core.OrderRefused {
		return core.IdempotentDecision(core.OutcomeOrderRefused)
	}

	if order.Status == core.OrderMemberCancelled {
		return core.RejectedDecision(core.OutcomeNoProcessableOrder)
	}

	refused, err := order.WithStatus(core.OrderRefused, &command.StaffID, command.Reason)
	if err != nil {
		return core.FailedDecision(err)
	}

	changes := []core.Change{core.UpdateOrder{Order: refused}}

	if state.Reservation == nil || order.ReservationID == nil || *order.ReservationID != state.Reservation.ID ||
		state.Reservation.Status.IsTerminal() {
		return core.AcceptedDecision(core.OutcomeOrderRefused, changes)
	}

	reservation, err := state.Reservation.WithStatus(core.ReservationRefused, command.RequestedAt)
	if err != nil {
		return core.FailedDecision(err)
	}

	changes = append(changes, core.UpdateReservation{Reservation: reservation})

	promotionChanges, notifications := core.PromoteNextOrder(state, command.RequestedAt)
	changes = append(changes, promotionChanges...)

	return core.AcceptedDecision(core.OutcomeOrderRefused, changes, notifications...)
}
