package placeorder

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the order creation protocol. This is a pure function: it
// takes the book's current aggregate state and a command and returns the
// records to persist plus the notifications to dispatch after commit.
//
// Business Rules:
//
//	GIVEN: A book and a requesting member
//	WHEN: PlaceOrder command is received
//	THEN: if the book is free, an Unprocessed order with a fresh Reserved
//	      reservation linked to the book ("Book reserved"); otherwise an
//	      InQueue order behind any existing queued orders ("Book reservation
//	      request put in queue")
//	REJECT: "Maximum number of reservations reached" if the member already
//	        holds 5 active reservations
//	REJECT: "Book is already ordered or your order is in queue" if the member
//	        already has a pending, queued, or granted-but-not-issued order
//	REJECT: "Maximum number of orders in queue reached" if the queue already
//	        holds 3 orders
func Decide(state core.BookState, command Command) core.DecisionResult {
	if state.MaxReservationsReached() {
		return core.RejectedDecision(core.OutcomeRejectedMaxReservations)
	}

	if state.HasDuplicateOrder(command.MemberID) {
		return core.RejectedDecision(core.OutcomeRejectedDuplicateOrder)
	}

	if !state.IsAvailable() && state.QueueFull() {
		return core.RejectedDecision(core.OutcomeRejectedQueueFull)
	}

	if state.IsAvailable() {
		return grantImmediately(state, command)
	}

	return putInQueue(state, command)
}

// grantImmediately claims the free book: one atomic unit creates the
// reservation, binds the order to it, and links the book.
func grantImmediately(state core.BookState, command Command) core.DecisionResult {
	reservation := core.BuildReservation(state.Book.ID, command.MemberID, command.RequestedAt)
	order := core.BuildOrder(state.Book.ID, command.MemberID, core.OrderUnprocessed, command.RequestedAt).
		WithReservation(reservation.ID)

	changes := []core.Change{
		core.InsertReservation{Reservation: reservation},
		core.InsertOrder{Order: order},
		core.LinkBookReservation{BookID: state.Book.ID, ReservationID: reservation.ID},
	}

	notification := core.Notification{
		Kind:          core.NotificationOrderCreated,
		BookID:        state.Book.ID,
		MemberID:      command.MemberID,
		OrderID:       order.ID,
		ReservationID: reservation.ID,
	}

	return core.AcceptedDecisionWithMessage(core.OutcomeCreated, core.MsgBookReserved, changes, notification)
}

// putInQueue appends the request behind any existing queued orders. No
// reservation is created and the librarian channel is not notified until the
// order is promoted.
func putInQueue(state core.BookState, command Command) core.DecisionResult {
	order := core.BuildOrder(state.Book.ID, command.MemberID, core.OrderInQueue, command.RequestedAt)

	changes := []core.Change{
		core.InsertOrder{Order: order},
	}

	return core.AcceptedDecisionWithMessage(core.OutcomeCreated, core.MsgBookPutInQueue, changes)
}
