package shell

import (
	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

// Result is what a command handler hands back to the API layer: the named
// outcome with its user-visible message, plus the identities the caller may
// need to reference the affected records. IDs that do not apply to the
// operation stay uuid.Nil.
type Result struct {
	Outcome       core.Outcome
	Message       string
	BookID        uuid.UUID
	OrderID       uuid.UUID
	ReservationID uuid.UUID
	ExtensionID   uuid.UUID
}

// IsRejection reports whether the operation was turned down by policy.
func (r Result) IsRejection() bool {
	return r.Outcome.IsRejection()
}

// ResultFrom builds a Result from a decision.
func ResultFrom(decision core.DecisionResult, bookID uuid.UUID) Result {
	return Result{
		Outcome: decision.Outcome,
		Message: decision.Message,
		BookID:  bookID,
	}
}

// WithOrder returns a copy of the result referencing the affected order.
func (r Result) WithOrder(orderID uuid.UUID) Result {
	r.OrderID = orderID
	return r
}

// WithReservation returns a copy of the result referencing the affected reservation.
func (r Result) WithReservation(reservationID uuid.UUID) Result {
	r.ReservationID = reservationID
	return r
}

// WithExtension returns a copy of the result referencing the affected extension.
func (r Result) WithExtension(extensionID uuid.UUID) Result {
	r.ExtensionID = extensionID
	return r
}
