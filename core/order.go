package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus identifies where an order is in its lifecycle.
// Members may cancel orders; librarians refuse and process them.
type OrderStatus string

const (
	OrderUnprocessed     OrderStatus = "U"
	OrderRefused         OrderStatus = "R"
	OrderInQueue         OrderStatus = "Q"
	OrderMemberCancelled OrderStatus = "MC"
	OrderProcessed       OrderStatus = "P"
)

// ErrIllegalOrderTransition indicates an order status transition that is not
// reachable from the order's current status.
var ErrIllegalOrderTransition = errors.New("illegal order status transition")

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderInQueue:     {OrderUnprocessed, OrderRefused, OrderMemberCancelled},
	OrderUnprocessed: {OrderProcessed, OrderRefused, OrderMemberCancelled},
	// Processed is normally terminal, but a processed order whose reservation
	// was never issued can still be cancelled or refused by unwinding the grant.
	OrderProcessed: {OrderMemberCancelled, OrderRefused},
}

// IsTerminal reports whether the status ends the order's normal lifecycle.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderProcessed, OrderRefused, OrderMemberCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the target status is reachable from s.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, reachable := range orderTransitions[s] {
		if reachable == target {
			return true
		}
	}

	return false
}

// Order is a member's request record for a book, kept independently of whether
// the request was immediately granted. Orders are the causal history of who
// asked and when; the bound reservation (if any) is the canonical "is this
// book booked" record. Seq breaks FIFO ties between equal creation timestamps
// and is assigned by the store on insert.
type Order struct {
	ID             uuid.UUID
	BookID         uuid.UUID
	MemberID       uuid.UUID
	ReservationID  *uuid.UUID
	Status         OrderStatus
	ChangeReason   string
	LastModifiedBy *uuid.UUID
	MemberNotified bool
	CreatedAt      time.Time
	Seq            int64
}

// BuildOrder creates a new order for a member requesting a book.
func BuildOrder(bookID uuid.UUID, memberID uuid.UUID, status OrderStatus, createdAt time.Time) Order {
	return Order{
		ID:        uuid.New(),
		BookID:    bookID,
		MemberID:  memberID,
		Status:    status,
		CreatedAt: ToTimestamp(createdAt),
	}
}

// WithStatus returns a copy of the order transitioned to the target status,
// recording the actor and an optional free-text reason for librarian-driven
// changes. An unreachable target yields ErrIllegalOrderTransition.
func (o Order) WithStatus(target OrderStatus, actor *uuid.UUID, reason string) (Order, error) {
	if !o.Status.CanTransitionTo(target) {
		return o, fmt.Errorf("%w: %s -> %s", ErrIllegalOrderTransition, o.Status, target)
	}

	updated := o
	updated.Status = target
	updated.LastModifiedBy = actor

	if reason != "" {
		updated.ChangeReason = reason
	}

	return updated, nil
}

// WithReservation returns a copy of the order bound to the given reservation.
func (o Order) WithReservation(reservationID uuid.UUID) Order {
	updated := o
	updated.ReservationID = &reservationID

	return updated
}
