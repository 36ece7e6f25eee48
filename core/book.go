package core

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog item. ReservationID links the book to its current
// reservation and is non-nil iff the book is currently reserved or issued;
// it is mutated only through the decision functions in this package.
type Book struct {
	ID          uuid.UUID
	Title       string
	AuthorID    uuid.UUID
	PublisherID uuid.UUID
	ISBN        string
	Language    string
	PublishedAt int
	Pages       int

	ReservationID *uuid.UUID
	CreatedAt     time.Time
	ModifiedAt    time.Time
}

// BookState is the per-book aggregate snapshot all decisions are made over:
// the book row, its current reservation (with that reservation's extensions),
// every order ever placed for the book, and the requesting member's active
// reservation count across all books. The store loads it under the book's
// optimistic version so concurrent decisions on the same book cannot both
// commit.
type BookState struct {
	Book        Book
	Reservation *Reservation
	Extensions  []ReservationExtension
	Orders      []Order

	// MemberActiveReservations counts the requesting member's reservations in
	// Reserved or Issued status across the whole catalog, for the cap check.
	MemberActiveReservations int
}

// NextQueuedOrder returns the oldest InQueue order for the book, FIFO by
// creation timestamp with ties broken by insertion sequence, or nil when the
// queue is empty.
func (s BookState) NextQueuedOrder() *Order {
	var next *Order

	for i := range s.Orders {
		order := &s.Orders[i]
		if order.Status != OrderInQueue {
			continue
		}

		if next == nil || orderedBefore(*order, *next) {
			next = order
		}
	}

	if next == nil {
		return nil
	}

	found := *next

	return &found
}

// orderedBefore is the FIFO ordering key for queued orders.
func orderedBefore(a Order, b Order) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.Seq < b.Seq
	}

	return a.CreatedAt.Before(b.CreatedAt)
}

// MaxReservationsReached reports whether the requesting member already holds
// the maximum number of simultaneously active reservations.
func (s BookState) MaxReservationsReached() bool {
	return s.MemberActiveReservations >= MaxReservationsPerMember
}

// QueueFull reports whether the book's queue already holds the maximum number
// of InQueue orders.
func (s BookState) QueueFull() bool {
	return s.AmountInQueue() >= MaxQueuedOrdersAllowed
}

// CancellableOrder returns the member's single order that can still be
// cancelled for this book: one that is Unprocessed, InQueue, or Processed
// while its reservation is still Reserved (granted but not yet picked up).
// Returns nil when no such order exists.
func (s BookState) CancellableOrder(memberID uuid.UUID) *Order {
	for i := range s.Orders {
		order := s.Orders[i]
		if order.MemberID != memberID {
			continue
		}

		switch order.Status {
		case OrderUnprocessed, OrderInQueue:
			return &order
		case OrderProcessed:
			if s.Reservation != nil &&
				order.ReservationID != nil &&
				*order.ReservationID == s.Reservation.ID &&
				s.Reservation.Status == ReservationReserved {
				return &order
			}
		}
	}

	return nil
}

// HasDuplicateOrder reports whether the member already has an order for this
// book that blocks placing another one. The blocking set is the same as the
// cancellable set: a pending request, a queued request, or a granted request
// whose reservation has not been issued yet.
func (s BookState) HasDuplicateOrder(memberID uuid.UUID) bool {
	return s.CancellableOrder(memberID) != nil
}

// UnprocessedOrder returns the member's Unprocessed order for this book, or
// nil when there is none.
func (s BookState) UnprocessedOrder(memberID uuid.UUID) *Order {
	for i := range s.Orders {
		order := s.Orders[i]
		if order.MemberID == memberID && order.Status == OrderUnprocessed {
			return &order
		}
	}

	return nil
}

// OrderByID returns the order with the given ID, or nil when the book has no
// such order.
func (s BookState) OrderByID(orderID uuid.UUID) *Order {
	for i := range s.Orders {
		order := s.Orders[i]
		if order.ID == orderID {
			return &order
		}
	}

	return nil
}

// OrderForReservation returns the order bound to the given reservation, or
// nil when no order claims it.
func (s BookState) OrderForReservation(reservationID uuid.UUID) *Order {
	for i := range s.Orders {
		order := s.Orders[i]
		if order.ReservationID != nil && *order.ReservationID == reservationID {
			return &order
		}
	}

	return nil
}

// RequestedExtension returns the current reservation's extension in Requested
// state, or nil. At most one extension per reservation is in flight.
func (s BookState) RequestedExtension() *ReservationExtension {
	for i := range s.Extensions {
		extension := s.Extensions[i]
		if extension.Status == ExtensionRequested {
			return &extension
		}
	}

	return nil
}

// ExtensionByID returns the current reservation's extension with the given
// ID, or nil when it has no such extension.
func (s BookState) ExtensionByID(extensionID uuid.UUID) *ReservationExtension {
	for i := range s.Extensions {
		extension := s.Extensions[i]
		if extension.ID == extensionID {
			return &extension
		}
	}

	return nil
}

// ApprovedExtensions counts the current reservation's extensions that reached
// Approved.
func (s BookState) ApprovedExtensions() int {
	count := 0

	for _, extension := range s.Extensions {
		if extension.Status == ExtensionApproved {
			count++
		}
	}

	return count
}

// ExtensionsAvailable returns how many more extensions the current
// reservation may still have approved.
func (s BookState) ExtensionsAvailable() int {
	available := MaxExtensionsPerMember - s.ApprovedExtensions()
	if available < 0 {
		return 0
	}

	return available
}

// IsExtendable reports whether the current reservation can take another
// extension request: it must be issued and below the approval cap.
func (s BookState) IsExtendable() bool {
	return s.Reservation != nil &&
		s.Reservation.Status == ReservationIssued &&
		s.ApprovedExtensions() < MaxExtensionsPerMember
}
