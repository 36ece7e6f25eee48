package core

import (
	"time"

	"github.com/google/uuid"
)

// Availability is the thin read-model derived purely from a book's linked
// reservation and its order queue. It never mutates anything.

// IsAvailable reports whether the book has no current reservation.
func (s BookState) IsAvailable() bool {
	return s.Reservation == nil
}

// IsReserved reports whether the book's current reservation is in Reserved state.
func (s BookState) IsReserved() bool {
	return s.Reservation != nil && s.Reservation.Status == ReservationReserved
}

// IsIssued reports whether the book's current reservation is in Issued state.
func (s BookState) IsIssued() bool {
	return s.Reservation != nil && s.Reservation.Status == ReservationIssued
}

// IsBooked reports whether the book is reserved or issued.
func (s BookState) IsBooked() bool {
	return s.IsReserved() || s.IsIssued()
}

// ReservationTermDate returns the due date when the book is issued, nil otherwise.
func (s BookState) ReservationTermDate() *time.Time {
	if !s.IsIssued() {
		return nil
	}

	return s.Reservation.Term
}

// AmountInQueue counts the book's orders waiting in the queue.
func (s BookState) AmountInQueue() int {
	count := 0

	for _, order := range s.Orders {
		if order.Status == OrderInQueue {
			count++
		}
	}

	return count
}

// IsBookedByMember reports whether the book's current reservation belongs to the member.
func (s BookState) IsBookedByMember(memberID uuid.UUID) bool {
	return s.IsBooked() && s.Reservation.MemberID == memberID
}

// IsIssuedToMember reports whether the book is issued to the member.
func (s BookState) IsIssuedToMember(memberID uuid.UUID) bool {
	return s.IsIssued() && s.Reservation.MemberID == memberID
}

// IsReservedByMember reports whether the book is reserved (not yet issued) by the member.
func (s BookState) IsReservedByMember(memberID uuid.UUID) bool {
	return s.IsReserved() && s.Reservation.MemberID == memberID
}

// IsQueuedByMember reports whether the member has an order waiting in the
// book's queue. A book with no active reservation cannot have a live queue.
func (s BookState) IsQueuedByMember(memberID uuid.UUID) bool {
	if !s.IsBooked() {
		return false
	}

	for _, order := range s.Orders {
		if order.MemberID == memberID && order.Status == OrderInQueue {
			return true
		}
	}

	return false
}
