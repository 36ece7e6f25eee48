package core

import (
	"time"
)

// PromoteNextOrder computes the queue promotion that accompanies every
// terminal reservation transition: the oldest InQueue order (if any) becomes
// Unprocessed, a fresh reservation is created for its member and linked to
// the book, and the librarian channel is notified. With an empty queue the
// book link is simply cleared and the book becomes available.
//
// The returned changes belong to the same atomic unit as the terminal
// transition that triggered them, so exactly one promotion occurs per
// terminal transition and a book is never left reserved without a live
// reservation.
func PromoteNextOrder(s BookState, now time.Time) ([]Change, []Notification) {
	changes := []Change{UnlinkBookReservation{BookID: s.Book.ID}}

	next := s.NextQueuedOrder()
	if next == nil {
		return changes, nil
	}

	promoted, err := next.WithStatus(OrderUnprocessed, nil, "")
	if err != nil {
		// InQueue -> Unprocessed is always reachable; guarded by the transition table.
		return changes, nil
	}

	reservation := BuildReservation(s.Book.ID, promoted.MemberID, now)
	promoted = promoted.WithReservation(reservation.ID)

	changes = append(changes,
		InsertReservation{Reservation: reservation},
		UpdateOrder{Order: promoted},
		LinkBookReservation{BookID: s.Book.ID, ReservationID: reservation.ID},
	)

	notifications := []Notification{{
		Kind:          NotificationOrderCreated,
		BookID:        s.Book.ID,
		MemberID:      promoted.MemberID,
		OrderID:       promoted.ID,
		ReservationID: reservation.ID,
	}}

	return changes, notifications
}
