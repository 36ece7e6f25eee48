package memberreservations

import (
	"slices"
	"time"

	"github.com/shelfside/book-reservations-go/core"
)

// ProjectMemberReservations implements the member's "my books" listing. This
// is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: The member's reservations in a non-terminal state
//	WHEN: MemberReservations query is executed
//	THEN: MemberReservations struct is returned listing each active
//	      reservation with its book, due date, and overdue days, oldest first
//	EXCLUDES: Completed, cancelled, and refused reservations
func ProjectMemberReservations(reservations []core.Reservation, query Query, now time.Time) MemberReservations {
	active := make([]core.Reservation, 0, len(reservations))

	for _, reservation := range reservations {
		if reservation.IsActive() {
			active = append(active, reservation)
		}
	}

	slices.SortFunc(active, func(a, b core.Reservation) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	infos := make([]ReservationInfo, 0, len(active))
	for _, reservation := range active {
		infos = append(infos, ReservationInfo{
			ReservationID: reservation.ID,
			BookID:        reservation.BookID,
			Status:        string(reservation.Status),
			Term:          reservation.Term,
			OverdueDays:   reservation.OverdueDays(now),
			CreatedAt:     reservation.CreatedAt,
		})
	}

	return MemberReservations{
		MemberID:     query.MemberID,
		Reservations: infos,
		Count:        len(infos),
	}
}
