package requestextension

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the extension request protocol. At most one extension per
// reservation is in flight, and requests are only accepted while another
// approval is still possible.
//
// Business Rules:
//
//	GIVEN: A book and a member
//	WHEN: RequestExtension command is received
//	THEN: a new extension in Requested state is created for the member's
//	      issued reservation and the librarian channel is notified
//	REJECT: "No reservation found" if the book's current reservation does not
//	        belong to the member
//	REJECT: "Reservation extension already requested" if an extension is
//	        already awaiting a librarian's decision
//	REJECT: "Reservation cannot be extended" if the reservation is not issued
//	        or the approval cap is exhausted
func Decide(state core.BookState, command Command) core.DecisionResult {
	if state.Reservation == nil || state.Reservation.MemberID != command.MemberID {
		return core.RejectedDecision(core.OutcomeNoReservationFound)
	}

	if state.RequestedExtension() != nil {
		return core.RejectedDecision(core.OutcomeExtensionAlreadyRequested)
	}

	if !state.IsExtendable() {
		return core.RejectedDecision(core.OutcomeNotExtendable)
	}

	extension := core.BuildReservationExtension(state.Reservation.ID, command.RequestedAt)

	notification := core.Notification{
		Kind:          core.NotificationExtensionRequested,
		BookID:        state.Book.ID,
		MemberID:      command.MemberID,
		ReservationID: state.Reservation.ID,
	}

	return core.AcceptedDecision(
		core.OutcomeExtensionRequested,
		[]core.Change{core.InsertExtension{Extension: extension}},
		notification,
	)
}
