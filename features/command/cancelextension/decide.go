package cancelextension

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the extension withdrawal protocol. The success message
// tells the member how many approvals they have left for this book.
//
// Business Rules:
//
//	GIVEN: A book and a member
//	WHEN: CancelExtension command is received
//	THEN: the member's Requested extension transitions to Cancelled and the
//	      member is told how many extensions remain available
//	REJECT: "No reservation found" if the book's current reservation does not
//	        belong to the member
//	REJECT: "No cancellable reservation extension found" if no extension is
//	        awaiting a decision
func Decide(state core.BookState, command Command) core.DecisionResult {
	if state.Reservation == nil || state.Reservation.MemberID != command.MemberID {
		return core.RejectedDecision(core.OutcomeNoReservationFound)
	}

	requested := state.RequestedExtension()
	if requested == nil {
		return core.RejectedDecision(core.OutcomeNoRequestedExtension)
	}

	cancelled, err := requested.WithStatus(core.ExtensionCancelled, &command.MemberID, command.RequestedAt)
	if err != nil {
		return core.FailedDecision(err)
	}

	return core.AcceptedDecisionWithMessage(
		core.OutcomeExtensionCancelled,
		core.ExtensionsLeftHint(state.ExtensionsAvailable()),
		[]core.Change{core.UpdateExtension{Extension: cancelled}},
	)
}
