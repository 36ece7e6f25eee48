package approveextension

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the extension approval protocol. Approval extends the
// reservation's term by one full lending term in the same atomic unit.
//
// Business Rules:
//
//	GIVEN: A book and an extension identified by the librarian
//	WHEN: ApproveExtension command is received
//	THEN: the Requested extension transitions to Approved with the librarian
//	      recorded as the processor, the reservation's term is pushed out by
//	      one lending term, and the member is notified
//	IDEMPOTENT: an already approved extension is acknowledged without
//	            extending the term again
//	REJECT: "No cancellable reservation extension found" if the extension
//	        does not exist for the book's current reservation or is no longer
//	        awaiting a decision
func Decide(state core.BookState, command Command) core.DecisionResult {
	extension := state.ExtensionByID(command.ExtensionID)
	if extension == nil {
		return core.RejectedDecision(core.OutcomeNoRequestedExtension)
	}

	if extension.Status == core.ExtensionApproved {
		return core.IdempotentDecision(core.OutcomeExtensionApproved)
	}

	if extension.Status != core.ExtensionRequested || state.Reservation == nil ||
		state.Reservation.ID != extension.ReservationID {
		return core.RejectedDecision(core.OutcomeNoRequestedExtension)
	}

	approved, err := extension.WithStatus(core.ExtensionApproved, &command.StaffID, command.RequestedAt)
	if err != nil {
		return core.FailedDecision(err)
	}

	reservation := state.Reservation.WithExtendedTerm(command.RequestedAt)

	notification := core.Notification{
		Kind:          core.NotificationExtensionApproved,
		BookID:        state.Book.ID,
		MemberID:      reservation.MemberID,
		ReservationID: reservation.ID,
	}

	changes := []core.Change{
		core.UpdateExtension{Extension: approved},
		core.UpdateReservation{Reservation: reservation},
	}

	return core.AcceptedDecision(core.OutcomeExtensionApproved, changes, notification)
}
