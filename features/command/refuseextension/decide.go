package refuseextension

import (
	"github.com/shelfside/book-reservations-go/core"
)

// Decide implements the extension refusal protocol.
//
// Business Rules:
//
//	GIVEN: A book and an extension identified by the librarian
//	WHEN: RefuseExtension command is received
//	THEN: the Requested extension transitions to Refused with the librarian
//	      recorded as the processor; the reservation's term is unchanged
//	IDEMPOTENT: an already refused extension is acknowledged without changes
//	REJECT: "No cancellable reservation extension found" if the extension
//	        does not exist for the book's current reservation or is no longer
//	        awaiting a decision
func Decide(state core.BookState, command Command) core.DecisionResult {
	extension := state.ExtensionByID(command.ExtensionID)
	if extension == nil {
		return core.RejectedDecision(core.OutcomeNoRequestedExtension)
	}

	if extension.Status == core.ExtensionRefused {
		return core.IdempotentDecision(core.OutcomeExtensionRefused)
	}

	if extension.Status != core.ExtensionRequested {
		return core.RejectedDecision(core.OutcomeNoRequestedExtension)
	}

	refused, err := extension.WithStatus(core.ExtensionRefused, &command.StaffID, command.RequestedAt)
	if err != nil {
		return core.FailedDecision(err)
	}

	return core.AcceptedDecision(core.OutcomeExtensionRefused, []core.Change{
		core.UpdateExtension{Extension: refused},
	})
}
