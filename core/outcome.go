package core

import (
	"fmt"
)

// Outcome names the caller-facing result of a protocol operation. Each value
// maps 1:1 to a user-visible message; the API layer consuming the engine
// turns rejections into 4xx-equivalent responses without inspecting errors.
type Outcome string

const (
	OutcomeCreated                   Outcome = "Created"
	OutcomeRejectedMaxReservations   Outcome = "RejectedMaxReservations"
	OutcomeRejectedDuplicateOrder    Outcome = "RejectedDuplicateOrder"
	OutcomeRejectedQueueFull         Outcome = "RejectedQueueFull"
	OutcomeCancelledOk               Outcome = "CancelledOk"
	OutcomeNoCancellableOrder        Outcome = "NoCancellableOrder"
	OutcomeOrderProcessed            Outcome = "OrderProcessed"
	OutcomeOrderRefused              Outcome = "OrderRefused"
	OutcomeNoProcessableOrder        Outcome = "NoProcessableOrder"
	OutcomeReservationCompleted      Outcome = "ReservationCompleted"
	OutcomeReservationAssigned       Outcome = "ReservationAssigned"
	OutcomeBookUnavailable           Outcome = "BookUnavailable"
	OutcomeExtensionRequested        Outcome = "ExtensionRequested"
	OutcomeExtensionAlreadyRequested Outcome = "ExtensionAlreadyRequested"
	OutcomeNotExtendable             Outcome = "NotExtendable"
	OutcomeNoReservationFound        Outcome = "NoReservationFound"
	OutcomeNoRequestedExtension      Outcome = "NoRequestedExtension"
	OutcomeExtensionApproved         Outcome = "ExtensionApproved"
	OutcomeExtensionRefused          Outcome = "ExtensionRefused"
	OutcomeExtensionCancelled        Outcome = "ExtensionCancelled"
)

// MsgBookReserved and MsgBookPutInQueue are the two success messages of the
// order creation protocol, picked by availability at creation time.
const (
	MsgBookReserved   = "Book reserved"
	MsgBookPutInQueue = "Book reservation request put in queue"
)

var outcomeMessages = map[Outcome]string{
	OutcomeCreated:                   MsgBookReserved,
	OutcomeRejectedMaxReservations:   "Maximum number of reservations reached",
	OutcomeRejectedDuplicateOrder:    "Book is already ordered or your order is in queue",
	OutcomeRejectedQueueFull:         "Maximum number of orders in queue reached",
	OutcomeCancelledOk:               "Order cancelled",
	OutcomeNoCancellableOrder:        "No cancellable order found",
	OutcomeOrderProcessed:            "Order processed",
	OutcomeOrderRefused:              "Order refused",
	OutcomeNoProcessableOrder:        "No processable order found",
	OutcomeReservationCompleted:      "Book returned",
	OutcomeReservationAssigned:       "Reservation assigned",
	OutcomeBookUnavailable:           "Book is not available",
	OutcomeExtensionRequested:        "Reservation extension requested",
	OutcomeExtensionAlreadyRequested: "Reservation extension already requested",
	OutcomeNotExtendable:             "Reservation cannot be extended",
	OutcomeNoReservationFound:        "No reservation found",
	OutcomeNoRequestedExtension:      "No cancellable reservation extension found",
	OutcomeExtensionApproved:         "Reservation extension approved",
	OutcomeExtensionRefused:          "Reservation extension refused",
	OutcomeExtensionCancelled:        "Reservation extension cancelled",
}

// IsRejection reports whether the outcome is a policy rejection: expected,
// user-facing, and carrying no state change.
func (o Outcome) IsRejection() bool {
	switch o {
	case OutcomeRejectedMaxReservations,
		OutcomeBookUnavailable,
		OutcomeRejectedDuplicateOrder,
		OutcomeRejectedQueueFull,
		OutcomeNoCancellableOrder,
		OutcomeNoProcessableOrder,
		OutcomeExtensionAlreadyRequested,
		OutcomeNotExtendable,
		OutcomeNoReservationFound,
		OutcomeNoRequestedExtension:
		return true
	default:
		return false
	}
}

// Message returns the user-visible message for the outcome.
func (o Outcome) Message() string {
	return outcomeMessages[o]
}

// ExtensionsLeftHint phrases how many extensions remain for a reservation,
// shown to members after cancelling an extension request.
func ExtensionsLeftHint(available int) string {
	switch {
	case available <= 0:
		return "You have no more extensions available for this book"
	case available == 1:
		return "You have 1 more extension available for this book"
	default:
		return fmt.Sprintf("You have %d more extensions available for this book", available)
	}
}
