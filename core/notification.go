package core

import (
	"github.com/google/uuid"
)

// NotificationKind identifies an asynchronous notification triggered by a
// state transition. Delivery is fire-and-forget and happens only after the
// decision's changes have been committed.
type NotificationKind string

const (
	// NotificationOrderCreated tells the librarian channel a member's order
	// is waiting to be processed. Also emitted when a queued order is
	// promoted after a book frees up.
	NotificationOrderCreated NotificationKind = "order-created"

	// NotificationReservationReadyForPickup tells the member their book has
	// been issued and is ready for pickup. Emitted at most once per order.
	NotificationReservationReadyForPickup NotificationKind = "reservation-ready-for-pickup"

	// NotificationExtensionRequested tells the librarian channel a member
	// asked for a term extension.
	NotificationExtensionRequested NotificationKind = "extension-requested"

	// NotificationExtensionApproved tells the member their term extension
	// was approved.
	NotificationExtensionApproved NotificationKind = "extension-approved"
)

// Notification is a side-effect intent produced by a decision. IDs that do
// not apply to the kind are left as uuid.Nil.
type Notification struct {
	Kind          NotificationKind
	BookID        uuid.UUID
	MemberID      uuid.UUID
	OrderID       uuid.UUID
	ReservationID uuid.UUID
}
