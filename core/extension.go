package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExtensionStatus identifies where a term extension request is in its lifecycle.
type ExtensionStatus string

const (
	ExtensionRequested ExtensionStatus = "R"
	ExtensionApproved  ExtensionStatus = "A"
	ExtensionRefused   ExtensionStatus = "RF"
	ExtensionCancelled ExtensionStatus = "X"
)

// ErrIllegalExtensionTransition indicates an extension status transition that
// is not reachable from the extension's current status.
var ErrIllegalExtensionTransition = errors.New("illegal extension status transition")

var extensionTransitions = map[ExtensionStatus][]ExtensionStatus{
	ExtensionRequested: {ExtensionApproved, ExtensionRefused, ExtensionCancelled},
}

// IsTerminal reports whether the status ends the extension workflow.
func (s ExtensionStatus) IsTerminal() bool {
	return s != ExtensionRequested
}

// CanTransitionTo reports whether the target status is reachable from s.
func (s ExtensionStatus) CanTransitionTo(target ExtensionStatus) bool {
	for _, reachable := range extensionTransitions[s] {
		if reachable == target {
			return true
		}
	}

	return false
}

// ReservationExtension is a member's request to push out the due term of an
// issued reservation. Approval extends the parent reservation's term exactly
// once; refusal and cancellation leave the term untouched.
type ReservationExtension struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Status        ExtensionStatus
	ProcessedBy   *uuid.UUID
	CreatedAt     time.Time
	ModifiedAt    time.Time
}

// BuildReservationExtension creates a new extension request.
func BuildReservationExtension(reservationID uuid.UUID, createdAt time.Time) ReservationExtension {
	return ReservationExtension{
		ID:            uuid.New(),
		ReservationID: reservationID,
		Status:        ExtensionRequested,
		CreatedAt:     ToTimestamp(createdAt),
	}
}

// WithStatus returns a copy of the extension transitioned to the target
// status, recording the processing staff member when one is given.
func (e ReservationExtension) WithStatus(target ExtensionStatus, processedBy *uuid.UUID, now time.Time) (ReservationExtension, error) {
	if !e.Status.CanTransitionTo(target) {
		return e, fmt.Errorf("%w: %s -> %s", ErrIllegalExtensionTransition, e.Status, target)
	}

	updated := e
	updated.Status = target
	updated.ModifiedAt = ToTimestamp(now)

	if processedBy != nil {
		updated.ProcessedBy = processedBy
	}

	return updated, nil
}
