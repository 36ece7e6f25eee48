package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus identifies where a reservation is in its lifecycle.
// The persisted codes match the original catalog data.
type ReservationStatus string

const (
	ReservationReserved  ReservationStatus = "R"
	ReservationIssued    ReservationStatus = "I"
	ReservationCompleted ReservationStatus = "C"
	ReservationRefused   ReservationStatus = "RF"
	ReservationCancelled ReservationStatus = "X"
)

// ErrIllegalReservationTransition indicates a transition that is not reachable
// from the reservation's current status. This is an invariant violation, not a
// user-facing rejection: callers requesting it have a bug or corrupted data.
var ErrIllegalReservationTransition = errors.New("illegal reservation status transition")

// reservationTransitions is the reachability table of the reservation state machine:
// Reserved -> Issued -> {Completed, Cancelled, Refused}, with Reserved also
// allowed to terminate directly without ever being issued.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationReserved: {ReservationIssued, ReservationCancelled, ReservationRefused},
	ReservationIssued:   {ReservationCompleted, ReservationCancelled, ReservationRefused},
}

// IsTerminal reports whether the status is one of the done states.
func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case ReservationCompleted, ReservationCancelled, ReservationRefused:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the target status is reachable from s.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, reachable := range reservationTransitions[s] {
		if reachable == target {
			return true
		}
	}

	return false
}

// Reservation is a single hold on one book by one member.
// At most one reservation per book is in a non-terminal state at any time;
// Term is nil unless the reservation is or was issued.
type Reservation struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	MemberID   uuid.UUID
	Status     ReservationStatus
	Term       *time.Time
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// BuildReservation creates a new reservation in the initial Reserved state.
func BuildReservation(bookID uuid.UUID, memberID uuid.UUID, createdAt time.Time) Reservation {
	return Reservation{
		ID:        uuid.New(),
		BookID:    bookID,
		MemberID:  memberID,
		Status:    ReservationReserved,
		CreatedAt: ToTimestamp(createdAt),
	}
}

// IsActive reports whether the reservation currently holds its book.
func (r Reservation) IsActive() bool {
	return !r.Status.IsTerminal()
}

// WithStatus returns a copy of the reservation transitioned to the target status.
// Reserved -> Issued sets the term to now + ReservationTerm unless a term was
// already set. An unreachable target yields ErrIllegalReservationTransition and
// the reservation is returned unchanged.
func (r Reservation) WithStatus(target ReservationStatus, now time.Time) (Reservation, error) {
	if !r.Status.CanTransitionTo(target) {
		return r, fmt.Errorf("%w: %s -> %s", ErrIllegalReservationTransition, r.Status, target)
	}

	updated := r
	updated.Status = target
	updated.ModifiedAt = ToTimestamp(now)

	if target == ReservationIssued && updated.Term == nil {
		term := DefaultTerm(now)
		updated.Term = &term
	}

	return updated, nil
}

// WithExtendedTerm returns a copy of the reservation with the term pushed out
// by one ReservationTerm. Approving an extension calls this exactly once.
func (r Reservation) WithExtendedTerm(now time.Time) Reservation {
	updated := r
	updated.ModifiedAt = ToTimestamp(now)

	if r.Term != nil {
		extended := r.Term.Add(ReservationTerm)
		updated.Term = &extended
	}

	return updated
}

// OverdueDays returns 0 for reservations that are not issued or carry no term,
// otherwise the absolute distance between now and the term in days.
func (r Reservation) OverdueDays(now time.Time) int {
	if r.Status != ReservationIssued || r.Term == nil {
		return 0
	}

	days := int(now.Sub(*r.Term).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days
}

// IsOverdue reports whether the reservation is issued and past its term.
func (r Reservation) IsOverdue(now time.Time) bool {
	return r.Status == ReservationIssued && r.Term != nil && now.After(*r.Term) && r.OverdueDays(now) > 0
}
