package memberreservations

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

// ReservationsLoader defines the storage interface needed by the QueryHandler.
type ReservationsLoader interface {
	LoadActiveReservations(ctx context.Context, memberID uuid.UUID) ([]core.Reservation, error)
}

// QueryHandler orchestrates the query workflow: load the member's active
// reservations and delegate the projection to the pure core function.
type QueryHandler struct {
	loader ReservationsLoader
}

// NewQueryHandler creates a new QueryHandler with the provided loader dependency.
func NewQueryHandler(loader ReservationsLoader) QueryHandler {
	return QueryHandler{
		loader: loader,
	}
}

// Handle executes the query processing workflow: Load -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (MemberReservations, error) {
	reservations, err := h.loader.LoadActiveReservations(ctx, query.MemberID)
	if err != nil {
		return MemberReservations{}, err
	}

	return ProjectMemberReservations(reservations, query, time.Now()), nil
}
