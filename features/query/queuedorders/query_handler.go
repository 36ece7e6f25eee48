package queuedorders

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/shell"
)

// BookStateStore defines the storage interface needed by the QueryHandler.
type BookStateStore interface {
	LoadBookState(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID) (core.BookState, shell.StateVersion, error)
}

// QueryHandler orchestrates the query workflow: load the book's state and
// delegate the projection to the pure core function.
type QueryHandler struct {
	store BookStateStore
}

// NewQueryHandler creates a new QueryHandler with the provided store dependency.
func NewQueryHandler(store BookStateStore) QueryHandler {
	return QueryHandler{
		store: store,
	}
}

// Handle executes the query processing workflow: Load -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (QueuedOrders, error) {
	state, _, err := h.store.LoadBookState(ctx, query.BookID, uuid.Nil)
	if err != nil {
		return QueuedOrders{}, err
	}

	return ProjectQueuedOrders(state, query), nil
}
