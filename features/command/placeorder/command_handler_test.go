package placeorder_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/placeorder"
	"github.com/shelfside/book-reservations-go/shell"
	"github.com/shelfside/book-reservations-go/testutil/inmemorystore"
	"github.com/shelfside/book-reservations-go/testutil/spies"
)

func Test_CommandHandler_Handle_Success_PersistsTheGrantAndNotifies(t *testing.T) {
	// arrange
	store := inmemorystore.NewStore()
	notifier := spies.NewNotifierSpy()
	handler := placeorder.NewCommandHandler(store, notifier, placeorder.WithLogger(spies.NewLoggerSpy()))

	bookID := uuid.New()
	memberID := uuid.New()
	store.AddBook(core.Book{ID: bookID, Title: "The Go Programming Language"})

	command := placeorder.BuildCommand(bookID, memberID, time.Now())

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeCreated, result.Outcome)
	assert.Equal(t, core.MsgBookReserved, result.Message)
	require.NotEqual(t, uuid.Nil, result.OrderID)
	require.NotEqual(t, uuid.Nil, result.ReservationID)

	reservation, found := store.Reservation(result.ReservationID)
	require.True(t, found)
	assert.Equal(t, memberID, reservation.MemberID)
	assert.Equal(t, core.ReservationReserved, reservation.Status)

	order, found := store.Order(result.OrderID)
	require.True(t, found)
	assert.Equal(t, core.OrderUnprocessed, order.Status)

	book, found := store.Book(bookID)
	require.True(t, found)
	require.NotNil(t, book.ReservationID)
	assert.Equal(t, reservation.ID, *book.ReservationID)

	assert.Equal(t, shell.StateVersion(1), store.Version(bookID))
	assert.Equal(t, []string{string(core.NotificationOrderCreated)}, notifier.SentKinds())
}

func Test_CommandHandler_Handle_Rejection_PersistsNothing(t *testing.T) {
	// arrange
	store := inmemorystore.NewStore()
	notifier := spies.NewNotifierSpy()
	handler := placeorder.NewCommandHandler(store, notifier)

	bookID := uuid.New()
	memberID := uuid.New()
	store.AddBook(core.Book{ID: bookID})

	holder := core.BuildReservation(bookID, uuid.New(), time.Now().Add(-time.Hour))
	store.SeedCurrentReservation(holder)
	store.SeedOrder(core.BuildOrder(bookID, memberID, core.OrderInQueue, time.Now().Add(-time.Hour)))

	command := placeorder.BuildCommand(bookID, memberID, time.Now())

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeRejectedDuplicateOrder, result.Outcome)
	assert.True(t, result.IsRejection())
	assert.Equal(t, shell.StateVersion(0), store.Version(bookID))
	assert.Empty(t, notifier.Sent())
}

func Test_CommandHandler_Handle_UnknownBook_ReturnsError(t *testing.T) {
	// arrange
	handler := placeorder.NewCommandHandler(inmemorystore.NewStore(), spies.NewNotifierSpy())
	command := placeorder.BuildCommand(uuid.New(), uuid.New(), time.Now())

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, shell.ErrBookNotFound)
}

func Test_CommandHandler_Handle_RetriesOnConcurrencyConflict(t *testing.T) {
	// arrange
	store := inmemorystore.NewStore()
	bookID := uuid.New()
	store.AddBook(core.Book{ID: bookID})

	conflicting := &conflictOnFirstCommit{Store: store}
	handler := placeorder.NewCommandHandler(
		conflicting,
		spies.NewNotifierSpy(),
		placeorder.WithRetryOptions(shell.WithBaseDelay(time.Millisecond)),
	)

	command := placeorder.BuildCommand(bookID, uuid.New(), time.Now())

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeCreated, result.Outcome)
	assert.Equal(t, 2, conflicting.commits)
}

// conflictOnFirstCommit simulates losing a version race once.
type conflictOnFirstCommit struct {
	*inmemorystore.Store
	commits int
}

func (c *conflictOnFirstCommit) CommitChanges(
	ctx context.Context,
	bookID uuid.UUID,
	expected shell.StateVersion,
	changes []core.Change,
) error {
	c.commits++
	if c.commits == 1 {
		return shell.ErrConcurrencyConflict
	}

	return c.Store.CommitChanges(ctx, bookID, expected, changes)
}
