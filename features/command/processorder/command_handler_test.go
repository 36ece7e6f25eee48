package processorder_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/processorder"
	"github.com/shelfside/book-reservations-go/shell"
	"github.com/shelfside/book-reservations-go/testutil/inmemorystore"
	"github.com/shelfside/book-reservations-go/testutil/spies"
)

func Test_CommandHandler_Handle_Success_IssuesAndNotifiesExactlyOnce(t *testing.T) {
	// arrange
	store := inmemorystore.NewStore()
	notifier := spies.NewNotifierSpy()
	handler := processorder.NewCommandHandler(store, notifier, processorder.WithLogger(spies.NewLoggerSpy()))

	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	store.AddBook(core.Book{ID: bookID})
	reservation := core.BuildReservation(bookID, memberID, now.Add(-time.Hour))
	store.SeedCurrentReservation(reservation)
	order := core.BuildOrder(bookID, memberID, core.OrderUnprocessed, now.Add(-time.Hour)).
		WithReservation(reservation.ID)
	store.SeedOrder(order)

	command := processorder.BuildCommand(bookID, order.ID, uuid.New(), now)

	// act
	result, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeOrderProcessed, result.Outcome)

	storedOrder, found := store.Order(order.ID)
	require.True(t, found)
	assert.Equal(t, core.OrderProcessed, storedOrder.Status)
	assert.True(t, storedOrder.MemberNotified)

	storedReservation, found := store.Reservation(reservation.ID)
	require.True(t, found)
	assert.Equal(t, core.ReservationIssued, storedReservation.Status)
	require.NotNil(t, storedReservation.Term)

	assert.Equal(t, []string{string(core.NotificationReservationReadyForPickup)}, notifier.SentKinds())

	// act again: processing the same order is idempotent and must not
	// notify the member a second time
	notifier.Reset()
	result, err = handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.OutcomeOrderProcessed, result.Outcome)
	assert.Empty(t, notifier.Sent())
	assert.Equal(t, shell.StateVersion(1), store.Version(bookID))
}
