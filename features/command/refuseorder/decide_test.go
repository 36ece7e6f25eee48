package refuseorder_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/refuseorder"
)

func Test_Decide_Success_RefusingAQueuedOrder(t *testing.T) {
	// arrange
	bookID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	queued := core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, now.Add(-time.Hour))
	state := core.BookState{Book: core.Book{ID: bookID}, Orders: []core.Order{queued}}

	command := refuseorder.BuildCommand(bookID, queued.ID, staffID, "copy lost", now)

	// act
	result := refuseorder.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeOrderRefused, result.Outcome)
	require.Len(t, result.Changes, 1)

	update, ok := result.Changes[0].(core.UpdateOrder)
	require.True(t, ok)
	assert.Equal(t, core.OrderRefused, update.Order.Status)
	assert.Equal(t, "copy lost", update.Order.ChangeReason)
	require.NotNil(t, update.Order.LastModifiedBy)
	assert.Equal(t, staffID, *update.Order.LastModifiedBy)
}

func Test_Decide_Success_RefusingAGrantedOrder_UnwindsAndPromotes(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	queuedMemberID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	reservation := core.BuildReservation(bookID, memberID, now.Add(-24*time.Hour))
	granted := core.BuildOrder(bookID, memberID, core.OrderUnprocessed, now.Add(-24*time.Hour)).
		WithReservation(reservation.ID)
	queued := core.BuildOrder(bookID, queuedMemberID, core.OrderInQueue, now.Add(-time.Hour))

	state := core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &reservation.ID},
		Reservation: &reservation,
		Orders:      []core.Order{granted, queued},
	}

	command := refuseorder.BuildCommand(bookID, granted.ID, staffID, "damaged copy", now)

	// act
	result := refuseorder.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeOrderRefused, result.Outcome)
	require.Len(t, result.Changes, 6)

	refused, ok := result.Changes[0].(core.UpdateOrder)
	require.True(t, ok)
	assert.Equal(t, granted.ID, refused.Order.ID)
	assert.Equal(t, core.OrderRefused, refused.Order.Status)

	updateReservation, ok := result.Changes[1].(core.UpdateReservation)
	require.True(t, ok)
	assert.Equal(t, core.ReservationRefused, updateReservation.Reservation.Status)

	_, ok = result.Changes[2].(core.UnlinkBookReservation)
	require.True(t, ok)

	promotedReservation, ok := result.Changes[3].(core.InsertReservation)
	require.True(t, ok)
	assert.Equal(t, queuedMemberID, promotedReservation.Reservation.MemberID)

	promotedOrder, ok := result.Changes[4].(core.UpdateOrder)
	require.True(t, ok)
	assert.Equal(t, queued.ID, promotedOrder.Order.ID)
	assert.Equal(t, core.OrderUnprocessed, promotedOrder.Order.Status)

	_, ok = result.Changes[5].(core.LinkBookReservation)
	require.True(t, ok)

	require.Len(t, result.Notifications, 1)
	assert.Equal(t, core.NotificationOrderCreated, result.Notifications[0].Kind)
}

func Test_Decide_Idempotent_WhenOrderAlreadyRefused(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	refused := core.BuildOrder(bookID, uuid.New(), core.OrderRefused, now.Add(-time.Hour))
	state := core.BookState{Book: core.Book{ID: bookID}, Orders: []core.Order{refused}}

	command := refuseorder.BuildCommand(bookID, refused.ID, uuid.New(), "", now)

	// act
	result := refuseorder.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeOrderRefused, result.Outcome)
	assert.Empty(t, result.Changes)
	assert.Empty(t, result.Notifications)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name  string
		state func(t *testing.T) (core.BookState, uuid.UUID)
	}{
		{
			name: "order does not exist",
			state: func(t *testing.T) (core.BookState, uuid.UUID) {
				t.Helper()
				return core.BookState{Book: core.Book{ID: bookID}}, uuid.New()
			},
		},
		{
			name: "order was cancelled by the member",
			state: func(t *testing.T) (core.BookState, uuid.UUID) {
				t.Helper()
				cancelled := core.BuildOrder(bookID, uuid.New(), core.OrderMemberCancelled, now.Add(-time.Hour))
				return core.BookState{Book: core.Book{ID: bookID}, Orders: []core.Order{cancelled}}, cancelled.ID
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			state, orderID := tc.state(t)
			command := refuseorder.BuildCommand(bookID, orderID, uuid.New(), "", now)

			// act
			result := refuseorder.Decide(state, command)

			// assert
			require.NoError(t, result.HasError())
			assert.Equal(t, core.OutcomeNoProcessableOrder, result.Outcome)
			assert.Empty(t, result.Changes)
		})
	}
}
