package cancelorder_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/cancelorder"
)

func Test_Decide_Success_CancellingAQueuedOrder(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	state := givenBookReservedByAnotherMember(t, bookID, now)
	queued := core.BuildOrder(bookID, memberID, core.OrderInQueue, now.Add(-time.Hour))
	state.Orders = append(state.Orders, queued)

	command := cancelorder.BuildCommand(bookID, memberID, now)

	// act
	result := cancelorder.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeCancelledOk, result.Outcome)
	require.Len(t, result.Changes, 1)

	update, ok := result.Changes[0].(core.UpdateOrder)
	require.True(t, ok)
	assert.Equal(t, queued.ID, update.Order.ID)
	assert.Equal(t, core.OrderMemberCancelled, update.Order.Status)
	require.NotNil(t, update.Order.LastModifiedBy)
	assert.Equal(t, memberID, *update.Order.LastModifiedBy)

	// The book keeps its current holder, so nothing is promoted.
	assert.Empty(t, result.Notifications)
}

func Test_Decide_Success_CancellingAGrantedOrder_UnwindsTheReservation(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	state, order := givenBookGrantedToMember(t, bookID, memberID, now)
	command := cancelorder.BuildCommand(bookID, memberID, now)

	// act
	result := cancelorder.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeCancelledOk, result.Outcome)
	require.Len(t, result.Changes, 3)

	updateOrder, ok := result.Changes[0].(core.UpdateOrder)
	require.True(t, ok)
	assert.Equal(t, order.ID, updateOrder.Order.ID)
	assert.Equal(t, core.OrderMemberCancelled, updateOrder.Order.Status)

	updateReservation, ok := result.Changes[1].(core.UpdateReservation)
	require.True(t, ok)
	assert.Equal(t, core.ReservationCancelled, updateReservation.Reservation.Status)

	_, ok = result.Changes[2].(core.UnlinkBookReservation)
	require.True(t, ok)

	assert.Empty(t, result.Notifications)
}

func Test_Decide_Success_CancellingAGrantedOrder_PromotesTheQueue(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	queuedMemberID := uuid.New()
	now := time.Now()

	state, _ := givenBookGrantedToMember(t, bookID, memberID, now)
	queued := core.BuildOrder(bookID, queuedMemberID, core.OrderInQueue, now.Add(-time.Hour))
	state.Orders = append(state.Orders, queued)

	command := cancelorder.BuildCommand(bookID, memberID, now)

	// act
	result := cancelorder.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.Changes, 6)

	insert, ok := result.Changes[3].(core.InsertReservation)
	require.True(t, ok)
	assert.Equal(t, queuedMemberID, insert.Reservation.MemberID)

	promoted, ok := result.Changes[4].(core.UpdateOrder)
	require.True(t, ok)
	assert.Equal(t, queued.ID, promoted.Order.ID)
	assert.Equal(t, core.OrderUnprocessed, promoted.Order.Status)

	link, ok := result.Changes[5].(core.LinkBookReservation)
	require.True(t, ok)
	assert.Equal(t, insert.Reservation.ID, link.ReservationID)

	require.Len(t, result.Notifications, 1)
	assert.Equal(t, core.NotificationOrderCreated, result.Notifications[0].Kind)
	assert.Equal(t, queuedMemberID, result.Notifications[0].MemberID)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name  string
		state func(t *testing.T) core.BookState
	}{
		{
			name: "member has no order for this book",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				return core.BookState{Book: core.Book{ID: bookID}}
			},
		},
		{
			name: "member's order was already cancelled",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				state := core.BookState{Book: core.Book{ID: bookID}}
				state.Orders = []core.Order{
					core.BuildOrder(bookID, memberID, core.OrderMemberCancelled, now.Add(-time.Hour)),
				}
				return state
			},
		},
		{
			name: "member's order was already issued",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				state, _ := givenBookGrantedToMember(t, bookID, memberID, now)
				issued, err := state.Reservation.WithStatus(core.ReservationIssued, now)
				require.NoError(t, err)
				state.Reservation = &issued
				return state
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := cancelorder.BuildCommand(bookID, memberID, now)

			// act
			result := cancelorder.Decide(tc.state(t), command)

			// assert
			require.NoError(t, result.HasError())
			assert.Equal(t, core.OutcomeNoCancellableOrder, result.Outcome)
			assert.Empty(t, result.Changes)
		})
	}
}

func givenBookReservedByAnotherMember(t *testing.T, bookID uuid.UUID, now time.Time) core.BookState {
	t.Helper()

	reservation := core.BuildReservation(bookID, uuid.New(), now.Add(-24*time.Hour))

	return core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &reservation.ID},
		Reservation: &reservation,
	}
}

// givenBookGrantedToMember builds a book whose Reserved reservation belongs to
// the member, backed by their Processed order, as after order processing was
// granted but before pickup.
func givenBookGrantedToMember(t *testing.T, bookID uuid.UUID, memberID uuid.UUID, now time.Time) (core.BookState, core.Order) {
	t.Helper()

	reservation := core.BuildReservation(bookID, memberID, now.Add(-24*time.Hour))
	order := core.BuildOrder(bookID, memberID, core.OrderProcessed, now.Add(-24*time.Hour)).
		WithReservation(reservation.ID)

	state := core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &reservation.ID},
		Reservation: &reservation,
		Orders:      []core.Order{order},
	}

	return state, order
}
