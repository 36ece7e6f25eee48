package requestextension_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/requestextension"
)

func Test_Decide_Success_CreatesARequestedExtension(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, memberID, now)
	command := requestextension.BuildCommand(bookID, memberID, now)

	// act
	result := requestextension.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeExtensionRequested, result.Outcome)
	require.Len(t, result.Changes, 1)

	insert, ok := result.Changes[0].(core.InsertExtension)
	require.True(t, ok)
	assert.Equal(t, state.Reservation.ID, insert.Extension.ReservationID)
	assert.Equal(t, core.ExtensionRequested, insert.Extension.Status)

	require.Len(t, result.Notifications, 1)
	assert.Equal(t, core.NotificationExtensionRequested, result.Notifications[0].Kind)
	assert.Equal(t, memberID, result.Notifications[0].MemberID)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name            string
		state           func(t *testing.T) core.BookState
		expectedOutcome core.Outcome
	}{
		{
			name: "book has no reservation",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				return core.BookState{Book: core.Book{ID: bookID}}
			},
			expectedOutcome: core.OutcomeNoReservationFound,
		},
		{
			name: "book is issued to another member",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				return givenIssuedToMember(t, bookID, uuid.New(), now)
			},
			expectedOutcome: core.OutcomeNoReservationFound,
		},
		{
			name: "an extension is already awaiting a decision",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				state := givenIssuedToMember(t, bookID, memberID, now)
				state.Extensions = []core.ReservationExtension{
					core.BuildReservationExtension(state.Reservation.ID, now.Add(-time.Hour)),
				}
				return state
			},
			expectedOutcome: core.OutcomeExtensionAlreadyRequested,
		},
		{
			name: "reservation is not issued yet",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				reservation := core.BuildReservation(bookID, memberID, now.Add(-time.Hour))
				return core.BookState{
					Book:        core.Book{ID: bookID, ReservationID: &reservation.ID},
					Reservation: &reservation,
				}
			},
			expectedOutcome: core.OutcomeNotExtendable,
		},
		{
			name: "approval cap is exhausted",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				state := givenIssuedToMember(t, bookID, memberID, now)
				staffID := uuid.New()
				for i := 0; i < core.MaxExtensionsPerMember; i++ {
					extension := core.BuildReservationExtension(state.Reservation.ID, now.Add(-time.Hour))
					approved, err := extension.WithStatus(core.ExtensionApproved, &staffID, now)
					require.NoError(t, err)
					state.Extensions = append(state.Extensions, approved)
				}
				return state
			},
			expectedOutcome: core.OutcomeNotExtendable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := requestextension.BuildCommand(bookID, memberID, now)

			// act
			result := requestextension.Decide(tc.state(t), command)

			// assert
			require.NoError(t, result.HasError())
			assert.Equal(t, tc.expectedOutcome, result.Outcome)
			assert.Empty(t, result.Changes)
			assert.Empty(t, result.Notifications)
		})
	}
}

func givenIssuedToMember(t *testing.T, bookID uuid.UUID, memberID uuid.UUID, now time.Time) core.BookState {
	t.Helper()

	reservation := core.BuildReservation(bookID, memberID, now.Add(-48*time.Hour))
	issued, err := reservation.WithStatus(core.ReservationIssued, now.Add(-24*time.Hour))
	require.NoError(t, err)

	return core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &issued.ID},
		Reservation: &issued,
	}
}
