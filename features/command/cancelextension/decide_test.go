package cancelextension_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/cancelextension"
)

func Test_Decide_Success_CancelsTheRequestedExtension(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, memberID, now)
	requested := core.BuildReservationExtension(state.Reservation.ID, now.Add(-time.Hour))
	state.Extensions = []core.ReservationExtension{requested}

	command := cancelextension.BuildCommand(bookID, memberID, now)

	// act
	result := cancelextension.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeExtensionCancelled, result.Outcome)
	require.Len(t, result.Changes, 1)

	update, ok := result.Changes[0].(core.UpdateExtension)
	require.True(t, ok)
	assert.Equal(t, requested.ID, update.Extension.ID)
	assert.Equal(t, core.ExtensionCancelled, update.Extension.Status)
	require.NotNil(t, update.Extension.ProcessedBy)
	assert.Equal(t, memberID, *update.Extension.ProcessedBy)

	assert.Empty(t, result.Notifications)
}

func Test_Decide_Success_TellsTheMemberHowManyExtensionsRemain(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, memberID, now)

	approved, err := core.BuildReservationExtension(state.Reservation.ID, now.Add(-2*time.Hour)).
		WithStatus(core.ExtensionApproved, &staffID, now.Add(-time.Hour))
	require.NoError(t, err)
	requested := core.BuildReservationExtension(state.Reservation.ID, now.Add(-time.Hour))
	state.Extensions = []core.ReservationExtension{approved, requested}

	command := cancelextension.BuildCommand(bookID, memberID, now)

	// act
	result := cancelextension.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, "You have 1 more extension available for this book", result.Message)
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
			name: "no extension is awaiting a decision",
			state: func(t *testing.T) core.BookState {
				t.Helper()
				return givenIssuedToMember(t, bookID, memberID, now)
			},
			expectedOutcome: core.OutcomeNoRequestedExtension,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := cancelextension.BuildCommand(bookID, memberID, now)

			// act
			result := cancelextension.Decide(tc.state(t), command)

			// assert
			require.NoError(t, result.HasError())
			assert.Equal(t, tc.expectedOutcome, result.Outcome)
			assert.Empty(t, result.Changes)
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
