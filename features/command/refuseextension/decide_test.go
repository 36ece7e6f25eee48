package refuseextension_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/refuseextension"
)

func Test_Decide_Success_RefusesTheRequestedExtension(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, memberID, now)
	requested := core.BuildReservationExtension(state.Reservation.ID, now.Add(-time.Hour))
	state.Extensions = []core.ReservationExtension{requested}
	originalTerm := *state.Reservation.Term

	command := refuseextension.BuildCommand(bookID, requested.ID, staffID, now)

	// act
	result := refuseextension.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeExtensionRefused, result.Outcome)
	require.Len(t, result.Changes, 1)

	update, ok := result.Changes[0].(core.UpdateExtension)
	require.True(t, ok)
	assert.Equal(t, requested.ID, update.Extension.ID)
	assert.Equal(t, core.ExtensionRefused, update.Extension.Status)
	require.NotNil(t, update.Extension.ProcessedBy)
	assert.Equal(t, staffID, *update.Extension.ProcessedBy)

	// The reservation keeps its term.
	assert.Equal(t, originalTerm, *state.Reservation.Term)
	assert.Empty(t, result.Notifications)
}

func Test_Decide_Idempotent_WhenExtensionAlreadyRefused(t *testing.T) {
	// arrange
	bookID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, uuid.New(), now)
	refused, err := core.BuildReservationExtension(state.Reservation.ID, now.Add(-2*time.Hour)).
		WithStatus(core.ExtensionRefused, &staffID, now.Add(-time.Hour))
	require.NoError(t, err)
	state.Extensions = []core.ReservationExtension{refused}

	command := refuseextension.BuildCommand(bookID, refused.ID, staffID, now)

	// act
	result := refuseextension.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeExtensionRefused, result.Outcome)
	assert.Empty(t, result.Changes)
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	testCases := []struct {
		name  string
		state func(t *testing.T) (core.BookState, uuid.UUID)
	}{
		{
			name: "extension does not exist",
			state: func(t *testing.T) (core.BookState, uuid.UUID) {
				t.Helper()
				return givenIssuedToMember(t, bookID, memberID, now), uuid.New()
			},
		},
		{
			name: "extension was already approved",
			state: func(t *testing.T) (core.BookState, uuid.UUID) {
				t.Helper()
				state := givenIssuedToMember(t, bookID, memberID, now)
				staffID := uuid.New()
				approved, err := core.BuildReservationExtension(state.Reservation.ID, now.Add(-2*time.Hour)).
					WithStatus(core.ExtensionApproved, &staffID, now.Add(-time.Hour))
				require.NoError(t, err)
				state.Extensions = []core.ReservationExtension{approved}
				return state, approved.ID
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			state, extensionID := tc.state(t)
			command := refuseextension.BuildCommand(bookID, extensionID, uuid.New(), now)

			// act
			result := refuseextension.Decide(state, command)

			// assert
			require.NoError(t, result.HasError())
			assert.Equal(t, core.OutcomeNoRequestedExtension, result.Outcome)
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
