package approveextension_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/command/approveextension"
)

func Test_Decide_Success_ExtendsTheTermByOneFullTerm(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, memberID, now)
	requested := core.BuildReservationExtension(state.Reservation.ID, now.Add(-time.Hour))
	state.Extensions = []core.ReservationExtension{requested}
	originalTerm := *state.Reservation.Term

	command := approveextension.BuildCommand(bookID, requested.ID, staffID, now)

	// act
	result := approveextension.Decide(state, command)

	// assert
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeExtensionApproved, result.Outcome)
	require.Len(t, result.Changes, 2)

	updateExtension, ok := result.Changes[0].(core.UpdateExtension)
	require.True(t, ok)
	assert.Equal(t, requested.ID, updateExtension.Extension.ID)
	assert.Equal(t, core.ExtensionApproved, updateExtension.Extension.Status)
	require.NotNil(t, updateExtension.Extension.ProcessedBy)
	assert.Equal(t, staffID, *updateExtension.Extension.ProcessedBy)

	updateReservation, ok := result.Changes[1].(core.UpdateReservation)
	require.True(t, ok)
	require.NotNil(t, updateReservation.Reservation.Term)
	assert.Equal(t, originalTerm.Add(core.ReservationTerm), *updateReservation.Reservation.Term)

	require.Len(t, result.Notifications, 1)
	assert.Equal(t, core.NotificationExtensionApproved, result.Notifications[0].Kind)
	assert.Equal(t, memberID, result.Notifications[0].MemberID)
}

func Test_Decide_Idempotent_WhenExtensionAlreadyApproved(t *testing.T) {
	// arrange
	bookID := uuid.New()
	staffID := uuid.New()
	now := time.Now()

	state := givenIssuedToMember(t, bookID, uuid.New(), now)
	approved, err := core.BuildReservationExtension(state.Reservation.ID, now.Add(-2*time.Hour)).
		WithStatus(core.ExtensionApproved, &staffID, now.Add(-time.Hour))
	require.NoError(t, err)
	state.Extensions = []core.ReservationExtension{approved}

	command := approveextension.BuildCommand(bookID, approved.ID, staffID, now)

	// act
	result := approveextension.Decide(state, command)

	// assert - the term must not be extended a second time
	require.NoError(t, result.HasError())
	assert.Equal(t, core.OutcomeExtensionApproved, result.Outcome)
	assert.Empty(t, result.Changes)
	assert.Empty(t, result.Notifications)
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
			name: "extension was cancelled by the member",
			state: func(t *testing.T) (core.BookState, uuid.UUID) {
				t.Helper()
				state := givenIssuedToMember(t, bookID, memberID, now)
				cancelled, err := core.BuildReservationExtension(state.Reservation.ID, now.Add(-2*time.Hour)).
					WithStatus(core.ExtensionCancelled, &memberID, now.Add(-time.Hour))
				require.NoError(t, err)
				state.Extensions = []core.ReservationExtension{cancelled}
				return state, cancelled.ID
			},
		},
		{
			name: "extension belongs to a past reservation",
			state: func(t *testing.T) (core.BookState, uuid.UUID) {
				t.Helper()
				state := givenIssuedToMember(t, bookID, memberID, now)
				stale := core.BuildReservationExtension(uuid.New(), now.Add(-time.Hour))
				state.Extensions = []core.ReservationExtension{stale}
				return state, stale.ID
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			state, extensionID := tc.state(t)
			command := approveextension.BuildCommand(bookID, extensionID, uuid.New(), now)

			// act
			result := approveextension.Decide(state, command)

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
