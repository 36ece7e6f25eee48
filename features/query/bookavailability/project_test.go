package bookavailability_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/query/bookavailability"
)

func Test_ProjectBookAvailability_AvailableBook(t *testing.T) {
	// arrange
	bookID := uuid.New()
	state := core.BookState{Book: core.Book{ID: bookID, Title: "The Go Programming Language", ISBN: "978-0134190440"}}
	query := bookavailability.Query{BookID: bookID}

	// act
	result := bookavailability.ProjectBookAvailability(state, query, time.Now())

	// assert
	assert.Equal(t, bookID, result.BookID)
	assert.Equal(t, "The Go Programming Language", result.Title)
	assert.True(t, result.IsAvailable)
	assert.False(t, result.IsBooked)
	assert.Nil(t, result.Term)
	assert.Zero(t, result.AmountInQueue)
}

func Test_ProjectBookAvailability_IssuedBook_ShowsTermAndQueue(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	reservation := core.BuildReservation(bookID, uuid.New(), now.Add(-48*time.Hour))
	issued, err := reservation.WithStatus(core.ReservationIssued, now.Add(-24*time.Hour))
	require.NoError(t, err)

	state := core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &issued.ID},
		Reservation: &issued,
		Orders: []core.Order{
			core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, now.Add(-12*time.Hour)),
			core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, now.Add(-6*time.Hour)),
		},
	}

	// act
	result := bookavailability.ProjectBookAvailability(state, bookavailability.Query{BookID: bookID}, now)

	// assert
	assert.False(t, result.IsAvailable)
	assert.True(t, result.IsBooked)
	assert.True(t, result.IsIssued)
	require.NotNil(t, result.Term)
	assert.Equal(t, *issued.Term, *result.Term)
	assert.Equal(t, 2, result.AmountInQueue)
}

func Test_ProjectBookAvailability_AnonymousQuery_CarriesNoMemberFlags(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	reservation := core.BuildReservation(bookID, memberID, now.Add(-time.Hour))
	state := core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &reservation.ID},
		Reservation: &reservation,
	}

	// act
	result := bookavailability.ProjectBookAvailability(state, bookavailability.Query{BookID: bookID}, now)

	// assert
	assert.False(t, result.IsBookedByMember)
	assert.False(t, result.IsReservedByMember)
	assert.Zero(t, result.ExtensionsAvailable)
	assert.False(t, result.ExtensionRequested)
}

func Test_ProjectBookAvailability_MemberHoldingTheBook_SeesExtensionInfo(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	reservation := core.BuildReservation(bookID, memberID, now.Add(-48*time.Hour))
	issued, err := reservation.WithStatus(core.ReservationIssued, now.Add(-24*time.Hour))
	require.NoError(t, err)

	state := core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &issued.ID},
		Reservation: &issued,
		Extensions: []core.ReservationExtension{
			core.BuildReservationExtension(issued.ID, now.Add(-time.Hour)),
		},
	}

	query := bookavailability.Query{BookID: bookID, MemberID: memberID}

	// act
	result := bookavailability.ProjectBookAvailability(state, query, now)

	// assert
	assert.True(t, result.IsBookedByMember)
	assert.True(t, result.IsIssuedToMember)
	assert.False(t, result.IsReservedByMember)
	assert.Equal(t, core.MaxExtensionsPerMember, result.ExtensionsAvailable)
	assert.True(t, result.ExtensionRequested)
}

func Test_ProjectBookAvailability_QueuedMember_SeesTheirQueueFlag(t *testing.T) {
	// arrange
	bookID := uuid.New()
	memberID := uuid.New()
	now := time.Now()

	reservation := core.BuildReservation(bookID, uuid.New(), now.Add(-time.Hour))
	state := core.BookState{
		Book:        core.Book{ID: bookID, ReservationID: &reservation.ID},
		Reservation: &reservation,
		Orders: []core.Order{
			core.BuildOrder(bookID, memberID, core.OrderInQueue, now.Add(-time.Hour)),
		},
	}

	query := bookavailability.Query{BookID: bookID, MemberID: memberID}

	// act
	result := bookavailability.ProjectBookAvailability(state, query, now)

	// assert
	assert.True(t, result.IsQueuedByMember)
	assert.False(t, result.IsBookedByMember)
	// extension info stays hidden for members who do not hold the book
	assert.Zero(t, result.ExtensionsAvailable)
}
