package queuedorders_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/features/query/queuedorders"
)

func Test_ProjectQueuedOrders_ListsWaitingOrdersInPromotionOrder(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	oldest := core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, now.Add(-3*time.Hour))
	middle := core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, now.Add(-2*time.Hour))
	newest := core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, now.Add(-1*time.Hour))

	state := core.BookState{
		Book:   core.Book{ID: bookID},
		Orders: []core.Order{newest, oldest, middle},
	}

	// act
	result := queuedorders.ProjectQueuedOrders(state, queuedorders.Query{BookID: bookID})

	// assert
	assert.Equal(t, bookID, result.BookID)
	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, oldest.ID, result.Entries[0].OrderID)
	assert.Equal(t, middle.ID, result.Entries[1].OrderID)
	assert.Equal(t, newest.ID, result.Entries[2].OrderID)
	assert.Equal(t, 1, result.Entries[0].Position)
	assert.Equal(t, 3, result.Entries[2].Position)
}

func Test_ProjectQueuedOrders_BreaksCreationTimeTiesByInsertionSequence(t *testing.T) {
	// arrange
	bookID := uuid.New()
	at := time.Now()

	first := core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, at)
	first.Seq = 7
	second := core.BuildOrder(bookID, uuid.New(), core.OrderInQueue, at)
	second.Seq = 8

	state := core.BookState{
		Book:   core.Book{ID: bookID},
		Orders: []core.Order{second, first},
	}

	// act
	result := queuedorders.ProjectQueuedOrders(state, queuedorders.Query{BookID: bookID})

	// assert
	require.Len(t, result.Entries, 2)
	assert.Equal(t, first.ID, result.Entries[0].OrderID)
	assert.Equal(t, second.ID, result.Entries[1].OrderID)
}

func Test_ProjectQueuedOrders_ExcludesSettledOrders(t *testing.T) {
	// arrange
	bookID := uuid.New()
	now := time.Now()

	state := core.BookState{
		Book: core.Book{ID: bookID},
		Orders: []core.Order{
			core.BuildOrder(bookID, uuid.New(), core.OrderUnprocessed, now),
			core.BuildOrder(bookID, uuid.New(), core.OrderProcessed, now),
			core.BuildOrder(bookID, uuid.New(), core.OrderRefused, now),
			core.BuildOrder(bookID, uuid.New(), core.OrderMemberCancelled, now),
		},
	}

	// act
	result := queuedorders.ProjectQueuedOrders(state, queuedorders.Query{BookID: bookID})

	// assert
	assert.Zero(t, result.Count)
	assert.Empty(t, result.Entries)
}
