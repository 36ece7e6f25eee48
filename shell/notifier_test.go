package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/shell"
	"github.com/shelfside/book-reservations-go/testutil/spies"
)

func Test_MarshalNotification_ProducesTheFullEnvelope(t *testing.T) {
	// arrange
	notification := core.Notification{
		Kind:          core.NotificationOrderCreated,
		BookID:        uuid.New(),
		MemberID:      uuid.New(),
		OrderID:       uuid.New(),
		ReservationID: uuid.New(),
	}
	occurredAt := time.Now()

	// act
	payload, err := shell.MarshalNotification(notification, occurredAt)

	// assert
	require.NoError(t, err)

	var envelope shell.NotificationEnvelope
	require.NoError(t, jsoniter.Unmarshal(payload, &envelope))

	assert.Equal(t, string(core.NotificationOrderCreated), envelope.Kind)
	assert.Equal(t, notification.BookID.String(), envelope.BookID)
	assert.Equal(t, notification.MemberID.String(), envelope.MemberID)
	assert.Equal(t, notification.OrderID.String(), envelope.OrderID)
	assert.Equal(t, notification.ReservationID.String(), envelope.ReservationID)
	assert.Equal(t, core.ToTimestamp(occurredAt), envelope.OccurredAt)
}

func Test_MarshalNotification_OmitsAbsentIDs(t *testing.T) {
	// arrange
	notification := core.Notification{
		Kind:     core.NotificationExtensionRequested,
		BookID:   uuid.New(),
		MemberID: uuid.New(),
	}

	// act
	payload, err := shell.MarshalNotification(notification, time.Now())

	// assert
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "order_id")
	assert.NotContains(t, string(payload), "reservation_id")
}

func Test_DispatchNotifications_SendsEachNotification(t *testing.T) {
	// arrange
	notifier := spies.NewNotifierSpy()
	logger := spies.NewLoggerSpy()

	notifications := []core.Notification{
		{Kind: core.NotificationOrderCreated, BookID: uuid.New(), MemberID: uuid.New()},
		{Kind: core.NotificationReservationReadyForPickup, BookID: uuid.New(), MemberID: uuid.New()},
	}

	// act
	shell.DispatchNotifications(context.Background(), notifier, logger, time.Now(), notifications)

	// assert
	assert.Equal(t, []string{
		string(core.NotificationOrderCreated),
		string(core.NotificationReservationReadyForPickup),
	}, notifier.SentKinds())
	assert.Empty(t, logger.MessagesAtLevel("warn"))
}

func Test_DispatchNotifications_SwallowsDispatchFailures(t *testing.T) {
	// arrange
	notifier := spies.NewNotifierSpy()
	notifier.FailWith(assert.AnError)
	logger := spies.NewLoggerSpy()

	notifications := []core.Notification{
		{Kind: core.NotificationOrderCreated, BookID: uuid.New(), MemberID: uuid.New()},
	}

	// act
	shell.DispatchNotifications(context.Background(), notifier, logger, time.Now(), notifications)

	// assert
	assert.Len(t, logger.MessagesAtLevel("warn"), 1)
}

func Test_DispatchNotifications_ToleratesANilNotifier(t *testing.T) {
	// act & assert: must not panic
	shell.DispatchNotifications(context.Background(), nil, nil, time.Now(), []core.Notification{
		{Kind: core.NotificationOrderCreated, BookID: uuid.New(), MemberID: uuid.New()},
	})
}
