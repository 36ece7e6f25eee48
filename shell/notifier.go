package shell

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/shelfside/book-reservations-go/core"
)

// Logger is the dependency-free logging interface of the shell. Wire any
// structured logger (slog, logrus, ...) by adapting it to these four levels.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Notifier is the contract of the external notification dispatcher. Delivery
// is assumed at-least-once; the engine never blocks on it, never retries it,
// and a failed dispatch never rolls back the transaction that triggered it.
type Notifier interface {
	Notify(ctx context.Context, kind string, payload []byte) error
}

// ErrMarshalNotificationPayload is returned when a notification payload
// cannot be serialized.
var ErrMarshalNotificationPayload = errors.New("failed to marshal notification payload")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NotificationEnvelope is the wire shape of a dispatched notification.
type NotificationEnvelope struct {
	Kind          string    `json:"kind"`
	BookID        string    `json:"book_id"`
	MemberID      string    `json:"member_id"`
	OrderID       string    `json:"order_id,omitempty"`
	ReservationID string    `json:"reservation_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// MarshalNotification serializes a notification intent into its envelope.
func MarshalNotification(notification core.Notification, occurredAt time.Time) ([]byte, error) {
	envelope := NotificationEnvelope{
		Kind:       string(notification.Kind),
		BookID:     notification.BookID.String(),
		MemberID:   notification.MemberID.String(),
		OccurredAt: core.ToTimestamp(occurredAt),
	}

	if notification.OrderID != uuid.Nil {
		envelope.OrderID = notification.OrderID.String()
	}

	if notification.ReservationID != uuid.Nil {
		envelope.ReservationID = notification.ReservationID.String()
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, errors.Join(ErrMarshalNotificationPayload, err)
	}

	return payload, nil
}

// DispatchNotifications sends each notification fire-and-forget after a
// commit. Failures are logged and swallowed: the state change has already
// committed and notification delivery is at-least-once on the notifier side.
func DispatchNotifications(
	ctx context.Context,
	notifier Notifier,
	logger Logger,
	occurredAt time.Time,
	notifications []core.Notification,
) {
	if notifier == nil {
		return
	}

	for _, notification := range notifications {
		payload, err := MarshalNotification(notification, occurredAt)
		if err != nil {
			logWarn(logger, "skipping notification with unserializable payload",
				"kind", string(notification.Kind), "error", err.Error())

			continue
		}

		if err := notifier.Notify(ctx, string(notification.Kind), payload); err != nil {
			logWarn(logger, "notification dispatch failed",
				"kind", string(notification.Kind), "error", err.Error())
		}
	}
}

func logWarn(logger Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
