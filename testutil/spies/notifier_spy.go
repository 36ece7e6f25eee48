package spies

import (
	"context"
	"sync"
)

// SentNotification is one captured dispatch.
type SentNotification struct {
	Kind    string
	Payload []byte
}

// NotifierSpy captures dispatched notifications for assertions. It can be
// told to fail so tests can verify that dispatch failures never surface to
// callers.
type NotifierSpy struct {
	mu       sync.Mutex
	sent     []SentNotification
	failWith error
}

// NewNotifierSpy creates an empty NotifierSpy.
func NewNotifierSpy() *NotifierSpy {
	return &NotifierSpy{}
}

// FailWith makes every subsequent Notify call return err.
func (n *NotifierSpy) FailWith(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.failWith = err
}

// Notify records the dispatch.
func (n *NotifierSpy) Notify(_ context.Context, kind string, payload []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.failWith != nil {
		return n.failWith
	}

	captured := make([]byte, len(payload))
	copy(captured, payload)
	n.sent = append(n.sent, SentNotification{Kind: kind, Payload: captured})

	return nil
}

// Sent returns all captured dispatches in order.
func (n *NotifierSpy) Sent() []SentNotification {
	n.mu.Lock()
	defer n.mu.Unlock()

	sent := make([]SentNotification, len(n.sent))
	copy(sent, n.sent)

	return sent
}

// SentKinds returns only the kinds of the captured dispatches, in order.
func (n *NotifierSpy) SentKinds() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	kinds := make([]string, 0, len(n.sent))
	for _, notification := range n.sent {
		kinds = append(kinds, notification.Kind)
	}

	return kinds
}

// Reset drops all captured dispatches.
func (n *NotifierSpy) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sent = nil
}
