package cancelorder

import (
	"context"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/shell"
)

// BookStateStore defines the storage interface needed by the CommandHandler.
type BookStateStore interface {
	LoadBookState(ctx context.Context, bookID uuid.UUID, memberID uuid.UUID) (core.BookState, shell.StateVersion, error)
	CommitChanges(ctx context.Context, bookID uuid.UUID, expected shell.StateVersion, changes []core.Change) error
}

// CommandHandler orchestrates the member order cancellation workflow:
// load state -> decide -> commit with retry -> dispatch notifications.
type CommandHandler struct {
	store        BookStateStore
	notifier     shell.Notifier
	logger       shell.Logger
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// WithLogger sets the logger used for notification dispatch warnings.
func WithLogger(logger shell.Logger) Option {
	return func(h *CommandHandler) {
		h.logger = logger
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(store BookStateStore, notifier shell.Notifier, opts ...Option) CommandHandler {
	handler := CommandHandler{
		store:    store,
		notifier: notifier,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the member order cancellation protocol. Policy rejections come back as
// rejection outcomes, not errors; errors are reserved for storage failures
// and invariant violations.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.Result, error) {
	var result shell.Result

	err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		execResult, execErr := h.executeCommand(retryCtx, command)
		result = execResult

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return shell.Result{}, err
	}

	return result, nil
}

// executeCommand contains the processing logic that can be retried on a
// concurrency conflict.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (shell.Result, error) {
	state, version, err := h.store.LoadBookState(ctx, command.BookID, command.MemberID)
	if err != nil {
		return shell.Result{}, err
	}

	decision := Decide(state, command)
	if decisionErr := decision.HasError(); decisionErr != nil {
		return shell.Result{}, decisionErr
	}

	if decision.HasChangesToCommit() {
		if commitErr := h.store.CommitChanges(ctx, command.BookID, version, decision.Changes); commitErr != nil {
			return shell.Result{}, commitErr
		}
	}

	// Dispatched only after the commit succeeded; never awaited by callers.
	shell.DispatchNotifications(ctx, h.notifier, h.logger, command.RequestedAt, decision.Notifications)

	return buildResult(decision, command), nil
}

// buildResult references the order the member acted on, which the decision
// lists ahead of any promotion changes.
func buildResult(decision core.DecisionResult, command Command) shell.Result {
	result := shell.ResultFrom(decision, command.BookID)

	for _, change := range decision.Changes {
		if c, ok := change.(core.UpdateOrder); ok {
			result = result.WithOrder(c.Order.ID)
			break
		}
	}

	return result
}
