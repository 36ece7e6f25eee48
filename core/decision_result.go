package core

// DecisionResult is the outcome of a Decide function: what the caller is
// told, which records to persist, and which notifications to dispatch once
// the persistence commit succeeds. Construct it only through the factory
// functions below.
type DecisionResult struct {
	Outcome       Outcome
	Message       string
	Changes       []Change
	Notifications []Notification
	Err           error
}

// AcceptedDecision creates a DecisionResult for a granted operation with the
// records to persist atomically and the notifications to dispatch afterwards.
func AcceptedDecision(outcome Outcome, changes []Change, notifications ...Notification) DecisionResult {
	return DecisionResult{
		Outcome:       outcome,
		Message:       outcome.Message(),
		Changes:       changes,
		Notifications: notifications,
	}
}

// AcceptedDecisionWithMessage is AcceptedDecision with an operation-specific
// message replacing the outcome's default one.
func AcceptedDecisionWithMessage(outcome Outcome, message string, changes []Change, notifications ...Notification) DecisionResult {
	result := AcceptedDecision(outcome, changes, notifications...)
	result.Message = message

	return result
}

// RejectedDecision creates a DecisionResult for a policy rejection: nothing
// is persisted and nothing is dispatched.
func RejectedDecision(outcome Outcome) DecisionResult {
	return DecisionResult{
		Outcome: outcome,
		Message: outcome.Message(),
	}
}

// IdempotentDecision creates a DecisionResult for an operation that already
// took effect: the caller gets the success outcome but no state change or
// notification is produced again.
func IdempotentDecision(outcome Outcome) DecisionResult {
	return DecisionResult{
		Outcome: outcome,
		Message: outcome.Message(),
	}
}

// FailedDecision creates a DecisionResult for an invariant violation. These
// indicate a bug or corrupted data and propagate as hard failures.
func FailedDecision(err error) DecisionResult {
	return DecisionResult{
		Err: err,
	}
}

// HasChangesToCommit reports whether the decision produced records to persist.
func (r DecisionResult) HasChangesToCommit() bool {
	return len(r.Changes) > 0
}

// HasError returns the invariant-violation error if there is one, otherwise nil.
func (r DecisionResult) HasError() error {
	return r.Err
}
