package shell

import (
	"errors"
)

// ErrConcurrencyConflict is returned when a commit observes a state version
// other than the one the decision was made against. The losing caller must
// retry against fresh state or fail clean; it must never apply its stale
// decision.
var ErrConcurrencyConflict = errors.New("book state has been modified concurrently")

// ErrBookNotFound is returned when the requested book does not exist.
var ErrBookNotFound = errors.New("book not found")

// ErrStaleChange is returned by a store when a change targets a record that
// does not exist, which indicates a bug in a decision function or corrupted
// data rather than a user mistake.
var ErrStaleChange = errors.New("change targets a record that does not exist")
