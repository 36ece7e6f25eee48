package refuseorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "RefuseOrder"

// Command represents a librarian's decision to refuse a member's order, for
// example because the copy turned out to be damaged or lost. The reason is
// recorded on the order for the member to see.
type Command struct {
	BookID      uuid.UUID
	OrderID     uuid.UUID
	StaffID     uuid.UUID
	Reason      string
	RequestedAt time.Time
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, orderID uuid.UUID, staffID uuid.UUID, reason string, requestedAt time.Time) Command {
	return Command{
		BookID:      bookID,
		OrderID:     orderID,
		StaffID:     staffID,
		Reason:      reason,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
