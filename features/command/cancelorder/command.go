package cancelorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "CancelOrder"

// Command represents a member's intent to withdraw their order for a book,
// whether it is still queued, granted and pending pickup, or processed but
// not yet issued.
type Command struct {
	BookID      uuid.UUID
	MemberID    uuid.UUID
	RequestedAt time.Time
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, memberID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		BookID:      bookID,
		MemberID:    memberID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
