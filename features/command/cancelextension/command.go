package cancelextension

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "CancelExtension"

// Command represents a member withdrawing their pending extension request.
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
