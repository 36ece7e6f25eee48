package refuseextension

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "RefuseExtension"

// Command represents a librarian turning down a member's extension request.
// The reservation's term is unchanged.
type Command struct {
	BookID      uuid.UUID
	ExtensionID uuid.UUID
	StaffID     uuid.UUID
	RequestedAt time.Time
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, extensionID uuid.UUID, staffID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		BookID:      bookID,
		ExtensionID: extensionID,
		StaffID:     staffID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
