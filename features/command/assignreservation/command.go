package assignreservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "AssignReservation"

// Command represents a librarian reserving a book directly for a member at
// the desk, outside the normal ordering flow. Staff assignment bypasses the
// member reservation cap and the queue cap.
type Command struct {
	BookID      uuid.UUID
	MemberID    uuid.UUID
	StaffID     uuid.UUID
	RequestedAt time.Time
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, memberID uuid.UUID, staffID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		BookID:      bookID,
		MemberID:    memberID,
		StaffID:     staffID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
