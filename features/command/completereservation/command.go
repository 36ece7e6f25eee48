package completereservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "CompleteReservation"

// Command represents a librarian checking a book back in: the member returned
// the copy, so the issued reservation completes and the book goes to the next
// member in the queue or back on the shelf.
type Command struct {
	BookID      uuid.UUID
	StaffID     uuid.UUID
	RequestedAt time.Time
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, staffID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		BookID:      bookID,
		StaffID:     staffID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
