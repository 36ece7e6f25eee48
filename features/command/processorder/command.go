package processorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
)

const commandType = "ProcessOrder"

// Command represents a librarian fulfilling a granted order: the physical
// copy was fetched and handed over, so the reservation is issued and the
// lending term starts.
type Command struct {
	BookID      uuid.UUID
	OrderID     uuid.UUID
	StaffID     uuid.UUID
	RequestedAt time.Time
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(bookID uuid.UUID, orderID uuid.UUID, staffID uuid.UUID, requestedAt time.Time) Command {
	return Command{
		BookID:      bookID,
		OrderID:     orderID,
		StaffID:     staffID,
		RequestedAt: core.ToTimestamp(requestedAt),
	}
}
