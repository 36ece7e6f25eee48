package inmemorystore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shelfside/book-reservations-go/core"
	"github.com/shelfside/book-reservations-go/shell"
)

// Store is an in-memory implementation of the book state storage contract
// with the same optimistic concurrency semantics as the PostgreSQL store.
// It is safe for concurrent use and intended for tests.
type Store struct {
	mu           sync.Mutex
	books        map[uuid.UUID]core.Book
	versions     map[uuid.UUID]shell.StateVersion
	reservations map[uuid.UUID]core.Reservation
	extensions   map[uuid.UUID]core.ReservationExtension
	orders       map[uuid.UUID]core.Order
	nextSeq      int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		books:        make(map[uuid.UUID]core.Book),
		versions:     make(map[uuid.UUID]shell.StateVersion),
		reservations: make(map[uuid.UUID]core.Reservation),
		extensions:   make(map[uuid.UUID]core.ReservationExtension),
		orders:       make(map[uuid.UUID]core.Order),
	}
}

// AddBook seeds a catalog entry. The book starts at state version 0.
func (s *Store) AddBook(book core.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books[book.ID] = book
	s.versions[book.ID] = 0
}

// SeedReservation seeds a reservation record without bumping any version,
// for arranging test preconditions. It does not link the book; use
// SeedCurrentReservation for an active hold.
func (s *Store) SeedReservation(reservation core.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations[reservation.ID] = reservation
}

// SeedCurrentReservation seeds a reservation and links it as the book's
// current one.
func (s *Store) SeedCurrentReservation(reservation core.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations[reservation.ID] = reservation

	book, ok := s.books[reservation.BookID]
	if ok {
		id := reservation.ID
		book.ReservationID = &id
		s.books[reservation.BookID] = book
	}
}

// SeedOrder seeds an order record, assigning the next insertion sequence.
func (s *Store) SeedOrder(order core.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	order.Seq = s.nextSeq
	s.orders[order.ID] = order
}

// SeedExtension seeds a reservation extension record.
func (s *Store) SeedExtension(extension core.ReservationExtension) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.extensions[extension.ID] = extension
}

// Version returns the book's current state version.
func (s *Store) Version(bookID uuid.UUID) shell.StateVersion {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.versions[bookID]
}

// Reservation returns a stored reservation by ID.
func (s *Store) Reservation(reservationID uuid.UUID) (core.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[reservationID]

	return reservation, ok
}

// Order returns a stored order by ID.
func (s *Store) Order(orderID uuid.UUID) (core.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]

	return order, ok
}

// Extension returns a stored extension by ID.
func (s *Store) Extension(extensionID uuid.UUID) (core.ReservationExtension, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	extension, ok := s.extensions[extensionID]

	return extension, ok
}

// Book returns a stored book by ID.
func (s *Store) Book(bookID uuid.UUID) (core.Book, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]

	return book, ok
}

// LoadBookState assembles the book's aggregate snapshot the same way the
// PostgreSQL store does.
func (s *Store) LoadBookState(_ context.Context, bookID uuid.UUID, memberID uuid.UUID) (
	core.BookState,
	shell.StateVersion,
	error,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[bookID]
	if !ok {
		return core.BookState{}, 0, shell.ErrBookNotFound
	}

	state := core.BookState{Book: book}

	if book.ReservationID != nil {
		if reservation, found := s.reservations[*book.ReservationID]; found {
			r := reservation
			state.Reservation = &r

			for _, extension := range s.extensions {
				if extension.ReservationID == reservation.ID {
					state.Extensions = append(state.Extensions, extension)
				}
			}
		}
	}

	for _, order := range s.orders {
		if order.BookID == bookID {
			state.Orders = append(state.Orders, order)
		}
	}

	if memberID != uuid.Nil {
		for _, reservation := range s.reservations {
			if reservation.MemberID == memberID && reservation.IsActive() {
				state.MemberActiveReservations++
			}
		}
	}

	return state, s.versions[bookID], nil
}

// CommitChanges applies the changes if the book's state version still equals
// expected, then bumps the version. All changes apply atomically under the
// store's lock.
func (s *Store) CommitChanges(
	_ context.Context,
	bookID uuid.UUID,
	expected shell.StateVersion,
	changes []core.Change,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[bookID]; !ok {
		return shell.ErrBookNotFound
	}

	if s.versions[bookID] != expected {
		return shell.ErrConcurrencyConflict
	}

	for _, change := range changes {
		s.applyChange(change)
	}

	s.versions[bookID] = expected + 1

	return nil
}

// LoadActiveReservations returns the member's reservations in a non-terminal
// state.
func (s *Store) LoadActiveReservations(_ context.Context, memberID uuid.UUID) ([]core.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var active []core.Reservation

	for _, reservation := range s.reservations {
		if reservation.MemberID == memberID && reservation.IsActive() {
			active = append(active, reservation)
		}
	}

	return active, nil
}

func (s *Store) applyChange(change core.Change) {
	switch c := change.(type) {
	case core.InsertReservation:
		s.reservations[c.Reservation.ID] = c.Reservation

	case core.UpdateReservation:
		s.reservations[c.Reservation.ID] = c.Reservation

	case core.InsertOrder:
		order := c.Order
		s.nextSeq++
		order.Seq = s.nextSeq
		s.orders[order.ID] = order

	case core.UpdateOrder:
		order := c.Order
		if existing, ok := s.orders[order.ID]; ok {
			order.Seq = existing.Seq
		}
		s.orders[order.ID] = order

	case core.InsertExtension:
		s.extensions[c.Extension.ID] = c.Extension

	case core.UpdateExtension:
		s.extensions[c.Extension.ID] = c.Extension

	case core.LinkBookReservation:
		if book, ok := s.books[c.BookID]; ok {
			id := c.ReservationID
			book.ReservationID = &id
			s.books[c.BookID] = book
		}

	case core.UnlinkBookReservation:
		if book, ok := s.books[c.BookID]; ok {
			book.ReservationID = nil
			s.books[c.BookID] = book
		}
	}
}
