package core

import (
	"github.com/google/uuid"
)

// Change is a single record mutation produced by a decision. The store
// applies all changes of a decision inside one atomic unit, so cascades
// (order -> reservation -> book link -> promotion) either fully apply or not
// at all.
type Change interface {
	isChange()
}

// InsertReservation creates a new reservation record.
type InsertReservation struct {
	Reservation Reservation
}

// UpdateReservation rewrites an existing reservation record.
type UpdateReservation struct {
	Reservation Reservation
}

// InsertOrder creates a new order record. The store assigns the FIFO
// insertion sequence.
type InsertOrder struct {
	Order Order
}

// UpdateOrder rewrites an existing order record.
type UpdateOrder struct {
	Order Order
}

// InsertExtension creates a new reservation extension record.
type InsertExtension struct {
	Extension ReservationExtension
}

// UpdateExtension rewrites an existing reservation extension record.
type UpdateExtension struct {
	Extension ReservationExtension
}

// LinkBookReservation points the book at its new current reservation.
type LinkBookReservation struct {
	BookID        uuid.UUID
	ReservationID uuid.UUID
}

// UnlinkBookReservation clears the book's current reservation link. It is
// always part of the same decision as the terminal reservation transition, so
// a reservation can never sit in a terminal state while still linked.
type UnlinkBookReservation struct {
	BookID uuid.UUID
}

func (InsertReservation) isChange()     {}
func (UpdateReservation) isChange()     {}
func (InsertOrder) isChange()           {}
func (UpdateOrder) isChange()           {}
func (InsertExtension) isChange()       {}
func (UpdateExtension) isChange()       {}
func (LinkBookReservation) isChange()   {}
func (UnlinkBookReservation) isChange() {}
