// Package core contains the domain model for the book reservation and
// order-queueing engine: catalog books, member reservations, the per-book
// FIFO order queue, and reservation term extensions.
//
// Everything in this package is pure. State transitions are expressed as
// explicit functions over an in-memory BookState snapshot and return a
// DecisionResult carrying the record changes to persist and the
// notifications to dispatch after the commit succeeds. Persistence and
// notification delivery live in the shell and storage packages.
package core
