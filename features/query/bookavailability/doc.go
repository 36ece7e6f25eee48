// Package bookavailability implements the Book Availability query use case.
//
// It projects a single book's current state into the view a catalog page
// needs: whether the book can be taken right now, when it is due back, how
// long the queue is, and how the querying member relates to it. This is a
// read-only operation; it never modifies state.
package bookavailability
