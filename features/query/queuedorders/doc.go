// Package queuedorders implements the Queued Orders query use case: the
// librarian view of a book's waiting list, in the order members will be
// served.
package queuedorders
