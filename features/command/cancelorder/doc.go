// Package cancelorder implements the Cancel Order use case: a member
// withdraws their request for a book. Cancelling a granted order unwinds the
// whole grant in one atomic unit - the bound reservation is cancelled, the
// book unlinked, and the next queued order promoted - so the book never ends
// up reserved without a live reservation.
package cancelorder
