// Package approveextension implements the Approve Extension use case: a
// librarian grants a member's extension request, pushing the reservation's
// due date out by one full lending term.
package approveextension
