// Package refuseextension implements the Refuse Extension use case: a
// librarian turns down a member's extension request, leaving the due date as
// it is.
package refuseextension
