// Package assignreservation implements the Assign Reservation use case: a
// librarian reserves a book directly for a member at the desk, bypassing the
// ordering pipeline and its caps.
package assignreservation
