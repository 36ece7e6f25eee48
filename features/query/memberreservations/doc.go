// Package memberreservations implements the Member Reservations query use
// case: the member's view of every book they currently hold or have been
// granted, with due dates and overdue information.
package memberreservations
