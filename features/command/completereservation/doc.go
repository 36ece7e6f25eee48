// Package completereservation implements the Return Book use case: a
// librarian checks a returned copy back in, completing the issued reservation
// and handing the book to the next queued member if there is one.
package completereservation
