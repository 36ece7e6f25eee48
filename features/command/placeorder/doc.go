// Package placeorder implements the Place Order use case: a member requests
// a book and is either granted a reservation immediately or put in the
// book's FIFO queue.
//
// It follows the load-decide-commit pattern with proper separation between
// infrastructure concerns (CommandHandler) and pure business logic (Decide).
// The policy caps live here: at most 5 active reservations per member and at
// most 3 queued orders per book, plus the duplicate-order guard.
package placeorder
