// Package spies provides test doubles that capture interactions for
// assertions: a notifier spy and a logger spy.
package spies
