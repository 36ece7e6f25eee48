// Package cancelextension implements the Cancel Extension use case: a member
// withdraws their pending extension request before a librarian decides on it.
package cancelextension
