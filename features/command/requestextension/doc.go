// Package requestextension implements the Request Extension use case: a
// member asks for more time with an issued book, creating an extension
// awaiting a librarian's decision.
package requestextension
