// Package processorder implements the Process Order use case: a librarian
// fulfils a granted order by issuing the reservation, which starts the
// 14-day lending term and notifies the member their book is ready for pickup.
package processorder
