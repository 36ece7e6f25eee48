// Package refuseorder implements the Refuse Order use case: a librarian
// turns down a member's order, recording who refused it and why. Refusing a
// granted order cascades onto the bound reservation and promotes the next
// queued order, mirroring the member cancellation path.
package refuseorder
