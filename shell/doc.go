// Package shell contains the infrastructure contracts and plumbing shared by
// all feature slices: the storage contract with optimistic state versions,
// retry with exponential backoff for concurrency conflicts, the notifier
// contract with fire-and-forget dispatch, and the handler result returned to
// the API layer.
//
// The shell never makes business decisions; those live in the pure Decide
// functions of the feature packages and in package core.
package shell
