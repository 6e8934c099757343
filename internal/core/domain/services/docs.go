// Package services holds the order validation engine: the rules that decide whether a
// proposed create, update, destroy, confirm, send or deliver is legal given the persisted
// order and the restaurant catalog.
//
// The package includes:
//   - LifecycleGuard: legal transitions derived from the order timestamps
//   - CatalogChecker: non-empty, well-formed, available and single-restaurant product lists
//   - OwnershipGuard: the restaurant exists on create and never changes on update
//   - OrderValidator: per-operation chains over one Snapshot, collecting every Violation
//
// Validation failures are values. A failed Verdict converts to a *Rejection, which
// matches ErrOrderRejected with errors.Is and lists each violation with the request field
// it concerns, a Code and its Kind.
//
// Nothing here performs I/O. The application layer loads the Snapshot through the store
// ports inside the same transaction that later applies the change.
package services
