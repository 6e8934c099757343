// Package order provides the Order aggregate of the food-delivery service.
//
// The package includes:
//   - Order: The aggregate root holding identity, restaurant, lines, address and lifecycle timestamps
//   - Line: A product with a positive quantity, owned by exactly one order
//   - Status: The lifecycle state derived from the timestamps
//   - Event: Facts recorded on every successful change, drained into the outbox
//
// Key business rules:
//   - Orders follow the workflow pending -> in process -> sent -> delivered
//   - No step can be skipped or reversed and delivered is final
//   - Lines and address can change, and the order can be deleted, only while pending
//   - The restaurant of an order never changes
//
// The aggregate enforces its own transitions, but the detailed, client-facing reasons for
// rejecting an operation come from the validation engine in the domain services package,
// which runs before any mutation.
package order
