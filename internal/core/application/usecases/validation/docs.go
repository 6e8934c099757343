// Package validation runs the order validation engine against the store: it loads one
// snapshot per call through the unit of work repositories and evaluates the pure chain
// of the domain services package over it.
//
// Commands call Evaluate inside their own unit of work, with the order row locked, so
// that the verdict and the following write see the same state. Validate is the dry run
// used by the validate endpoint; it opens a short read-only unit of work of its own.
package validation
