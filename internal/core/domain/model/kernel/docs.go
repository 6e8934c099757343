// Package kernel provides core domain primitives shared by the order and catalog models.
//
// The package includes:
//   - ID: a value object for the positive integer identities of orders, products and restaurants
//
// Primitives enforce their invariants on construction; the zero value of ID is invalid and
// is what callers get when a reference is absent. They are immutable and safe for concurrent use.
package kernel
