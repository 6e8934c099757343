// Package ports defines the store contracts the order core consumes.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability against the in-memory store.
package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderFilter narrows List. Nil fields match every order.
type OrderFilter struct {
	RestaurantID *kernel.ID
	Status       *order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
// Missing orders are reported as *errs.ObjectNotFoundError, connectivity failures as
// *errs.StoreUnavailableError.
type OrderRepository interface {
	// NextID reserves the identity of an order about to be created.
	NextID(ctx context.Context) (kernel.ID, error)

	// Add persists a new order aggregate with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its lines.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order aggregate marked with order.MarkDeleted.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identity.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	// Two units of work validating the same order are serialized by this lock.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// List returns the orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)
}
