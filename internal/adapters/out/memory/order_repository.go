package memory

import (
	"context"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// OrderRepository reads through and writes into its unit of work.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) NextID(_ context.Context) (kernel.ID, error) {
	return kernel.NewID(r.uow.store.nextOrderID())
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}
	if _, exists := r.uow.lookup(aggregate.ID().Value()); exists {
		return errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	rec := recordOf(aggregate)
	r.uow.staged[rec.id] = &rec
	r.uow.track(aggregate)
	return nil
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}
	if _, exists := r.uow.lookup(aggregate.ID().Value()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().Value())
	}

	rec := recordOf(aggregate)
	r.uow.staged[rec.id] = &rec
	r.uow.track(aggregate)
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, aggregate *order.Order) error {
	if err := r.writable(aggregate); err != nil {
		return err
	}
	if _, exists := r.uow.lookup(aggregate.ID().Value()); !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID().Value())
	}

	r.uow.staged[aggregate.ID().Value()] = nil
	r.uow.track(aggregate)
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	rec, ok := r.uow.lookup(id.Value())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.Value())
	}
	return rec.toDomain()
}

// GetForUpdate is Get: the active unit of work already excludes every other one.
func (r *OrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r *OrderRepository) List(_ context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	ids := r.uow.store.orderIDs()
	if r.uow.active {
		for id := range r.uow.staged {
			ids = append(ids, id)
		}
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		rec, ok := r.uow.lookup(id)
		if !ok {
			continue
		}
		o, err := rec.toDomain()
		if err != nil {
			return nil, err
		}
		if filter.RestaurantID != nil && !o.RestaurantID().IsEqual(*filter.RestaurantID) {
			continue
		}
		if filter.Status != nil && o.Status() != *filter.Status {
			continue
		}
		out = append(out, o)
	}

	sortNewestFirst(out)
	return out, nil
}

func (r *OrderRepository) writable(aggregate *order.Order) error {
	if !r.uow.active {
		return ErrNoActiveTransaction
	}
	return aggregate.Validate()
}
