package queries

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders, optionally only those of one restaurant or in one status.
//
// Example:
//
//	restaurantID := kernel.MustID(5)
//	status := order.Pending
//	query, err := NewListOrdersQuery(&restaurantID, &status)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter ports.OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the optional filters. Nil means "any".
func NewListOrdersQuery(restaurantID *kernel.ID, status *order.Status) (ListOrdersQuery, error) {
	var restaurantErr, statusErr error
	if restaurantID != nil {
		restaurantErr = restaurantID.Validate()
	}
	if status != nil {
		statusErr = status.Validate()
	}
	if err := errors.Join(restaurantErr, statusErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: ports.OrderFilter{RestaurantID: restaurantID, Status: status},
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}
