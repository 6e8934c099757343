package commands

import (
	"errors"

	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order with a restaurant.
// The payload is kept raw: whether it is acceptable is decided by the validation engine
// inside the handler's transaction, so that every problem is reported at once.
//
// Example:
//
//	restaurantID := int64(5)
//	cmd := NewCreateOrderCommand(services.Payload{
//	    RestaurantID: &restaurantID,
//	    Products:     []services.LineInput{{ProductID: 1, Quantity: 2}},
//	})
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator)
//	o, err := handler.Handle(ctx, cmd)
//	var rejection *services.Rejection
//	if errors.As(err, &rejection) {
//	    // render rejection.Violations
//	}
type CreateOrderCommand struct {
	payload services.Payload

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
func NewCreateOrderCommand(payload services.Payload) CreateOrderCommand {
	return CreateOrderCommand{
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Payload() services.Payload {
	return c.payload
}
