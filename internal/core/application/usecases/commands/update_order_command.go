package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the lines and, when present, the address of a pending order.
// A restaurant id in the payload is accepted only if it repeats the current one.
type UpdateOrderCommand struct {
	orderID kernel.ID
	payload services.Payload

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an update command for the given order.
func NewUpdateOrderCommand(orderID kernel.ID, payload services.Payload) (UpdateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateOrderCommand) Payload() services.Payload {
	return c.payload
}
