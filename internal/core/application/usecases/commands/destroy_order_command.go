package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/guard"
)

var ErrDestroyOrderCommandIsNotConstructed = errors.New(
	"DestroyOrderCommand must be created via NewDestroyOrderCommand constructor",
)

// DestroyOrderCommand deletes a pending order.
type DestroyOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewDestroyOrderCommand(orderID kernel.ID) (DestroyOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DestroyOrderCommand{}, err
	}

	return DestroyOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DestroyOrderCommand) Validate() error {
	return c.guard.Validate(ErrDestroyOrderCommandIsNotConstructed)
}

func (c DestroyOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
