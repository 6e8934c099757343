package commands

import (
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand moves an order one step along its lifecycle: confirm by the
// restaurant, send out for delivery, or mark as delivered.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, services.OperationSend)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct {
	orderID   kernel.ID
	operation services.Operation

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand accepts OperationConfirm, OperationSend and OperationDeliver.
func NewTransitionOrderCommand(orderID kernel.ID, operation services.Operation) (TransitionOrderCommand, error) {
	var opErr error
	switch operation { //nolint:exhaustive // only lifecycle transitions are accepted
	case services.OperationConfirm, services.OperationSend, services.OperationDeliver:
	default:
		opErr = errs.NewValueIsInvalidErrorWithCause(
			"operation is invalid",
			fmt.Errorf("%s is not a lifecycle transition", operation),
		)
	}

	if err := errors.Join(orderID.Validate(), opErr); err != nil {
		return TransitionOrderCommand{}, err
	}

	return TransitionOrderCommand{
		orderID:   orderID,
		operation: operation,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c TransitionOrderCommand) Operation() services.Operation {
	return c.operation
}
