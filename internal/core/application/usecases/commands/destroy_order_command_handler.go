package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/services"
)

// DestroyOrderCommandHandler deletes an order that has not been confirmed yet.
type DestroyOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  Evaluator
	now        func() time.Time
}

func NewDestroyOrderCommandHandler(uowFactory UoWFactory, evaluator Evaluator) DestroyOrderCommandHandler {
	return DestroyOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		now:        utcNow,
	}
}

// Handle validates the destroy chain and removes the order.
func (h *DestroyOrderCommandHandler) Handle(ctx context.Context, cmd DestroyOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	verdict, snapshot, err := h.evaluator.Evaluate(ctx, uow, services.Request{
		Operation: services.OperationDestroy,
		OrderID:   cmd.OrderID(),
	}, true)
	if err != nil {
		return err
	}
	if err = verdict.Err(); err != nil {
		return err
	}

	deleted := snapshot.Order()
	if err = deleted.MarkDeleted(h.now()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, deleted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
