package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
)

// UpdateOrderCommandHandler revises a pending order inside one transaction: the order row
// is locked while the update chain runs, so a concurrent confirm cannot slip in between.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  Evaluator
	now        func() time.Time
}

func NewUpdateOrderCommandHandler(uowFactory UoWFactory, evaluator Evaluator) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		now:        utcNow,
	}
}

// Handle validates and applies the update. A missing address keeps the current one.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payload := cmd.Payload()
	verdict, snapshot, err := h.evaluator.Evaluate(ctx, uow, services.Request{
		Operation: services.OperationUpdate,
		OrderID:   cmd.OrderID(),
		Payload:   payload,
	}, true)
	if err != nil {
		return nil, err
	}
	if err = verdict.Err(); err != nil {
		return nil, err
	}

	lines, err := toLines(payload.Products)
	if err != nil {
		return nil, err
	}

	updated := snapshot.Order()
	if err = updated.Revise(lines, addressOf(payload, updated.Address()), h.now()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, updated); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
