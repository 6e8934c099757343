package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
)

// TransitionOrderCommandHandler applies confirm, send or deliver. The lifecycle chain
// runs against the locked order row, so of two concurrent identical transitions only
// the first passes and the second sees the updated timestamps.
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  Evaluator
	now        func() time.Time
}

func NewTransitionOrderCommandHandler(uowFactory UoWFactory, evaluator Evaluator) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		now:        utcNow,
	}
}

// Handle validates the transition and stamps the matching timestamp.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
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

	verdict, snapshot, err := h.evaluator.Evaluate(ctx, uow, services.Request{
		Operation: cmd.Operation(),
		OrderID:   cmd.OrderID(),
	}, true)
	if err != nil {
		return nil, err
	}
	if err = verdict.Err(); err != nil {
		return nil, err
	}

	target := snapshot.Order()
	now := h.now()
	switch cmd.Operation() { //nolint:exhaustive // the constructor admits only these three
	case services.OperationConfirm:
		err = target.Confirm(now)
	case services.OperationSend:
		err = target.Send(now)
	case services.OperationDeliver:
		err = target.Deliver(now)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, target); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return target, nil
}
