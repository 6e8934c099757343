package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
)

// CreateOrderCommandHandler validates and persists a new pending order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s is %s\n", o.ID(), o.Status())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	evaluator  Evaluator
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory for transactional persistence and the Evaluator running the
// create chain.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, evaluator Evaluator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		evaluator:  evaluator,
		now:        utcNow,
	}
}

// Handle validates the payload against the catalog and creates the order.
//
// Returns:
//   - *order.Order: the created order, pending, with its store assigned identity
//   - error: *services.Rejection when validation fails, store errors otherwise
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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
	verdict, _, err := h.evaluator.Evaluate(ctx, uow, services.Request{
		Operation: services.OperationCreate,
		Payload:   payload,
	}, false)
	if err != nil {
		return nil, err
	}
	if err = verdict.Err(); err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(*payload.RestaurantID)
	if err != nil {
		return nil, err
	}
	lines, err := toLines(payload.Products)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id, restaurantID, lines, addressOf(payload, ""), h.now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func addressOf(payload services.Payload, fallback string) string {
	if payload.Address == nil {
		return fallback
	}
	return *payload.Address
}

func utcNow() time.Time {
	return time.Now().UTC()
}
