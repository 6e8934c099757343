package queries

import (
	"time"

	"foodorders/internal/core/domain/model/order"
)

// OrderResponse is the read model of an order returned by queries and commands alike.
type OrderResponse struct {
	ID           int64
	RestaurantID int64
	Address      string
	Status       string
	Lines        []LineResponse
	CreatedAt    time.Time
	StartedAt    *time.Time
	SentAt       *time.Time
	DeliveredAt  *time.Time
}

type LineResponse struct {
	ProductID int64
	Quantity  int
}

// NewOrderResponse maps an aggregate to its read model.
func NewOrderResponse(o *order.Order) OrderResponse {
	lines := make([]LineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, LineResponse{
			ProductID: line.ProductID().Value(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderResponse{
		ID:           o.ID().Value(),
		RestaurantID: o.RestaurantID().Value(),
		Address:      o.Address(),
		Status:       o.Status().String(),
		Lines:        lines,
		CreatedAt:    o.CreatedAt(),
		StartedAt:    o.StartedAt(),
		SentAt:       o.SentAt(),
		DeliveredAt:  o.DeliveredAt(),
	}
}
