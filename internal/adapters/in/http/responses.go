package http

import (
	"time"

	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/core/domain/services"
)

// Order is the JSON form of an order.
type Order struct {
	ID           int64      `json:"id"`
	RestaurantID int64      `json:"restaurantId"`
	Address      string     `json:"address"`
	Status       string     `json:"status"`
	Products     []Line     `json:"products"`
	CreatedAt    time.Time  `json:"createdAt"`
	StartedAt    *time.Time `json:"startedAt"`
	SentAt       *time.Time `json:"sentAt"`
	DeliveredAt  *time.Time `json:"deliveredAt"`
}

type Line struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Error is the body of every failed request that is not a rule violation.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ViolationItem is one broken rule, keyed by the offending field.
type ViolationItem struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
	Kind  string `json:"kind"`
	Code  string `json:"code"`
}

// Rejected is the body of a 422 or 404 caused by rule violations.
type Rejected struct {
	Errors []ViolationItem `json:"errors"`
}

// Verdict is the body of a dry run.
type Verdict struct {
	Valid  bool            `json:"valid"`
	Errors []ViolationItem `json:"errors"`
}

func toOrder(o queries.OrderResponse) Order {
	lines := make([]Line, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, Line{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	return Order{
		ID:           o.ID,
		RestaurantID: o.RestaurantID,
		Address:      o.Address,
		Status:       o.Status,
		Products:     lines,
		CreatedAt:    o.CreatedAt,
		StartedAt:    o.StartedAt,
		SentAt:       o.SentAt,
		DeliveredAt:  o.DeliveredAt,
	}
}

func toViolationItems(violations []services.Violation) []ViolationItem {
	items := make([]ViolationItem, 0, len(violations))
	for _, v := range violations {
		items = append(items, ViolationItem{
			Param: v.Field,
			Msg:   v.Message(),
			Kind:  v.Kind().String(),
			Code:  string(v.Code),
		})
	}
	return items
}
