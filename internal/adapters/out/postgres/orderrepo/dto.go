// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The lifecycle status is not stored: it is derived from the three timestamps.
type OrderDTO struct {
	ID           int64          `gorm:"primaryKey"`
	RestaurantID int64          `gorm:"not null;index"`
	Address      string         `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time      `gorm:"not null;index"`
	StartedAt    *time.Time     `gorm:"index"`
	SentAt       *time.Time
	DeliveredAt  *time.Time
	Lines        []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is one product line. Position keeps the order the client sent.
type OrderLineDTO struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"not null;index"`
	Position  int   `gorm:"not null"`
	ProductID int64 `gorm:"not null"`
	Quantity  int   `gorm:"not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, l := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   aggregate.ID().Value(),
			Position:  i,
			ProductID: l.ProductID().Value(),
			Quantity:  l.Quantity(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Value(),
		RestaurantID: aggregate.RestaurantID().Value(),
		Address:      aggregate.Address(),
		CreatedAt:    aggregate.CreatedAt(),
		StartedAt:    aggregate.StartedAt(),
		SentAt:       aggregate.SentAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Lines:        lines,
	}
}

// toDomain rehydrates the aggregate with RestoreOrder, which rejects rows whose
// timestamps break the lifecycle ordering.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		productID, err := kernel.NewID(l.ProductID)
		if err != nil {
			return nil, err
		}
		line, err := order.NewLine(productID, l.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		restaurantID,
		lines,
		dto.Address,
		dto.CreatedAt,
		dto.StartedAt,
		dto.SentAt,
		dto.DeliveredAt,
	)
}
