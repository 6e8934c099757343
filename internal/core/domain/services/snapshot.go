package services

import (
	"foodorders/internal/core/domain/model/catalog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// Snapshot is everything a validation pass may read, loaded once before the chain runs.
// Nil order or restaurant means it was not found (or not needed for the operation);
// products hold only the ids that exist.
type Snapshot struct {
	order      *order.Order
	restaurant *catalog.Restaurant
	products   map[kernel.ID]*catalog.Product
}

// NewSnapshot builds an immutable snapshot. Nil products are ignored.
func NewSnapshot(o *order.Order, restaurant *catalog.Restaurant, products []*catalog.Product) Snapshot {
	byID := make(map[kernel.ID]*catalog.Product, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		byID[p.ID()] = p
	}
	return Snapshot{
		order:      o,
		restaurant: restaurant,
		products:   byID,
	}
}

func (s Snapshot) Order() *order.Order {
	return s.order
}

func (s Snapshot) Restaurant() *catalog.Restaurant {
	return s.restaurant
}

// Product looks up a resolved product by raw id.
func (s Snapshot) Product(id int64) (*catalog.Product, bool) {
	if id <= 0 {
		return nil, false
	}
	p, ok := s.products[kernel.MustID(id)]
	return p, ok
}
